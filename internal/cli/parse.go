package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/nitro-bio/platemap/pkg/io"
)

// parseCommand reads a plate grid into an annotation document.
func (c *CLI) parseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <file.csv|file.xlsx|->",
		Short: "Parse a plate-map CSV or workbook into an annotation document",
		Long: `Parse a plate-map grid into a JSON annotation document.

The grid has a header row "idx,1,2,...", one row per plate row, and cells
listing annotations as "Label (key: value; key: value)" separated by " | ".
Cells outside the plate are skipped; run with --verbose to see them.`,
		Example: `  platemap parse plate.csv -o plate.json
  platemap parse -s 384 plate.xlsx
  cat plate.csv | platemap parse -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			anns, err := readGrid(cmd.Context(), args[0], cmd.InOrStdin(), c.size())
			if err != nil {
				return err
			}
			excluded, err := c.cfg.ExcludedWells()
			if err != nil {
				return err
			}

			doc := pkgio.Document{PlateSize: c.size(), Excluded: excluded, Annotations: anns}
			if err := writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return pkgio.WriteJSON(doc, w)
			}); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Parsed %d annotations", len(anns)))
			if output != "" {
				for _, a := range anns {
					printDetail(cmd.ErrOrStderr(), "%s: %d wells", a.Label, len(a.Wells))
				}
				printFile(cmd.ErrOrStderr(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
