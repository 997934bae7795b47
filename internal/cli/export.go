package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/csvplate"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/xlsxplate"
)

// Export formats.
const (
	exportCSV  = "csv"
	exportList = "list"
	exportXLSX = "xlsx"
)

var exportFormats = []string{exportCSV, exportList, exportXLSX}

// exportCommand writes an annotation document in a spreadsheet format.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <document.json|file.csv|file.xlsx>",
		Short: "Write annotations as a plate CSV, a per-well list or a workbook",
		Long: `Write annotations in one of three formats:

  csv   the plate grid, one line per plate row
  list  one line per well: Well, Annotations, then every metadata field
  xlsx  an Excel workbook with a colored "Plate" sheet and a "Wells" list`,
		Example: `  platemap export plate.json
  platemap export plate.json -f list -o wells.csv
  platemap export plate.json -f xlsx -o plate.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(exportFormats, format) {
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want csv, list or xlsx)", format)
			}
			if format == exportXLSX && output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "xlsx export needs --output")
			}

			doc, err := c.readDocument(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			anns, size := doc.Annotations, doc.PlateSize

			switch format {
			case exportXLSX:
				err = xlsxplate.Export(output, anns, size)
			case exportList:
				err = writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
					records, err := csvplate.List(anns, size)
					if err != nil {
						return err
					}
					return csvplate.WriteList(w, records)
				})
			default:
				err = writeTo(output, cmd.OutOrStdout(), func(w io.Writer) error {
					return csvplate.Write(w, anns, size)
				})
			}
			if err != nil {
				return err
			}

			if output != "" {
				printSuccess(cmd.ErrOrStderr(), "Exported %d annotations as %s", len(anns), format)
				printFile(cmd.ErrOrStderr(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", exportCSV, "output format: csv, list, xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
