package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCommand draws a plate in the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var hideLabels bool

	cmd := &cobra.Command{
		Use:   "show <document.json|file.csv|file.xlsx>",
		Short: "Draw a plate and its annotations in the terminal",
		Long: `Draw a plate as a grid of wells:

  ●  annotated, in the color of the first annotation covering the well
  ×  excluded
  ○  empty

A legend lists each annotation with its wells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts := gridOptions{hideLabels: c.cfg.HideLabels}
			if cmd.Flags().Changed("hide-labels") {
				opts.hideLabels = hideLabels
			}

			grid, err := renderGrid(doc.PlateSize, doc.Annotations, doc.Excluded, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("%d-well plate", int(doc.PlateSize))))
			fmt.Fprintln(out, grid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hideLabels, "hide-labels", false, "hide row and column labels")
	return cmd
}
