package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/plate"
)

// infoCommand prints the geometry of the configured plate.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show plate geometry, row labels and edge wells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := plate.New(c.size())
			if err != nil {
				return err
			}
			geom := p.Geometry()
			rows, err := plate.RowLabels(p.Size())
			if err != nil {
				return err
			}
			edge, err := p.LabelForWells(p.EdgeWells())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "Wells", strconv.Itoa(geom.Wells()))
			printKeyValue(out, "Rows", strconv.Itoa(geom.Rows))
			printKeyValue(out, "Columns", strconv.Itoa(geom.Cols))
			printKeyValue(out, "Row labels", strings.Join(rows, " "))
			printKeyValue(out, "Edge wells", edge)
			if c.cfg.Excluded != "" {
				printKeyValue(out, "Excluded", c.cfg.Excluded)
			}
			return nil
		},
	}
}
