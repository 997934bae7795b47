package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// labelCommand converts well indices to labels.
func (c *CLI) labelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "label <index>...",
		Short: "Convert zero-based well indices to labels",
		Example: `  platemap label 0 95
  platemap label -s 1536 1248`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plate.New(c.size())
			if err != nil {
				return err
			}
			for _, arg := range args {
				index, err := strconv.Atoi(arg)
				if err != nil {
					return errors.New(errors.ErrCodeInvalidInput, "invalid well index %q", arg)
				}
				label, err := p.IndexToLabel(index)
				if err != nil {
					return err
				}
				if !p.Geometry().Contains(index) {
					loggerFromContext(cmd.Context()).Warnf("Well %d is past the end of a %d-well plate", index, int(p.Size()))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", index, label)
			}
			return nil
		},
	}
}

// indexCommand converts labels to well indices.
func (c *CLI) indexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <label>...",
		Short: "Convert well labels to zero-based indices",
		Example: `  platemap index A1 H12
  platemap index -s 1536 AF48`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plate.New(c.size(), plate.WithLogger(loggerFromContext(cmd.Context())))
			if err != nil {
				return err
			}
			for _, label := range args {
				index, ok, err := p.LabelToIndex(label)
				if err != nil {
					return err
				}
				if !ok {
					printWarning(cmd.ErrOrStderr(), "%s is outside a %d-well plate", label, int(p.Size()))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", label, index)
			}
			return nil
		},
	}
}
