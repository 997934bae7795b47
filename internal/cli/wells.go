package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// wellsCommand groups the well-set queries.
func (c *CLI) wellsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wells",
		Short: "List the wells of rows, columns, the plate edge or a range",
		Long: `List a set of wells as a compressed range label followed by the
zero-based well indices.

Rows and columns are zero-based. Out-of-range rows and columns are skipped
(see --verbose for the diagnostics).`,
	}

	cmd.AddCommand(c.wellsRowsCommand())
	cmd.AddCommand(c.wellsColsCommand())
	cmd.AddCommand(c.wellsEdgeCommand())
	cmd.AddCommand(c.wellsRangeCommand())
	return cmd
}

func (c *CLI) wellsRowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rows <row>...",
		Short:   "Wells of the given rows, in argument order",
		Example: "  platemap wells rows 0 2 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseInts(args)
			if err != nil {
				return err
			}
			p, err := c.plate(cmd)
			if err != nil {
				return err
			}
			return printWellSet(cmd.OutOrStdout(), p, p.RowsToWells(rows))
		},
	}
}

func (c *CLI) wellsColsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "cols <column>...",
		Aliases: []string{"columns"},
		Short:   "Wells of the given columns, in argument order",
		Example: "  platemap wells cols 0 11",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := parseInts(args)
			if err != nil {
				return err
			}
			p, err := c.plate(cmd)
			if err != nil {
				return err
			}
			return printWellSet(cmd.OutOrStdout(), p, p.ColumnsToWells(cols))
		},
	}
}

func (c *CLI) wellsEdgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edge",
		Short: "Wells on the plate perimeter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.plate(cmd)
			if err != nil {
				return err
			}
			return printWellSet(cmd.OutOrStdout(), p, p.EdgeWells())
		},
	}
}

func (c *CLI) wellsRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "range <expr>",
		Short:   "Expand a range label such as \"A1:A12, H1\"",
		Example: `  platemap wells range "A1:A3, H12"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.plate(cmd)
			if err != nil {
				return err
			}
			wells, err := p.ParseLabelRange(args[0])
			if err != nil {
				return err
			}
			return printWellSet(cmd.OutOrStdout(), p, wells)
		},
	}
}

// plate returns a Plate for the configured size that logs to the command logger.
func (c *CLI) plate(cmd *cobra.Command) (*plate.Plate, error) {
	return plate.New(c.size(), plate.WithLogger(loggerFromContext(cmd.Context())))
}

func printWellSet(w io.Writer, p *plate.Plate, wells []int) error {
	label, err := p.LabelForWells(wells)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, label)
	fmt.Fprintln(w, joinInts(wells))
	return nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid number %q", arg)
		}
		out[i] = n
	}
	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
