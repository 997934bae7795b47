package cli

import (
	"io"
	"math/rand/v2"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/annotation"
	pkgio "github.com/nitro-bio/platemap/pkg/io"
	"github.com/nitro-bio/platemap/pkg/plate"
)

type randomizeOpts struct {
	exclude string
	edge    bool
	seed    uint64
	output  string
}

// randomizeCommand shuffles annotated wells across the free wells of a plate.
func (c *CLI) randomizeCommand() *cobra.Command {
	var opts randomizeOpts

	cmd := &cobra.Command{
		Use:   "randomize <document.json|file.csv|file.xlsx>",
		Short: "Move annotated wells to random free wells",
		Long: `Move every annotated well to a random well that is not excluded.

Annotations keep their sizes, and a well shared by several annotations stays
shared. Excluded wells stay where they are and receive no other well. The
result is a new annotation document.

Use --seed (or "seed" in the config file) for a reproducible layout.`,
		Example: `  platemap randomize plate.json --edge --seed 42 -o shuffled.json
  platemap randomize plate.csv --exclude "A1:A12"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := c.readDocument(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			excluded, err := opts.excluded(doc)
			if err != nil {
				return err
			}

			seed := c.cfg.Seed
			if cmd.Flags().Changed("seed") {
				seed = opts.seed
			}
			if seed == 0 {
				seed = rand.Uint64()
				printInfo(cmd.ErrOrStderr(), "Using random seed %d", seed)
			}
			logger.Debug("Randomizing", "seed", seed, "excluded", len(excluded))

			anns, err := annotation.Randomize(annotation.RandomizeRequest{
				Size:        doc.PlateSize,
				Excluded:    excluded,
				Annotations: doc.Annotations,
			}, annotation.NewRand(seed))
			if err != nil {
				return err
			}

			out := pkgio.Document{PlateSize: doc.PlateSize, Excluded: excluded, Annotations: anns}
			if err := writeTo(opts.output, cmd.OutOrStdout(), func(w io.Writer) error {
				return pkgio.WriteJSON(out, w)
			}); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess(cmd.ErrOrStderr(), "Randomized %d annotations (seed %d)", len(anns), seed)
				printFile(cmd.ErrOrStderr(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.exclude, "exclude", "", "additional excluded wells as a range label")
	cmd.Flags().BoolVar(&opts.edge, "edge", false, "exclude the plate perimeter")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// excluded merges the document's excluded wells with the flag selections.
func (o randomizeOpts) excluded(doc pkgio.Document) ([]int, error) {
	excluded := slices.Clone(doc.Excluded)
	if o.exclude != "" {
		wells, err := plate.ParseLabelRange(o.exclude, doc.PlateSize)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, wells...)
	}
	if o.edge {
		edge, err := plate.EdgeWells(doc.PlateSize)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, edge...)
	}
	slices.Sort(excluded)
	return slices.Compact(excluded), nil
}
