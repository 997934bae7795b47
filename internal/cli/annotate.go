package cli

import (
	"io"
	"maps"

	"github.com/spf13/cobra"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	pkgio "github.com/nitro-bio/platemap/pkg/io"
	"github.com/nitro-bio/platemap/pkg/plate"
)

type annotateOpts struct {
	input  string
	rows   []int
	cols   []int
	meta   map[string]string
	output string
}

// annotateCommand adds a labeled group of wells to a document.
func (c *CLI) annotateCommand() *cobra.Command {
	var opts annotateOpts

	cmd := &cobra.Command{
		Use:   "annotate <label> [range]",
		Short: "Add a labeled group of wells to an annotation document",
		Long: `Add wells to the annotation with the given label, creating it if needed.

Wells come from a range label ("A1:A6, B1") and from --row and --col, which
toggle whole rows and columns: a row whose wells are all selected already is
removed again. Excluded wells are never added.

New annotations get a fresh id and the next style of the palette.`,
		Example: `  platemap annotate "Treatment 1" "A1:A6" -o plate.json
  platemap annotate Vehicle --in plate.json --col 11 --meta lot=42 -o plate.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := c.annotateTarget(cmd, opts.input)
			if err != nil {
				return err
			}
			p, err := plate.New(doc.PlateSize)
			if err != nil {
				return err
			}

			var picked []int
			if len(args) == 2 {
				if picked, err = p.ParseLabelRange(args[1]); err != nil {
					return err
				}
			}

			var sel annotation.Selection
			sel.Commit(picked, doc.Excluded)
			if dropped := len(picked) - len(sel.Wells); dropped > 0 {
				logger.Debugf("Skipped %d excluded wells", dropped)
			}
			geom := p.Geometry()
			for _, row := range opts.rows {
				if row < 0 || row >= geom.Rows {
					return errors.New(errors.ErrCodeInvalidInput, "row %d is outside a %d-row plate", row, geom.Rows)
				}
				sel.ToggleRow(p, row)
			}
			for _, col := range opts.cols {
				if col < 0 || col >= geom.Cols {
					return errors.New(errors.ErrCodeInvalidInput, "column %d is outside a %d-column plate", col, geom.Cols)
				}
				sel.ToggleColumn(p, col)
			}
			if len(sel.Wells) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no wells selected")
			}

			ann, err := upsertAnnotation(&doc, args[0], sel.Wells, opts.meta)
			if err != nil {
				return err
			}

			if err := writeTo(opts.output, cmd.OutOrStdout(), func(w io.Writer) error {
				return pkgio.WriteJSON(doc, w)
			}); err != nil {
				return err
			}
			label, _ := p.LabelForWells(ann.Wells)
			logger.Infof("Annotated %s: %s", ann.Label, label)
			if opts.output != "" {
				printFile(cmd.ErrOrStderr(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "in", "", "document to extend (new document if empty)")
	cmd.Flags().IntSliceVar(&opts.rows, "row", nil, "toggle zero-based rows")
	cmd.Flags().IntSliceVar(&opts.cols, "col", nil, "toggle zero-based columns")
	cmd.Flags().StringToStringVar(&opts.meta, "meta", nil, "annotation metadata as key=value")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// annotateTarget loads the document to extend, or starts an empty one.
func (c *CLI) annotateTarget(cmd *cobra.Command, input string) (pkgio.Document, error) {
	if input != "" {
		return c.readDocument(cmd.Context(), input, cmd.InOrStdin())
	}
	excluded, err := c.cfg.ExcludedWells()
	if err != nil {
		return pkgio.Document{}, err
	}
	return pkgio.Document{PlateSize: c.size(), Excluded: excluded}, nil
}

// upsertAnnotation adds wells and meta to the annotation labeled label,
// appending a new annotation when there is none.
func upsertAnnotation(doc *pkgio.Document, label string, wells []int, meta map[string]string) (annotation.WellAnnotation, error) {
	for i := range doc.Annotations {
		a := &doc.Annotations[i]
		if a.Label != label {
			continue
		}
		for _, w := range wells {
			a.Add(w, nil)
		}
		if len(meta) > 0 {
			if a.Metadata == nil {
				a.Metadata = make(map[string]string, len(meta))
			}
			maps.Copy(a.Metadata, meta)
		}
		return *a, a.Validate()
	}

	pool := annotation.NewStylePool()
	for range doc.Annotations {
		pool.Next()
	}
	a, err := annotation.New(label, pool.Next(), wells...)
	if err != nil {
		return annotation.WellAnnotation{}, err
	}
	if len(meta) > 0 {
		a.Metadata = maps.Clone(meta)
	}
	if err := a.Validate(); err != nil {
		return annotation.WellAnnotation{}, err
	}
	doc.Annotations = append(doc.Annotations, a)
	return a, nil
}
