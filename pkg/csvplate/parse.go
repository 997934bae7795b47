package csvplate

import (
	"io"
	"regexp"
	"strings"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// EntrySeparator splits annotation entries inside one cell.
const EntrySeparator = " | "

var entryPattern = regexp.MustCompile(`(.+?) \((.+?)\)`)

// Parse reads a plate grid from text and groups its cells into annotations.
func Parse(text string, size plate.Size, opts Options) ([]annotation.WellAnnotation, error) {
	return ParseReader(strings.NewReader(text), size, opts)
}

// ParseReader is [Parse] over a reader.
func ParseReader(r io.Reader, size plate.Size, opts Options) ([]annotation.WellAnnotation, error) {
	if _, err := plate.Dimensions(size); err != nil {
		return nil, err
	}
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, size, opts)
}

// ParseRows groups already-tokenized grid rows into annotations, returned in
// the order their labels were first seen.
func ParseRows(rows []Row, size plate.Size, opts Options) ([]annotation.WellAnnotation, error) {
	opts = opts.WithDefaults()
	logger := opts.Logger

	p, err := plate.New(size, plate.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if ok, _ := CheckPlateFormat(rows, size); !ok {
		logger.Warn("Invalid plate format", "size", int(size), "rows", len(rows), "expected", p.Geometry().Rows)
	}

	var (
		order  []string
		groups = make(map[string]*annotation.WellAnnotation)
		styles = annotation.NewStylePool()
	)

	for i, row := range rows {
		rowLabel := plate.RowLabel(i)
		for _, cell := range row.Cells {
			if cell.Value == "" {
				continue
			}
			ref := rowLabel + cell.Column
			well, ok, err := p.LabelToIndex(ref)
			if err != nil {
				logger.Debug("Skipping malformed cell", "cell", ref, "err", err)
				continue
			}
			if !ok {
				logger.Debugf("Skipping well %s because it's outside of plate of size %d", ref, int(size))
				continue
			}

			for _, entry := range strings.Split(cell.Value, EntrySeparator) {
				label, fields := ParseEntry(entry)
				if label == "" {
					logger.Debug("Skipping empty annotation entry", "cell", ref)
					continue
				}
				g, seen := groups[label]
				if !seen {
					g = &annotation.WellAnnotation{ID: label, Label: label, Style: styles.Next()}
					groups[label] = g
					order = append(order, label)
				}
				g.Add(well, fields)
			}
		}
	}

	out := make([]annotation.WellAnnotation, 0, len(order))
	for _, label := range order {
		out = append(out, *groups[label])
	}
	return out, nil
}

// ParseEntry splits one cell entry such as "Treatment 1 (conc: 10uM; rep: 2)"
// into its label and fields. Pairs split on the first ':'; pairs with an
// empty key or value are dropped. fields is nil when there are none.
func ParseEntry(entry string) (label string, fields map[string]string) {
	m := entryPattern.FindStringSubmatch(entry)
	if m == nil {
		return strings.TrimSpace(entry), nil
	}
	label = strings.TrimSpace(m[1])
	for _, pair := range strings.Split(m[2], ";") {
		key, value, _ := strings.Cut(pair, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		fields[key] = value
	}
	return label, fields
}
