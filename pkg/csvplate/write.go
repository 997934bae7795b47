package csvplate

import (
	"bytes"
	"encoding/csv"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Grid renders annotations as plate-grid records: a header "idx,1..cols"
// then one record per plate row, led by its row letter.
func Grid(anns []annotation.WellAnnotation, size plate.Size) ([][]string, error) {
	geom, err := plate.Dimensions(size)
	if err != nil {
		return nil, err
	}

	header := make([]string, geom.Cols+1)
	header[0] = "idx"
	for c := range geom.Cols {
		header[c+1] = plate.ColLabel(c)
	}

	records := make([][]string, 0, geom.Rows+1)
	records = append(records, header)
	for r := range geom.Rows {
		rec := make([]string, geom.Cols+1)
		rec[0] = plate.RowLabel(r)
		for c := range geom.Cols {
			rec[c+1] = FormatCell(anns, r*geom.Cols+c)
		}
		records = append(records, rec)
	}
	return records, nil
}

// FormatCell renders every annotation covering well, in slice order, joined
// by [EntrySeparator]. Metadata keys are sorted; a well without fields is
// written as the bare label.
func FormatCell(anns []annotation.WellAnnotation, well int) string {
	var entries []string
	for _, a := range anns {
		if !a.Covers(well) {
			continue
		}
		entries = append(entries, FormatEntry(a.Label, a.MetadataFor(well)))
	}
	return strings.Join(entries, EntrySeparator)
}

// FormatEntry renders "Label (k: v; k: v)", or just the label without fields.
func FormatEntry(label string, fields map[string]string) string {
	if len(fields) == 0 {
		return label
	}
	pairs := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		pairs = append(pairs, k+": "+fields[k])
	}
	return label + " (" + strings.Join(pairs, "; ") + ")"
}

// Format renders the plate grid as CSV text. Lines are separated by '\n'
// with no trailing newline; cells are quoted only when they must be.
func Format(anns []annotation.WellAnnotation, size plate.Size) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, anns, size); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Write writes the plate grid as CSV, one line per record.
func Write(w io.Writer, anns []annotation.WellAnnotation, size plate.Size) error {
	records, err := Grid(anns, size)
	if err != nil {
		return err
	}
	return writeAll(w, records)
}

func writeAll(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write csv")
	}
	return nil
}
