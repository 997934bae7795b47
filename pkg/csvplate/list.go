package csvplate

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// WellRecord is one line of the long format.
type WellRecord struct {
	Well        string            // well label, e.g. "B7"
	Annotations string            // covering labels joined by " | "
	Fields      map[string]string // merged metadata, nil when empty
}

// List returns one record per well of the plate, in index order.
// When several annotations set the same field for a well, the one that
// comes last in anns wins. Annotated indices off the plate are ignored.
func List(anns []annotation.WellAnnotation, size plate.Size) ([]WellRecord, error) {
	p, err := plate.New(size)
	if err != nil {
		return nil, err
	}

	records := make([]WellRecord, int(size))
	labels := make([][]string, int(size))
	for i := range records {
		if records[i].Well, err = p.IndexToLabel(i); err != nil {
			return nil, err
		}
	}

	for _, a := range anns {
		for _, w := range slices.Compact(slices.Sorted(slices.Values(a.Wells))) {
			if w < 0 || w >= int(size) {
				continue
			}
			labels[w] = append(labels[w], a.Label)
			if fields := a.MetadataFor(w); fields != nil {
				if records[w].Fields == nil {
					records[w].Fields = make(map[string]string, len(fields))
				}
				maps.Copy(records[w].Fields, fields)
			}
		}
	}
	for i := range records {
		records[i].Annotations = strings.Join(labels[i], EntrySeparator)
	}
	return records, nil
}

// WriteList writes records as CSV with the header
// "Well,Annotations,<field names in sorted order>".
func WriteList(w io.Writer, records []WellRecord) error {
	return writeAll(w, ListRecords(records))
}

// ListRecords flattens records into CSV rows, header first.
func ListRecords(records []WellRecord) [][]string {
	names := make(map[string]struct{})
	for _, r := range records {
		for k := range r.Fields {
			names[k] = struct{}{}
		}
	}
	fields := slices.Sorted(maps.Keys(names))

	out := make([][]string, 0, len(records)+1)
	out = append(out, append([]string{"Well", "Annotations"}, fields...))
	for _, r := range records {
		row := make([]string, 0, len(fields)+2)
		row = append(row, r.Well, r.Annotations)
		for _, k := range fields {
			row = append(row, r.Fields[k])
		}
		out = append(out, row)
	}
	return out
}
