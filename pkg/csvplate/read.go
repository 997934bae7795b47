package csvplate

import (
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Row is one data row of a plate grid.
type Row struct {
	// Label is the text of the first column, normally the row letter.
	Label string

	// Cells holds the remaining columns in header order.
	Cells []Cell
}

// Cell is a non-header grid cell.
type Cell struct {
	Column string // header text, normally a 1-based column number
	Value  string
}

// ReadRows reads a plate grid. The first record is the header. Blank lines
// are skipped and rows may be shorter or longer than the header; values past
// the last header column are dropped.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read plate csv")
	}
	return RowsFromRecords(records), nil
}

// RowsFromRecords builds rows from raw records, the first being the header.
// Records whose fields are all empty are skipped.
func RowsFromRecords(records [][]string) []Row {
	var header []string
	var rows []Row
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if header == nil {
			header = rec
			continue
		}
		row := Row{Label: strings.TrimSpace(rec[0])}
		for j := 1; j < len(header) && j < len(rec); j++ {
			row.Cells = append(row.Cells, Cell{Column: strings.TrimSpace(header[j]), Value: rec[j]})
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(rec []string) bool {
	return !slices.ContainsFunc(rec, func(f string) bool { return f != "" })
}

// CheckPlateFormat reports whether rows has exactly one row per plate row and
// every row label is one of [plate.RowLabels].
func CheckPlateFormat(rows []Row, size plate.Size) (bool, error) {
	labels, err := plate.RowLabels(size)
	if err != nil {
		return false, err
	}
	if len(rows) != len(labels) {
		return false, nil
	}
	for _, row := range rows {
		if !slices.Contains(labels, row.Label) {
			return false, nil
		}
	}
	return true, nil
}
