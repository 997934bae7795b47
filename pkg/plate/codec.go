package plate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nitro-bio/platemap/pkg/errors"
)

var labelPattern = regexp.MustCompile(`^([A-Z]+)(\d+)$`)

// RowLabel returns the letters for a zero-based row.
//
// Rows 0-25 map to 'A'-'Z'. Beyond that the first letter is '@'+row/26 and the
// second 'A'+row%26, so row 26 is "AA" and row 31 is "AF". This is not a
// bijective base-26 numbering, but [LabelToIndex] decodes every label it
// produces for the supported plate sizes.
func RowLabel(row int) string {
	if row <= 25 {
		return string(rune('A' + row))
	}
	return string(rune('@'+row/26)) + string(rune('A'+row%26))
}

// ColLabel returns the one-based column number for a zero-based column.
func ColLabel(col int) string {
	return strconv.Itoa(col + 1)
}

// IndexToLabel converts a well index to its spreadsheet-style label.
// Indices past the last well extrapolate into further rows; negative
// indices fail with INVALID_INPUT.
func IndexToLabel(index int, size Size) (string, error) {
	p, err := New(size)
	if err != nil {
		return "", err
	}
	return p.IndexToLabel(index)
}

// IndexToLabel converts a well index to its spreadsheet-style label.
func (p *Plate) IndexToLabel(index int) (string, error) {
	if index < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "negative well index %d", index)
	}
	row, col := index/p.geom.Cols, index%p.geom.Cols
	return RowLabel(row) + ColLabel(col), nil
}

// LabelToIndex converts a label such as "B7" to a well index.
//
// A label that is not uppercase letters followed by digits fails with
// INVALID_LABEL_FORMAT. A well-formed label that falls outside the plate
// returns ok == false and no error; callers should skip it.
func LabelToIndex(label string, size Size) (index int, ok bool, err error) {
	p, err := New(size)
	if err != nil {
		return 0, false, err
	}
	return p.LabelToIndex(label)
}

// LabelToIndex converts a label such as "B7" to a well index.
func (p *Plate) LabelToIndex(label string) (index int, ok bool, err error) {
	m := labelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, false, errors.New(errors.ErrCodeInvalidLabelFormat, "invalid cell reference: %s", label)
	}

	row := 0
	for _, ch := range m[1] {
		row = row*26 + int(ch-'A'+1)
		if row > p.geom.Rows {
			break
		}
	}
	row--

	col, convErr := strconv.Atoi(m[2])
	col--
	if convErr != nil || row >= p.geom.Rows || col < 0 || col >= p.geom.Cols {
		p.logger.Debugf("Invalid cell reference %s for plate with %d wells", label, int(p.size))
		return 0, false, nil
	}
	return row*p.geom.Cols + col, true, nil
}

// CSVCellToIndex decodes a cell reference whose row is a single letter.
//
// It is the legacy tabular decoder: the row is cell[0]-'A', the column is the
// remaining digits minus one, and no bounds are checked. Use [LabelToIndex]
// for anything that may carry multi-letter rows.
func CSVCellToIndex(cell string, size Size) (int, error) {
	geom, err := Dimensions(size)
	if err != nil {
		return 0, err
	}
	if len(cell) < 2 {
		return 0, errors.New(errors.ErrCodeInvalidLabelFormat, "invalid cell reference: %s", cell)
	}
	col, err := strconv.Atoi(cell[1:])
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidLabelFormat, "invalid cell reference: %s", cell)
	}
	row := int(cell[0]) - 'A'
	return row*geom.Cols + col - 1, nil
}
