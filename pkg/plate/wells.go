package plate

import (
	"slices"
	"strings"
)

// RowsToWells returns the wells of each requested row, in input order.
//
// A row is skipped with a diagnostic when row < 0 or row > cols. The bound is
// the column count, not the row count, so on rectangular plates rows between
// the last row and the column count are accepted and yield indices past the
// end of the plate.
func RowsToWells(size Size, rows []int) ([]int, error) {
	p, err := New(size)
	if err != nil {
		return nil, err
	}
	return p.RowsToWells(rows), nil
}

// RowsToWells returns the wells of each requested row, in input order.
func (p *Plate) RowsToWells(rows []int) []int {
	cols := p.geom.Cols
	wells := make([]int, 0, len(rows)*cols)
	for _, row := range rows {
		if row < 0 || row > cols {
			p.logger.Debugf("Row number %d is out of bounds for plate with %d columns", row, cols)
			continue
		}
		for c := range cols {
			wells = append(wells, row*cols+c)
		}
	}
	return wells
}

// ColumnsToWells returns the wells of each requested column, in input order.
// Columns outside [0, cols) are skipped with a diagnostic.
func ColumnsToWells(size Size, columns []int) ([]int, error) {
	p, err := New(size)
	if err != nil {
		return nil, err
	}
	return p.ColumnsToWells(columns), nil
}

// ColumnsToWells returns the wells of each requested column, in input order.
func (p *Plate) ColumnsToWells(columns []int) []int {
	rows, cols := p.geom.Rows, p.geom.Cols
	wells := make([]int, 0, len(columns)*rows)
	for _, col := range columns {
		if col < 0 || col >= cols {
			p.logger.Debugf("Column number %d is out of bounds for plate with %d columns", col, cols)
			continue
		}
		for r := range rows {
			wells = append(wells, r*cols+col)
		}
	}
	return wells
}

// EdgeWells returns every well on the plate perimeter in row-major order.
func EdgeWells(size Size) ([]int, error) {
	p, err := New(size)
	if err != nil {
		return nil, err
	}
	return p.EdgeWells(), nil
}

// EdgeWells returns every well on the plate perimeter in row-major order.
func (p *Plate) EdgeWells() []int {
	rows, cols := p.geom.Rows, p.geom.Cols
	var wells []int
	for row := range rows {
		for col := range cols {
			if row == 0 || row == rows-1 || col == 0 || col == cols-1 {
				wells = append(wells, row*cols+col)
			}
		}
	}
	return wells
}

// LabelForWells compresses wells into a comma-separated range label.
//
// The wells are sorted and each run of consecutive indices becomes either a
// single label ("A1") or a "Start:End" pair ("A1:A12"). Runs follow linear
// index order, so a run may wrap from the end of one row into the next.
// An empty input yields "".
func LabelForWells(wells []int, size Size) (string, error) {
	p, err := New(size)
	if err != nil {
		return "", err
	}
	return p.LabelForWells(wells)
}

// LabelForWells compresses wells into a comma-separated range label.
func (p *Plate) LabelForWells(wells []int) (string, error) {
	if len(wells) == 0 {
		return "", nil
	}
	sorted := slices.Clone(wells)
	slices.Sort(sorted)

	var labels []string
	start, prev := sorted[0], sorted[0]
	flush := func() error {
		startLabel, err := p.IndexToLabel(start)
		if err != nil {
			return err
		}
		if start == prev {
			labels = append(labels, startLabel)
			return nil
		}
		endLabel, err := p.IndexToLabel(prev)
		if err != nil {
			return err
		}
		labels = append(labels, startLabel+":"+endLabel)
		return nil
	}

	for _, w := range sorted[1:] {
		if w != prev+1 {
			if err := flush(); err != nil {
				return "", err
			}
			start = w
		}
		prev = w
	}
	if err := flush(); err != nil {
		return "", err
	}
	return strings.Join(labels, ", "), nil
}

// RowLabels returns a single-character label per row: 'A', 'B', ...
//
// Unlike [RowLabel] this never produces two letters, so on the 1536-well plate
// rows 26-31 are labeled with the characters that follow 'Z' in ASCII.
func RowLabels(size Size) ([]string, error) {
	geom, err := Dimensions(size)
	if err != nil {
		return nil, err
	}
	labels := make([]string, geom.Rows)
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	return labels, nil
}
