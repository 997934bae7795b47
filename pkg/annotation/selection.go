package annotation

import (
	"slices"

	"github.com/nitro-bio/platemap/pkg/plate"
)

// Selection is the set of picked wells in a plate view plus the wells that
// may never be picked. Wells never contains an excluded index.
type Selection struct {
	Wells    []int
	Excluded []int
}

// Commit replaces the selection and the excluded list together. Excluded
// wells are dropped from wells; the rest keep their first-seen order.
func (s *Selection) Commit(wells, excluded []int) {
	s.Excluded = slices.Clone(excluded)
	s.Wells = s.filter(wells)
}

// Apply merges a batch of picked keys, as produced by a drag or a click.
//
// Without buildUp the batch replaces the selection. With buildUp the batch
// is removed when every key in it is already selected, and added otherwise.
// Excluded keys are ignored in both modes.
func (s *Selection) Apply(keys []int, buildUp bool) {
	batch := s.filter(keys)
	if !buildUp {
		s.Wells = batch
		return
	}

	allSelected := len(batch) > 0
	for _, k := range batch {
		if !slices.Contains(s.Wells, k) {
			allSelected = false
			break
		}
	}

	if allSelected {
		s.Wells = slices.DeleteFunc(s.Wells, func(w int) bool {
			return slices.Contains(batch, w)
		})
		return
	}
	for _, k := range batch {
		if !slices.Contains(s.Wells, k) {
			s.Wells = append(s.Wells, k)
		}
	}
}

// ToggleWell adds or removes a single well.
func (s *Selection) ToggleWell(well int) {
	s.Apply([]int{well}, true)
}

// ToggleRow adds or removes every well of row.
func (s *Selection) ToggleRow(p *plate.Plate, row int) {
	cols := p.Geometry().Cols
	keys := make([]int, cols)
	for col := range cols {
		keys[col] = row*cols + col
	}
	s.Apply(keys, true)
}

// ToggleColumn adds or removes every well of col.
func (s *Selection) ToggleColumn(p *plate.Plate, col int) {
	geom := p.Geometry()
	keys := make([]int, geom.Rows)
	for row := range geom.Rows {
		keys[row] = row*geom.Cols + col
	}
	s.Apply(keys, true)
}

// Contains reports whether well is selected.
func (s *Selection) Contains(well int) bool {
	return slices.Contains(s.Wells, well)
}

// filter drops excluded keys and duplicates, keeping first-seen order.
func (s *Selection) filter(keys []int) []int {
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		if slices.Contains(s.Excluded, k) || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}
	return out
}
