package annotation

import (
	"slices"
	"testing"

	"github.com/nitro-bio/platemap/pkg/plate"
)

func TestSelectionCommit(t *testing.T) {
	var s Selection
	s.Commit([]int{5, 1, 2, 5, 3}, []int{2})
	if !slices.Equal(s.Wells, []int{5, 1, 3}) {
		t.Errorf("Wells = %v, want [5 1 3]", s.Wells)
	}
	if !slices.Equal(s.Excluded, []int{2}) {
		t.Errorf("Excluded = %v, want [2]", s.Excluded)
	}
}

func TestSelectionApply(t *testing.T) {
	tests := []struct {
		name    string
		start   []int
		keys    []int
		buildUp bool
		want    []int
	}{
		{"replace", []int{1, 2}, []int{7, 8}, false, []int{7, 8}},
		{"replace drops excluded", nil, []int{0, 7}, false, []int{7}},
		{"build up adds", []int{1}, []int{2, 3}, true, []int{1, 2, 3}},
		{"build up partial overlap adds", []int{1, 2}, []int{2, 3}, true, []int{1, 2, 3}},
		{"build up removes when all selected", []int{1, 2, 3}, []int{3, 1}, true, []int{2}},
		{"only excluded keys add nothing", []int{1}, []int{0}, true, []int{1}},
		{"empty batch in build up", []int{1}, nil, true, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{Wells: slices.Clone(tt.start), Excluded: []int{0}}
			s.Apply(tt.keys, tt.buildUp)
			if !slices.Equal(s.Wells, tt.want) {
				t.Errorf("Wells = %v, want %v", s.Wells, tt.want)
			}
		})
	}
}

func TestSelectionToggles(t *testing.T) {
	p, err := plate.New(plate.Size24)
	if err != nil {
		t.Fatal(err)
	}
	s := Selection{Excluded: []int{0}}

	s.ToggleRow(p, 0)
	if !slices.Equal(s.Wells, []int{1, 2, 3, 4, 5}) {
		t.Errorf("after ToggleRow(0) Wells = %v", s.Wells)
	}

	s.ToggleColumn(p, 1)
	if !slices.Equal(s.Wells, []int{1, 2, 3, 4, 5, 7, 13, 19}) {
		t.Errorf("after ToggleColumn(1) Wells = %v", s.Wells)
	}

	s.ToggleColumn(p, 1)
	if !slices.Equal(s.Wells, []int{2, 3, 4, 5}) {
		t.Errorf("after second ToggleColumn(1) Wells = %v", s.Wells)
	}

	s.ToggleWell(2)
	s.ToggleWell(0)
	if s.Contains(2) || s.Contains(0) {
		t.Errorf("Wells = %v, want neither 0 nor 2", s.Wells)
	}
}

func TestSelectionNeverContainsExcluded(t *testing.T) {
	p, _ := plate.New(plate.Size96)
	edge := p.EdgeWells()
	s := Selection{Excluded: edge}
	for row := range 8 {
		s.ToggleRow(p, row)
	}
	s.Apply(edge, true)
	for _, w := range edge {
		if s.Contains(w) {
			t.Fatalf("excluded well %d selected", w)
		}
	}
	if len(s.Wells) != 96-len(edge) {
		t.Errorf("len(Wells) = %d, want %d", len(s.Wells), 96-len(edge))
	}
}
