package plate

import (
	"slices"
	"strings"

	"github.com/nitro-bio/platemap/pkg/errors"
)

// ParseLabelRange expands a range label such as "A1:A12, H1" into well
// indices. It accepts what [LabelForWells] produces: comma-separated tokens,
// each a single label or an inclusive "Start:End" run in linear index order.
//
// The result is sorted and free of duplicates. A malformed token fails with
// INVALID_LABEL_FORMAT; a token that addresses a well outside the plate fails
// with INVALID_INPUT.
func ParseLabelRange(expr string, size Size) ([]int, error) {
	p, err := New(size)
	if err != nil {
		return nil, err
	}
	return p.ParseLabelRange(expr)
}

// ParseLabelRange expands a range label into sorted, unique well indices.
func (p *Plate) ParseLabelRange(expr string) ([]int, error) {
	var wells []int
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		startLabel, endLabel, isRun := strings.Cut(token, ":")
		start, err := p.wellForToken(startLabel, token)
		if err != nil {
			return nil, err
		}
		end := start
		if isRun {
			if end, err = p.wellForToken(endLabel, token); err != nil {
				return nil, err
			}
		}
		if start > end {
			start, end = end, start
		}
		for w := start; w <= end; w++ {
			wells = append(wells, w)
		}
	}

	slices.Sort(wells)
	return slices.Compact(wells), nil
}

func (p *Plate) wellForToken(label, token string) (int, error) {
	index, ok, err := p.LabelToIndex(label)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidLabelFormat, err, "invalid range %q", token)
	}
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "well %s is outside a plate of %d wells", strings.TrimSpace(label), int(p.size))
	}
	return index, nil
}
