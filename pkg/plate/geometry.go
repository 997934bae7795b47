package plate

import (
	"strconv"
	"strings"

	"github.com/nitro-bio/platemap/pkg/errors"
)

// Size is the total number of wells on a plate.
type Size int

// Supported plate sizes.
const (
	Size24   Size = 24
	Size48   Size = 48
	Size96   Size = 96
	Size384  Size = 384
	Size1536 Size = 1536
)

// Sizes returns every supported plate size in ascending order.
func Sizes() []Size {
	return []Size{Size24, Size48, Size96, Size384, Size1536}
}

// Geometry is the row × column grid of a plate.
type Geometry struct {
	Rows int
	Cols int
}

// Wells returns the number of wells in the grid.
func (g Geometry) Wells() int { return g.Rows * g.Cols }

// Contains reports whether index addresses a well inside the grid.
func (g Geometry) Contains(index int) bool { return index >= 0 && index < g.Wells() }

// Dimensions returns the grid for size.
// Any size other than the five supported ones fails with INVALID_PLATE_SIZE.
func Dimensions(size Size) (Geometry, error) {
	switch size {
	case Size24:
		return Geometry{Rows: 4, Cols: 6}, nil
	case Size48:
		return Geometry{Rows: 6, Cols: 8}, nil
	case Size96:
		return Geometry{Rows: 8, Cols: 12}, nil
	case Size384:
		return Geometry{Rows: 16, Cols: 24}, nil
	case Size1536:
		return Geometry{Rows: 32, Cols: 48}, nil
	default:
		return Geometry{}, errors.New(errors.ErrCodeInvalidPlateSize, "invalid number of wells %d", int(size))
	}
}

// ParseSize parses a decimal plate size such as "96".
func ParseSize(s string) (Size, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidPlateSize, "invalid number of wells %q", s)
	}
	size := Size(n)
	if _, err := Dimensions(size); err != nil {
		return 0, err
	}
	return size, nil
}

// String returns the decimal well count.
func (s Size) String() string { return strconv.Itoa(int(s)) }
