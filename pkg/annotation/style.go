package annotation

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/nitro-bio/platemap/pkg/errors"
)

// Style is the visual identity of an annotation group.
//
// The class fields are utility-class strings for a web view. Color is the
// terminal color used by the CLI grid and Fill the RGB hex used for
// spreadsheet cells.
type Style struct {
	ID          string
	ButtonClass string
	WellClass   string
	RowClass    string
	ColClass    string
	Color       lipgloss.Color
	Fill        string
}

// The fixed annotation styles.
var (
	Gray = Style{
		ID:          "GRAY_STYLE",
		ButtonClass: "dark:border-gray-500 border-gray-600 dark:text-gray-50 text-gray-900 font-semibold",
		WellClass:   "dark:bg-gray-500 bg-gray-400",
		RowClass:    "dark:bg-gray-400 bg-gray-600",
		ColClass:    "dark:bg-gray-400 bg-gray-600",
		Color:       lipgloss.Color("245"),
		Fill:        "9CA3AF",
	}
	Orange = Style{
		ID:          "ORANGE_STYLE",
		ButtonClass: "dark:border-orange-500 border-orange-600 dark:text-orange-50 text-orange-900 font-semibold",
		WellClass:   "dark:bg-orange-500 bg-orange-400",
		RowClass:    "dark:bg-orange-400 bg-orange-600",
		ColClass:    "dark:bg-orange-400 bg-orange-600",
		Color:       lipgloss.Color("208"),
		Fill:        "FB923C",
	}
	Purple = Style{
		ID:          "PURPLE_STYLE",
		ButtonClass: "dark:border-purple-500 border-purple-600 dark:text-purple-50 text-purple-900 font-semibold",
		WellClass:   "dark:bg-purple-500 bg-purple-400",
		RowClass:    "dark:bg-purple-400 bg-purple-600",
		ColClass:    "dark:bg-purple-400 bg-purple-600",
		Color:       lipgloss.Color("135"),
		Fill:        "C084FC",
	}
	Cyan = Style{
		ID:          "CYAN_STYLE",
		ButtonClass: "dark:border-cyan-500 border-cyan-600 dark:text-cyan-50 text-cyan-900 font-semibold",
		WellClass:   "dark:bg-cyan-500 bg-cyan-400",
		RowClass:    "dark:bg-cyan-400 bg-cyan-600",
		ColClass:    "dark:bg-cyan-400 bg-cyan-600",
		Color:       lipgloss.Color("51"),
		Fill:        "22D3EE",
	}
	Green = Style{
		ID:          "GREEN_STYLE",
		ButtonClass: "dark:border-green-500 border-green-600 dark:text-green-50 text-green-900 font-semibold",
		WellClass:   "dark:bg-green-500 bg-green-400",
		RowClass:    "dark:bg-green-400 bg-green-600",
		ColClass:    "dark:bg-green-400 bg-green-600",
		Color:       lipgloss.Color("42"),
		Fill:        "4ADE80",
	}
	Blue = Style{
		ID:          "BLUE_STYLE",
		ButtonClass: "dark:border-blue-500 border-blue-600 dark:text-blue-50 text-blue-900 font-semibold",
		WellClass:   "dark:bg-blue-500 bg-blue-400",
		RowClass:    "dark:bg-blue-400 bg-blue-600",
		ColClass:    "dark:bg-blue-400 bg-blue-600",
		Color:       lipgloss.Color("33"),
		Fill:        "60A5FA",
	}
	Red = Style{
		ID:          "RED_STYLE",
		ButtonClass: "dark:bg-border-500 border-red-600 dark:text-red-50 text-red-900 font-semibold",
		WellClass:   "dark:bg-red-500 bg-red-400",
		RowClass:    "dark:bg-red-400 bg-red-600",
		ColClass:    "dark:bg-red-400 bg-red-600",
		Color:       lipgloss.Color("196"),
		Fill:        "F87171",
	}
)

var palette = [...]Style{Gray, Orange, Purple, Cyan, Green, Blue, Red}

// Palette returns a fresh copy of the styles in canonical order.
func Palette() []Style {
	return slices.Clone(palette[:])
}

// StyleByID looks up a palette style, failing with INVALID_STYLE.
func StyleByID(id string) (Style, error) {
	for _, s := range palette {
		if s.ID == id {
			return s, nil
		}
	}
	return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown annotation style %q", id)
}

// StylePool allocates styles by popping from the end of the palette.
// When the pool is empty it refills with the full palette.
// The zero value is ready to use.
type StylePool struct {
	free []Style
}

// NewStylePool returns a full pool.
func NewStylePool() *StylePool {
	return &StylePool{free: Palette()}
}

// Next returns the next unused style.
func (p *StylePool) Next() Style {
	if len(p.free) == 0 {
		p.free = Palette()
	}
	s := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return s
}
