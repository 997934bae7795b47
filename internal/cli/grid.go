package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// gridOptions controls renderGrid.
type gridOptions struct {
	hideLabels bool
}

// renderGrid draws the plate as rows of glyphs: a filled dot in the color of
// the first annotation covering the well, a cross for excluded wells and an
// open dot otherwise. A legend with one line per annotation follows.
func renderGrid(size plate.Size, anns []annotation.WellAnnotation, excluded []int, opts gridOptions) (string, error) {
	p, err := plate.New(size)
	if err != nil {
		return "", err
	}
	geom := p.Geometry()

	cellWidth := len(plate.ColLabel(geom.Cols-1)) + 1
	labelWidth := len(plate.RowLabel(geom.Rows-1)) + 1
	cell := lipgloss.NewStyle().Width(cellWidth)
	rowLabel := StyleDim.Width(labelWidth)

	isExcluded := make(map[int]bool, len(excluded))
	for _, w := range excluded {
		isExcluded[w] = true
	}

	var lines []string
	if !opts.hideLabels {
		var b strings.Builder
		b.WriteString(rowLabel.Render(""))
		for c := range geom.Cols {
			b.WriteString(StyleDim.Width(cellWidth).Render(plate.ColLabel(c)))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	for r := range geom.Rows {
		var b strings.Builder
		if !opts.hideLabels {
			b.WriteString(rowLabel.Render(plate.RowLabel(r)))
		}
		for c := range geom.Cols {
			well := r*geom.Cols + c
			switch owner := firstCovering(anns, well); {
			case isExcluded[well]:
				b.WriteString(cell.Foreground(colorDim).Render(iconExcluded))
			case owner != nil:
				b.WriteString(cell.Foreground(owner.Style.Color).Render(iconFilled))
			default:
				b.WriteString(cell.Foreground(colorGray).Render(iconWell))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	if len(anns) > 0 {
		lines = append(lines, "")
	}
	for _, a := range anns {
		label, err := p.LabelForWells(a.Wells)
		if err != nil {
			return "", err
		}
		dot := lipgloss.NewStyle().Foreground(a.Style.Color).Render(iconFilled)
		lines = append(lines, dot+" "+StyleValue.Render(a.Label)+" "+StyleDim.Render(label))
	}
	return strings.Join(lines, "\n"), nil
}

func firstCovering(anns []annotation.WellAnnotation, well int) *annotation.WellAnnotation {
	for i := range anns {
		if anns[i].Covers(well) {
			return &anns[i]
		}
	}
	return nil
}
