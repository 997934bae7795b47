package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// Document is a plate with its exclusions and annotations.
type Document struct {
	PlateSize   plate.Size
	Excluded    []int
	Annotations []annotation.WellAnnotation
}

type document struct {
	PlateSize   int      `json:"plate_size"`
	Excluded    []int    `json:"excluded,omitempty"`
	Annotations []record `json:"annotations"`
}

type record struct {
	ID       string                    `json:"id"`
	Label    string                    `json:"label"`
	Wells    []int                     `json:"wells"`
	Style    string                    `json:"style"`
	Metadata map[string]string         `json:"metadata,omitempty"`
	WellData map[int]map[string]string `json:"well_data,omitempty"`
}

// WriteJSON encodes doc as indented JSON.
// The output can be re-imported with [ReadJSON].
func WriteJSON(doc Document, w io.Writer) error {
	out := document{
		PlateSize:   int(doc.PlateSize),
		Excluded:    doc.Excluded,
		Annotations: make([]record, len(doc.Annotations)),
	}
	for i, a := range doc.Annotations {
		wells := a.Wells
		if wells == nil {
			wells = []int{}
		}
		out.Annotations[i] = record{
			ID:       a.ID,
			Label:    a.Label,
			Wells:    wells,
			Style:    a.Style.ID,
			Metadata: a.Metadata,
			WellData: a.WellData,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return nil
}

// ExportJSON writes doc to path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
