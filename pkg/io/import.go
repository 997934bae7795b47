package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

// ReadJSON decodes and validates a document from r.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	size := plate.Size(data.PlateSize)
	geom, err := plate.Dimensions(size)
	if err != nil {
		return Document{}, err
	}
	for _, w := range data.Excluded {
		if !geom.Contains(w) {
			return Document{}, errors.New(errors.ErrCodeInvalidInput, "excluded well %d is outside a plate of %d wells", w, data.PlateSize)
		}
	}

	doc := Document{
		PlateSize:   size,
		Excluded:    data.Excluded,
		Annotations: make([]annotation.WellAnnotation, 0, len(data.Annotations)),
	}
	for _, rec := range data.Annotations {
		style, err := annotation.StyleByID(rec.Style)
		if err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "annotation %s", rec.ID)
		}
		for _, w := range rec.Wells {
			if !geom.Contains(w) {
				return Document{}, errors.New(errors.ErrCodeInvalidInput, "annotation %s: well %d is outside a plate of %d wells", rec.ID, w, data.PlateSize)
			}
		}
		for w := range rec.WellData {
			if !geom.Contains(w) {
				return Document{}, errors.New(errors.ErrCodeInvalidInput, "annotation %s: well_data key %d is outside a plate of %d wells", rec.ID, w, data.PlateSize)
			}
		}
		doc.Annotations = append(doc.Annotations, annotation.WellAnnotation{
			ID:       rec.ID,
			Label:    rec.Label,
			Wells:    rec.Wells,
			Style:    style,
			Metadata: rec.Metadata,
			WellData: rec.WellData,
		})
	}
	return doc, nil
}

// ImportJSON reads the document at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Document{}, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
