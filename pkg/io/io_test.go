package io

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

func sampleDocument() Document {
	return Document{
		PlateSize: plate.Size96,
		Excluded:  []int{0, 95},
		Annotations: []annotation.WellAnnotation{
			{
				ID: "t1", Label: "Treatment 1", Style: annotation.Red,
				Wells:    []int{1, 2, 13},
				Metadata: map[string]string{"plate": "P1"},
				WellData: map[int]map[string]string{13: {"conc": "10uM"}},
			},
			{ID: "ctrl", Label: "Control", Style: annotation.Blue},
		},
	}
}

func TestWriteReadJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleDocument(), &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"13": {`) {
		t.Errorf("well_data keys should be decimal strings:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"style": "RED_STYLE"`) {
		t.Errorf("style should be stored by id:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	want := sampleDocument()
	if got.PlateSize != want.PlateSize || !slices.Equal(got.Excluded, want.Excluded) {
		t.Errorf("plate = %d %v, want %d %v", got.PlateSize, got.Excluded, want.PlateSize, want.Excluded)
	}
	if len(got.Annotations) != 2 {
		t.Fatalf("got %d annotations, want 2", len(got.Annotations))
	}
	a := got.Annotations[0]
	if a.ID != "t1" || a.Style != annotation.Red || !slices.Equal(a.Wells, []int{1, 2, 13}) {
		t.Errorf("annotation = %+v", a)
	}
	if a.MetadataFor(13)["conc"] != "10uM" || a.MetadataFor(13)["plate"] != "P1" {
		t.Errorf("MetadataFor(13) = %v", a.MetadataFor(13))
	}
	if b := got.Annotations[1]; b.Style != annotation.Blue || len(b.Wells) != 0 {
		t.Errorf("annotation = %+v", b)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		code errors.Code
	}{
		{"malformed", `{"plate_size":`, errors.ErrCodeInvalidFormat},
		{"bad size", `{"plate_size": 100, "annotations": []}`, errors.ErrCodeInvalidPlateSize},
		{"bad style", `{"plate_size": 24, "annotations": [{"id":"a","style":"PINK"}]}`, errors.ErrCodeInvalidStyle},
		{"well off plate", `{"plate_size": 24, "annotations": [{"id":"a","style":"RED_STYLE","wells":[24]}]}`, errors.ErrCodeInvalidInput},
		{"excluded off plate", `{"plate_size": 24, "excluded": [-1], "annotations": []}`, errors.ErrCodeInvalidInput},
		{"well_data off plate", `{"plate_size": 24, "annotations": [{"id":"a","style":"RED_STYLE","well_data":{"30":{"k":"v"}}}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.json")
	if err := ExportJSON(sampleDocument(), path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if len(got.Annotations) != 2 || got.Annotations[1].Label != "Control" {
		t.Errorf("got %+v", got)
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
