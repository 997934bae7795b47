package csvplate

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/log"

	"github.com/nitro-bio/platemap/pkg/annotation"
	"github.com/nitro-bio/platemap/pkg/errors"
	"github.com/nitro-bio/platemap/pkg/plate"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		size     plate.Size
		wantT1   []int
		wantCtrl []int
	}{
		{
			"96 well", plate.Size96,
			[]int{0, 2, 4, 12, 14, 16, 36, 38, 40, 48, 50, 52, 72, 74, 76, 84, 86, 88},
			[]int{1, 3, 5, 13, 15, 17, 37, 39, 41, 49, 51, 53, 73, 75, 77, 85, 87, 89},
		},
		{
			"24 well", plate.Size24,
			[]int{0, 2, 4, 6, 8, 10, 18, 20, 22},
			[]int{1, 3, 5, 7, 9, 11, 19, 21, 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(validCSV, tt.size, Options{})
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("got %d annotations, want 2", len(got))
			}

			t1, ctrl := got[0], got[1]
			if t1.ID != "Treatment 1" || t1.Label != "Treatment 1" || t1.Style.ID != annotation.Red.ID {
				t.Errorf("first group = %s/%s/%s, want Treatment 1 with RED_STYLE", t1.ID, t1.Label, t1.Style.ID)
			}
			if ctrl.ID != "Positive Control" || ctrl.Style.ID != annotation.Blue.ID {
				t.Errorf("second group = %s/%s, want Positive Control with BLUE_STYLE", ctrl.ID, ctrl.Style.ID)
			}
			if !slices.Equal(t1.Wells, tt.wantT1) {
				t.Errorf("Treatment 1 wells = %v, want %v", t1.Wells, tt.wantT1)
			}
			if !slices.Equal(ctrl.Wells, tt.wantCtrl) {
				t.Errorf("Positive Control wells = %v, want %v", ctrl.Wells, tt.wantCtrl)
			}
			if t1.WellData != nil || ctrl.WellData != nil {
				t.Error("cells without metadata should not create WellData")
			}
		})
	}
}

func TestParseGroupsAreDisjoint(t *testing.T) {
	got, err := Parse(validCSV, plate.Size96, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range got[0].Wells {
		if got[1].Covers(w) {
			t.Errorf("well %d in both groups", w)
		}
	}
	if n := len(got[0].Wells) + len(got[1].Wells); n != 36 {
		t.Errorf("covered %d wells, want 36", n)
	}
}

func TestParseInlineMetadata(t *testing.T) {
	text := "idx,1,2,3\n" +
		"A,Drug (conc: 10uM; rep: 2),Drug (conc: 5uM) | Vehicle,Vehicle (bad; : x; note: a: b)\n"
	got, err := Parse(text, plate.Size24, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d annotations, want 2", len(got))
	}

	drug, vehicle := got[0], got[1]
	if !slices.Equal(drug.Wells, []int{0, 1}) || !slices.Equal(vehicle.Wells, []int{1, 2}) {
		t.Errorf("wells = %v, %v", drug.Wells, vehicle.Wells)
	}
	if want := map[string]string{"conc": "10uM", "rep": "2"}; !maps.Equal(drug.WellData[0], want) {
		t.Errorf("Drug A1 fields = %v, want %v", drug.WellData[0], want)
	}
	if want := map[string]string{"conc": "5uM"}; !maps.Equal(drug.WellData[1], want) {
		t.Errorf("Drug A2 fields = %v, want %v", drug.WellData[1], want)
	}
	if _, ok := vehicle.WellData[1]; ok {
		t.Error("Vehicle A2 carries no fields")
	}
	if want := map[string]string{"note": "a: b"}; !maps.Equal(vehicle.WellData[2], want) {
		t.Errorf("Vehicle A3 fields = %v, want %v", vehicle.WellData[2], want)
	}
}

func TestParseRepeatedLabelInCell(t *testing.T) {
	text := "idx,1,2\n" +
		"A,Drug | Drug (conc: 1uM),Drug\n"
	got, err := Parse(text, plate.Size24, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d annotations, want 1", len(got))
	}
	if !slices.Equal(got[0].Wells, []int{0, 1}) {
		t.Errorf("Wells = %v, want [0 1]", got[0].Wells)
	}
	if want := map[string]string{"conc": "1uM"}; !maps.Equal(got[0].WellData[0], want) {
		t.Errorf("A1 fields = %v, want %v", got[0].WellData[0], want)
	}
	label, err := plate.LabelForWells(got[0].Wells, plate.Size24)
	if err != nil || label != "A1:A2" {
		t.Errorf("LabelForWells = %q, %v, want A1:A2", label, err)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		entry      string
		wantLabel  string
		wantFields map[string]string
	}{
		{"Treatment 1", "Treatment 1", nil},
		{"  Padded  ", "Padded", nil},
		{"Drug (conc: 10uM)", "Drug", map[string]string{"conc": "10uM"}},
		{"Drug (conc:10uM;rep : 2)", "Drug", map[string]string{"conc": "10uM", "rep": "2"}},
		{"Drug (empty: ; :novalue)", "Drug", nil},
		{"Drug ()", "Drug ()", nil},
	}
	for _, tt := range tests {
		label, fields := ParseEntry(tt.entry)
		if label != tt.wantLabel {
			t.Errorf("ParseEntry(%q) label = %q, want %q", tt.entry, label, tt.wantLabel)
		}
		if !maps.Equal(fields, tt.wantFields) {
			t.Errorf("ParseEntry(%q) fields = %v, want %v", tt.entry, fields, tt.wantFields)
		}
	}
}

func TestParseStylesCycle(t *testing.T) {
	var b strings.Builder
	b.WriteString("idx,1,2,3,4,5,6\nA")
	for i := range 6 {
		b.WriteString(",L" + string(rune('0'+i)))
	}
	b.WriteString("\nB,L6,L7\n")

	got, err := Parse(b.String(), plate.Size24, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"RED_STYLE", "BLUE_STYLE", "GREEN_STYLE", "CYAN_STYLE", "PURPLE_STYLE", "ORANGE_STYLE", "GRAY_STYLE", "RED_STYLE"}
	if len(got) != len(want) {
		t.Fatalf("got %d annotations, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Style.ID != want[i] {
			t.Errorf("%s style = %s, want %s", a.Label, a.Style.ID, want[i])
		}
	}
}

func TestParseUsesRowPosition(t *testing.T) {
	// The first column says H, but the row is the first data row.
	got, err := Parse("idx,1\nH,X", plate.Size96, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !slices.Equal(got[0].Wells, []int{0}) {
		t.Errorf("got %+v, want X at well 0", got)
	}
}

func TestParseDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	got, err := Parse(invalidColCSV+"\nC,,,,,,,,,,,,Z\nD,x,,,,,,,,,,,,,\nE,Off", plate.Size24, Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Invalid plate format") {
		t.Errorf("missing shape warning in %q", out)
	}
	if !strings.Contains(out, "outside of plate") {
		t.Errorf("missing off-plate diagnostic in %q", out)
	}
	for _, a := range got {
		if a.Label == "Off" || a.Label == "Z" {
			t.Errorf("off-plate label %s should be skipped", a.Label)
		}
	}
}

func TestParseMalformedHeaderSkipped(t *testing.T) {
	got, err := Parse("idx,1,x\nA,Keep,Drop", plate.Size96, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Label != "Keep" {
		t.Errorf("got %+v, want only Keep", got)
	}
}

func TestParseInvalidSize(t *testing.T) {
	_, err := Parse(validCSV, 100, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidPlateSize) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidPlateSize)
	}
}

func TestParseReadError(t *testing.T) {
	_, err := ParseReader(iotest.ErrReader(io.ErrUnexpectedEOF), plate.Size96, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}
