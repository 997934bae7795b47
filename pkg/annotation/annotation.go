package annotation

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/nitro-bio/platemap/pkg/errors"
)

// WellAnnotation is a named, styled group of wells.
type WellAnnotation struct {
	// ID identifies the group. Parsed groups use their label; groups created
	// through [New] get a random UUID.
	ID string

	// Label is the display name, e.g. "Treatment 1".
	Label string

	// Wells lists member well indices in insertion order.
	Wells []int

	Style Style

	// Metadata holds fields shared by every well of the group.
	Metadata map[string]string

	// WellData holds per-well fields keyed by well index. It is nil when no
	// well carries inline metadata.
	WellData map[int]map[string]string
}

// New creates a group with a fresh UUID. The label and metadata are checked
// against the plate cell grammar so the group can be written to CSV.
func New(label string, style Style, wells ...int) (WellAnnotation, error) {
	if err := errors.ValidateAnnotationLabel(label); err != nil {
		return WellAnnotation{}, err
	}
	return WellAnnotation{
		ID:    uuid.NewString(),
		Label: label,
		Wells: slices.Clone(wells),
		Style: style,
	}, nil
}

// Validate checks the label and every metadata key and value.
func (a WellAnnotation) Validate() error {
	if err := errors.ValidateAnnotationLabel(a.Label); err != nil {
		return err
	}
	if err := validateFields(a.Metadata); err != nil {
		return err
	}
	for _, fields := range a.WellData {
		if err := validateFields(fields); err != nil {
			return err
		}
	}
	return nil
}

func validateFields(fields map[string]string) error {
	for k, v := range fields {
		if err := errors.ValidateMetadataKey(k); err != nil {
			return err
		}
		if err := errors.ValidateMetadataValue(v); err != nil {
			return err
		}
	}
	return nil
}

// Add appends well to the group unless it is already a member, and records
// its inline fields, if any. Fields for a well that is already present are
// merged, later values win.
func (a *WellAnnotation) Add(well int, fields map[string]string) {
	if !a.Covers(well) {
		a.Wells = append(a.Wells, well)
	}
	if len(fields) == 0 {
		return
	}
	if a.WellData == nil {
		a.WellData = make(map[int]map[string]string)
	}
	if a.WellData[well] == nil {
		a.WellData[well] = make(map[string]string, len(fields))
	}
	maps.Copy(a.WellData[well], fields)
}

// Covers reports whether well is a member of the group.
func (a WellAnnotation) Covers(well int) bool {
	return slices.Contains(a.Wells, well)
}

// MetadataFor returns the fields that apply to well: the group's Metadata
// overlaid with the well's own WellData entry. It returns nil when neither
// level has fields. The result is a fresh map.
func (a WellAnnotation) MetadataFor(well int) map[string]string {
	perWell := a.WellData[well]
	if len(a.Metadata) == 0 && len(perWell) == 0 {
		return nil
	}
	out := make(map[string]string, len(a.Metadata)+len(perWell))
	maps.Copy(out, a.Metadata)
	maps.Copy(out, perWell)
	return out
}

// Clone returns a deep copy.
func (a WellAnnotation) Clone() WellAnnotation {
	out := a
	out.Wells = slices.Clone(a.Wells)
	out.Metadata = maps.Clone(a.Metadata)
	if a.WellData != nil {
		out.WellData = make(map[int]map[string]string, len(a.WellData))
		for w, fields := range a.WellData {
			out.WellData[w] = maps.Clone(fields)
		}
	}
	return out
}

// CloneAll deep copies a slice of groups.
func CloneAll(anns []WellAnnotation) []WellAnnotation {
	if anns == nil {
		return nil
	}
	out := make([]WellAnnotation, len(anns))
	for i, a := range anns {
		out[i] = a.Clone()
	}
	return out
}
