package errors

import (
	"strings"
	"unicode"
)

// maxTextLength bounds annotation labels and metadata text.
const maxTextLength = 256

// cellSeparator splits annotation entries inside one plate cell.
const cellSeparator = " | "

// ValidateAnnotationLabel checks that label survives a round trip through
// the plate CSV cell grammar `Label (key: value; key: value) | Label2`.
//
// Rules:
//   - Not empty, and not only whitespace
//   - Maximum length of 256 characters
//   - No control characters (newlines would split a CSV row)
//   - No " | " sequence (entry separator)
//   - No " (" sequence (start of inline metadata)
func ValidateAnnotationLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidAnnotation, "annotation label cannot be empty")
	}
	if len(label) > maxTextLength {
		return New(ErrCodeInvalidAnnotation, "annotation label too long (max %d characters)", maxTextLength)
	}
	if hasControl(label) {
		return New(ErrCodeInvalidAnnotation, "annotation label contains invalid control characters")
	}
	if strings.Contains(label, cellSeparator) {
		return New(ErrCodeInvalidAnnotation, "annotation label cannot contain %q", cellSeparator)
	}
	if strings.Contains(label, " (") {
		return New(ErrCodeInvalidAnnotation, "annotation label cannot contain %q", " (")
	}
	return nil
}

// ValidateMetadataKey checks a per-well metadata key. Keys are written as
// `key: value` pairs separated by ';', so neither character may appear.
func ValidateMetadataKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return New(ErrCodeInvalidAnnotation, "metadata key cannot be empty")
	}
	if len(key) > maxTextLength {
		return New(ErrCodeInvalidAnnotation, "metadata key too long (max %d characters)", maxTextLength)
	}
	if hasControl(key) {
		return New(ErrCodeInvalidAnnotation, "metadata key contains invalid control characters")
	}
	if strings.ContainsAny(key, ":;()|") {
		return New(ErrCodeInvalidAnnotation, "metadata key contains invalid characters: %q", key)
	}
	return nil
}

// ValidateMetadataValue checks a per-well metadata value. Values may contain
// ':' (only the first colon of a pair splits key from value) but not ';' or
// a closing parenthesis.
func ValidateMetadataValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidAnnotation, "metadata value cannot be empty")
	}
	if len(value) > maxTextLength {
		return New(ErrCodeInvalidAnnotation, "metadata value too long (max %d characters)", maxTextLength)
	}
	if hasControl(value) {
		return New(ErrCodeInvalidAnnotation, "metadata value contains invalid control characters")
	}
	if strings.ContainsAny(value, ";)") || strings.Contains(value, cellSeparator) {
		return New(ErrCodeInvalidAnnotation, "metadata value contains invalid characters: %q", value)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
