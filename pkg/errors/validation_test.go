package errors

import (
	"strings"
	"testing"
)

func TestValidateAnnotationLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Treatment 1", false},
		{"inline metadata suffix", "Ctrl-2 (neg)", true},
		{"parens without space", "Dose(10uM)", false},
		{"colon allowed", "Run: 3", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"newline", "foo\nbar", true},
		{"pipe separator", "A | B", true},
		{"metadata opener", "Label (x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnnotationLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnnotationLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidAnnotation) {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidAnnotation)
			}
		})
	}
}

func TestValidateMetadataKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "concentration", false},
		{"with space", "cell line", false},

		{"empty", "", true},
		{"colon", "a:b", true},
		{"semicolon", "a;b", true},
		{"paren", "a)", true},
		{"pipe", "a|b", true},
		{"tab", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMetadataKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMetadataKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMetadataValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "10uM", false},
		{"colon allowed", "12:30", false},

		{"empty", " ", true},
		{"semicolon", "1;2", true},
		{"closing paren", "x)", true},
		{"separator", "a | b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMetadataValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMetadataValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
