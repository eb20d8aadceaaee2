package errors

import (
	"strings"
	"testing"
)

func TestValidateDrawingID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "sketch", false},
		{"valid with dash", "my-drawing", false},
		{"valid with extension", "house.draw", false},
		{"valid uuid", "3f1c1d9e-6a43-4c8e-9b0e-5d5b2f7c9a11", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"path traversal", "..", true},
		{"separator", "dir/file", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDrawingID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDrawingID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidID) {
				t.Errorf("ValidateDrawingID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidID)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png"}
	if err := ValidateFormat("svg", allowed); err != nil {
		t.Errorf("ValidateFormat(svg) = %v, want nil", err)
	}
	err := ValidateFormat("gif", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(gif) = %v, want %v", err, ErrCodeInvalidFormat)
	}
}
