package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds drawing identifiers used as store keys.
const maxIDLength = 256

// ValidateDrawingID validates a drawing identifier used as a key by the
// keyed stores (sqlite, redis, mongo, and the file store when rooted in a
// directory). It rejects identifiers that could escape the store's namespace.
//
// Validation rules:
//   - No empty identifiers
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No path traversal sequences (..) or separators (/ and \)
func ValidateDrawingID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "drawing id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidID, "drawing id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "drawing id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidID, "drawing id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed export formats.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}

// ValidateBounded checks that v is a finite number in (0, max]. NaN and
// infinities are rejected.
func ValidateBounded(name string, v, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > max {
		return New(ErrCodeInvalidArgument, "%s must be within (0, %g], got %v", name, max, v)
	}
	return nil
}
