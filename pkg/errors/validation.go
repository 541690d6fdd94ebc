package errors

import (
	"unicode"
)

// ValidateLabel validates a node label or snapshot name for safety and
// correctness. Labels end up in filenames, DOT output, and API responses,
// so the rules are intentionally conservative:
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Empty labels are allowed; nodes fall back to their kind name.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}

	return nil
}
