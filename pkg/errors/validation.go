package errors

import (
	"strings"
	"unicode"
)

// ValidateName validates a step or port name for rendering safety.
// The diagram layout engine splits header rows on whitespace and uses the
// bar character as a field delimiter, so names may contain neither.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No whitespace or control characters
//   - No bar characters (field delimiter)
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "%s name too long (max 256 characters)", kind)
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name %q contains whitespace or control characters", kind, name)
		}
	}

	if strings.ContainsRune(name, '|') {
		return New(ErrCodeInvalidInput, "%s name %q contains a bar character", kind, name)
	}

	return nil
}
