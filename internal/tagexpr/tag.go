package tagexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// ReservedTagCharacters may not appear in a tag name.
const ReservedTagCharacters = ",()&|!"

// InvalidTagError is returned by ValidateTag.
type InvalidTagError struct {
	Tag    string
	Reason string
}

func (e InvalidTagError) Error() string {
	return fmt.Sprintf("invalid tag %q: %s", e.Tag, e.Reason)
}

// ValidateTag checks that name, once trimmed, is usable as a tag: it must be
// non-blank and contain no whitespace, no control characters and none of
// ReservedTagCharacters.
func ValidateTag(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return InvalidTagError{Tag: name, Reason: "must not be blank"}
	}

	for _, ch := range trimmed {
		switch {
		case unicode.IsSpace(ch):
			return InvalidTagError{Tag: name, Reason: "must not contain whitespace"}
		case unicode.IsControl(ch):
			return InvalidTagError{Tag: name, Reason: "must not contain control characters"}
		case strings.ContainsRune(ReservedTagCharacters, ch):
			return InvalidTagError{Tag: name, Reason: fmt.Sprintf("must not contain any of %q", ReservedTagCharacters)}
		}
	}

	return nil
}

// IsValidTag reports whether ValidateTag accepts name.
func IsValidTag(name string) bool {
	return ValidateTag(name) == nil
}
