package validation

import (
	"fmt"
	"regexp"
)

// KeyPattern defines the accepted shape of a term key: dot-separated
// segments of letters, digits, underscores and dashes, matching what
// Traduora accepts for term values.
var KeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+(\.[a-zA-Z0-9_-]+)*$`)

// MaxKeyLen is the maximum accepted term key length.
const MaxKeyLen = 255

// ValidateKey checks that a term key from the translation file can be
// created remotely. Keys are dot-path identifiers without whitespace or
// control characters.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("term key cannot be empty")
	}

	if len(key) > MaxKeyLen {
		return fmt.Errorf("term key must not exceed %d characters", MaxKeyLen)
	}

	if !KeyPattern.MatchString(key) {
		return fmt.Errorf("term key %q can only contain letters, numbers, underscores and dashes, separated by dots", key)
	}

	return nil
}
