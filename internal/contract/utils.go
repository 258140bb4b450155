package contract

import (
	"errors"
	"fmt"
	"strings"
)

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// UserMessage returns the text shown to the user for err. Repository errors
// collapse to a fixed message; argument errors drop their kind prefix.
func UserMessage(err error) string {
	if errors.Is(err, ErrNotARepository) {
		return "Not a git repository"
	}
	return strings.TrimPrefix(err.Error(), ErrInvalidArgument.Error()+": ")
}
