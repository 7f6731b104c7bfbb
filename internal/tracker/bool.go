package tracker

import (
	"fmt"
	"strings"
)

// ParseBool normalizes the boolean representations found in legacy exports,
// where flags were stored as the strings "true"/"false". Everything past
// this boundary works with real booleans.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}
