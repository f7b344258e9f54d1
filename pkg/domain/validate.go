package domain

import (
	"fmt"
	"strings"
)

// IsAlphanumeric reports whether s is non-empty and made only of ASCII letters and digits.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// NormalizeSymbol uppercases token and checks it is exactly one alphanumeric character.
func NormalizeSymbol(token string) (string, error) {
	sym := strings.ToUpper(token)
	if len(sym) != 1 || !IsAlphanumeric(sym) {
		return "", fmt.Errorf("%w: %q (must be a single alphanumeric character)", ErrInvalidSymbol, token)
	}
	return sym, nil
}

// NormalizeState uppercases token and checks it is a non-empty alphanumeric identifier.
func NormalizeState(token string) (string, error) {
	state := strings.ToUpper(token)
	if !IsAlphanumeric(state) {
		return "", fmt.Errorf("%w: %q (must be alphanumeric)", ErrInvalidState, token)
	}
	return state, nil
}
