package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds a single shell line when FSMD_MAX_INPUT_SIZE is unset.
const DefaultMaxInputSize = 4096

// EnvMaxInputSize overrides DefaultMaxInputSize.
const EnvMaxInputSize = "FSMD_MAX_INPUT_SIZE"

var (
	ErrInputTooLarge = errors.New("line too long")
	ErrInvalidUTF8   = errors.New("line is not valid UTF-8")
)

// SanitizeInput checks one raw shell line before it joins a pending command.
// Lines over limit are rejected whole; limit <= 0 means MaxInputSize().
// Control characters other than tab, CR and LF are removed.
func SanitizeInput(line string, limit int) (string, error) {
	if limit <= 0 {
		limit = MaxInputSize()
	}
	if len(line) > limit {
		return "", fmt.Errorf("%w: %d bytes, limit is %d", ErrInputTooLarge, len(line), limit)
	}
	if i := invalidUTF8At(line); i >= 0 {
		return "", fmt.Errorf("%w: bad byte at offset %d", ErrInvalidUTF8, i)
	}
	if strings.IndexFunc(line, unprintable) < 0 {
		return line, nil
	}
	return strings.Map(func(r rune) rune {
		if unprintable(r) {
			return -1
		}
		return r
	}, line), nil
}

func unprintable(r rune) bool {
	switch r {
	case '\t', '\r', '\n':
		return false
	}
	return unicode.IsControl(r)
}

func invalidUTF8At(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// MaxInputSize reads EnvMaxInputSize, falling back to DefaultMaxInputSize
// when it is unset or not a positive integer.
func MaxInputSize() int {
	n, err := strconv.Atoi(os.Getenv(EnvMaxInputSize))
	if err != nil || n <= 0 {
		return DefaultMaxInputSize
	}
	return n
}
