package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("a", tt.inputSize)
			_, err := SanitizeInput(input, 0)
			if tt.wantErr {
				if !errors.Is(err, ErrInputTooLarge) {
					t.Errorf("SanitizeInput() expected ErrInputTooLarge for size %d, got %v", tt.inputSize, err)
				}
			} else if err != nil {
				t.Errorf("SanitizeInput() unexpected error: %v", err)
			}
		})
	}
}

func TestSanitizeInput_ExplicitLimit(t *testing.T) {
	if _, err := SanitizeInput("STATES A B", 5); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Expected ErrInputTooLarge, got %v", err)
	}
	if _, err := SanitizeInput("PRINT;", 6); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "STATES A B;", "STATES A B;"},
		{"Safe Controls", "STATES\tA\r", "STATES\tA\r"},
		{"ANSI Code", "\x1b[31mPRINT\x1b[0m;", "[31mPRINT[0m;"},
		{"Null Byte", "SYM\x00BOLS 1;", "SYMBOLS 1;"},
		{"Bell", "PRINT;\x07", "PRINT;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input, 0)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	if _, err := SanitizeInput("12345678901", 0); err == nil {
		t.Error("Expected error for input > 10 when env var is set")
	}
	if _, err := SanitizeInput("12345", 0); err != nil {
		t.Error("Unexpected error for valid input")
	}

	t.Setenv(EnvMaxInputSize, "not-a-number")
	if got := MaxInputSize(); got != DefaultMaxInputSize {
		t.Errorf("Expected default limit for malformed env, got %d", got)
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	input := "\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98"
	_, err := SanitizeInput(input, 0)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Expected ErrInvalidUTF8, got %v", err)
	}

	_, err = SanitizeInput("PRINT\xff;", 0)
	if err == nil || !strings.Contains(err.Error(), "offset 5") {
		t.Errorf("Expected offset 5 in error, got %v", err)
	}
}
