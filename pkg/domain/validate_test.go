package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"Lowercase letter", "a", "A", false},
		{"Digit", "7", "7", false},
		{"Two characters", "ab", "", true},
		{"Punctuation", "#", "", true},
		{"Empty", "", "", true},
		{"Non ASCII", "é", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSymbol(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSymbol)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"Mixed case", "q0", "Q0", false},
		{"Long name", "Accept", "ACCEPT", false},
		{"Underscore", "q_0", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeState(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidState)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
