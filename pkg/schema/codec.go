package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies an artifact encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat converts a configuration value into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFor picks the encoding from the artifact name's extension,
// falling back to def when the extension is missing or unknown.
func FormatFor(name string, def Format) Format {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return def
	}
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return def
}

// Encode serializes the snapshot in the given format.
func Encode(f Format, s *Snapshot) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return buf.Bytes(), nil
	case FormatHCL:
		return encodeHCL(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode parses a snapshot. Unknown fields are rejected so that a foreign
// file is never mistaken for an empty automaton.
func Decode(f Format, data []byte) (*Snapshot, error) {
	var s Snapshot
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	case FormatHCL:
		return decodeHCL(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return &s, nil
}
