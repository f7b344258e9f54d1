// Package config loads CLI settings from defaults, an optional YAML file and FSMD_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = ".fsmd.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FSMD_"

// Config holds the CLI settings.
type Config struct {
	Debug        bool          `mapstructure:"debug"`
	Color        bool          `mapstructure:"color"`
	Prompt       string        `mapstructure:"prompt" validate:"oneof=auto always never"`
	Format       string        `mapstructure:"format" validate:"oneof=json yaml hcl"`
	MaxInputSize int           `mapstructure:"max_input_size" validate:"gt=0"`
	Redis        RedisConfig   `mapstructure:"redis"`
	Metrics      MetricsConfig `mapstructure:"metrics"`
}

// RedisConfig enables the "redis:" artifact scheme when URL is set.
type RedisConfig struct {
	URL    string        `mapstructure:"url" validate:"omitempty,url"`
	Prefix string        `mapstructure:"prefix" validate:"required"`
	TTL    time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// ErrInvalid is returned when the merged settings fail validation.
var ErrInvalid = errors.New("invalid configuration")

// keys lists every setting with its environment variable.
var keys = []string{
	"debug",
	"color",
	"prompt",
	"format",
	"max_input_size",
	"redis.url",
	"redis.prefix",
	"redis.ttl",
	"metrics.addr",
}

var validate = validator.New()

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"debug":          false,
		"color":          true,
		"prompt":         "auto",
		"format":         "json",
		"max_input_size": 4096,
		"redis": map[string]any{
			"url":    "",
			"prefix": "fsmd:automaton:",
			"ttl":    "0s",
		},
		"metrics": map[string]any{
			"addr": "",
		},
	}
}

// Load merges defaults, the YAML file at path and FSMD_* variables.
// An empty path reads DefaultFile if it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	raw := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var file map[string]any
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merge(raw, file)
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	for _, key := range keys {
		if val, ok := os.LookupEnv(EnvName(key)); ok {
			set(raw, key, val)
		}
	}

	return decode(raw)
}

// EnvName returns the environment variable for a dotted key, e.g. FSMD_REDIS_URL.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func decode(raw map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &cfg, nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

// set assigns a dotted key, creating intermediate maps.
func set(m map[string]any, key string, val any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := m[p].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[p] = sub
		}
		m = sub
	}
	m[parts[len(parts)-1]] = val
}
