// Package config loads the settings of the smartjson command: log level and
// the auto correction budget.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"charm.land/smartjson"
	"github.com/charmbracelet/log/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the command looks for a config file when none is given.
const DefaultPath = "/var/smartjson/config.yaml"

// Environment variables that override file values.
const (
	EnvLogLevel   = "SMARTJSON_LOG_LEVEL"
	EnvMaxAttempt = "SMARTJSON_MAX_ATTEMPT"
)

// LogLevelOff silences logging entirely.
const LogLevelOff = "off"

// Config holds all smartjson settings.
type Config struct {
	// LogLevel is one of off, debug, info, warn, error. trace is accepted as
	// an alias of debug.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	AutoCorrection AutoCorrection `mapstructure:"auto_correction" yaml:"auto_correction"`
}

// AutoCorrection configures the correction loop.
type AutoCorrection struct {
	// MaxAttempt is the number of correction passes before giving up.
	MaxAttempt int `mapstructure:"max_attempt" yaml:"max_attempt"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		AutoCorrection: AutoCorrection{
			MaxAttempt: smartjson.DefaultMaxAttempts,
		},
	}
}

// Load reads the YAML (or JSON) file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := cfg.merge(data); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables already set. Missing
// files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) merge(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	expanded, err := expandDottedKeys(raw)
	if err != nil {
		return err
	}
	return decoder.Decode(expanded)
}

func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if attempts := os.Getenv(EnvMaxAttempt); attempts != "" {
		n, err := strconv.Atoi(attempts)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxAttempt, attempts, err)
		}
		c.AutoCorrection.MaxAttempt = n
	}
	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.AutoCorrection.MaxAttempt < 1 {
		return fmt.Errorf("auto_correction.max_attempt must be at least 1, got %d", c.AutoCorrection.MaxAttempt)
	}
	if strings.EqualFold(c.LogLevel, LogLevelOff) {
		return nil
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the log level. It fails for "off", which has no level; check
// Silent first.
func (c *Config) Level() (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if name == "trace" {
		name = "debug"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Silent reports whether logging is turned off.
func (c *Config) Silent() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogLevel), LogLevelOff)
}

// ParserOptions returns the smartjson options this configuration implies.
func (c *Config) ParserOptions() []smartjson.Option {
	return []smartjson.Option{smartjson.WithMaxAttempts(c.AutoCorrection.MaxAttempt)}
}

// expandDottedKeys turns {"a.b": 1} into {"a": {"b": 1}} so flat keys such as
// auto_correction.max_attempt work alongside nested ones. A leaf set both
// ways is an error.
func expandDottedKeys(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for _, key := range slices.Sorted(maps.Keys(in)) {
		value := in[key]
		if nested, ok := value.(map[string]any); ok {
			expanded, err := expandDottedKeys(nested)
			if err != nil {
				return nil, err
			}
			value = expanded
		}

		parts := strings.Split(key, ".")
		m := out
		for i, part := range parts[:len(parts)-1] {
			existing, found := m[part]
			next, ok := existing.(map[string]any)
			if found && !ok {
				return nil, fmt.Errorf("key %s conflicts with %s", key, strings.Join(parts[:i+1], "."))
			}
			if !found {
				next = map[string]any{}
				m[part] = next
			}
			m = next
		}
		if err := mergeKey(m, strings.Join(parts[:len(parts)-1], "."), parts[len(parts)-1], value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func mergeKey(m map[string]any, prefix, key string, value any) error {
	path := key
	if prefix != "" {
		path = prefix + "." + key
	}

	existing, found := m[key]
	if !found {
		m[key] = value
		return nil
	}
	dst, ok := existing.(map[string]any)
	src, ok2 := value.(map[string]any)
	if !ok || !ok2 {
		return fmt.Errorf("key %s is set more than once", path)
	}
	for _, k := range slices.Sorted(maps.Keys(src)) {
		if err := mergeKey(dst, path, k, src[k]); err != nil {
			return err
		}
	}
	return nil
}
