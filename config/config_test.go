package config

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/smartjson"
	"github.com/charmbracelet/log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, smartjson.DefaultMaxAttempts, cfg.AutoCorrection.MaxAttempt)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")

	cases := []struct {
		name    string
		file    string
		content string
		level   string
		attempt int
	}{
		{
			name:    "nested yaml",
			file:    "config.yaml",
			content: "log_level: debug\nauto_correction:\n  max_attempt: 3\n",
			level:   "debug",
			attempt: 3,
		},
		{
			name:    "dotted yaml key",
			file:    "config.yaml",
			content: "auto_correction.max_attempt: 2\n",
			level:   "info",
			attempt: 2,
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"log_level": "warn", "auto_correction": {"max_attempt": "4"}}`,
			level:   "warn",
			attempt: 4,
		},
		{
			name:    "unknown sections are ignored",
			file:    "config.yaml",
			content: "log_level: warn\nrpc:\n  listen: \"localhost:8080\"\nauto_correction:\n  max_attempt: 2\n  wizard: true\n",
			level:   "warn",
			attempt: 2,
		},
		{
			name:    "empty file",
			file:    "config.yaml",
			content: "",
			level:   "info",
			attempt: smartjson.DefaultMaxAttempts,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.level, cfg.LogLevel)
			assert.Equal(t, tc.attempt, cfg.AutoCorrection.MaxAttempt)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")

	cases := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "log_level: [unterminated"},
		{name: "leaf set flat and nested", content: "auto_correction.max_attempt: 2\nauto_correction:\n  max_attempt: 3\n"},
		{name: "dotted key under scalar", content: "auto_correction: 3\nauto_correction.max_attempt: 2\n"},
		{name: "bad level", content: "log_level: loud"},
		{name: "zero attempts", content: "auto_correction:\n  max_attempt: 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", tc.content))
			require.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("override file values", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvMaxAttempt, "7")

		cfg, err := Load(writeFile(t, "config.yaml", "log_level: debug\nauto_correction:\n  max_attempt: 3\n"))
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, 7, cfg.AutoCorrection.MaxAttempt)
	})

	t.Run("non numeric attempts", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvMaxAttempt, "many")

		_, err := Load("")
		require.ErrorContains(t, err, EnvMaxAttempt)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")
	require.NoError(t, os.Unsetenv(EnvMaxAttempt))

	path := writeFile(t, ".env", EnvMaxAttempt+"=9\n")
	require.NoError(t, LoadEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "9", os.Getenv(EnvMaxAttempt))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.AutoCorrection.MaxAttempt)
}

func TestLevel(t *testing.T) {
	cases := []struct {
		in   string
		want log.Level
	}{
		{in: "debug", want: log.DebugLevel},
		{in: "TRACE", want: log.DebugLevel},
		{in: "Info", want: log.InfoLevel},
		{in: "warn", want: log.WarnLevel},
		{in: "error", want: log.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			cfg := &Config{LogLevel: tc.in}
			got, err := cfg.Level()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSilent(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Silent())

	cfg.LogLevel = "OFF"
	assert.True(t, cfg.Silent())
	require.NoError(t, cfg.Validate())
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	cfg.AutoCorrection.MaxAttempt = 2

	p := smartjson.New(cfg.ParserOptions()...)
	assert.Equal(t, 2, p.MaxAttempts())
}

func TestLoadDuplicateLeafIsDeterministic(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxAttempt, "")

	path := writeFile(t, "config.yaml", "auto_correction.max_attempt: 2\nauto_correction:\n  max_attempt: 3\n")
	for range 50 {
		_, err := Load(path)
		require.ErrorContains(t, err, "auto_correction.max_attempt is set more than once")
	}
}

func TestExpandDottedKeys(t *testing.T) {
	got, err := expandDottedKeys(map[string]any{
		"log_level":                   "info",
		"auto_correction.max_attempt": 3,
		"auto_correction":             map[string]any{"other": true},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"log_level": "info",
		"auto_correction": map[string]any{
			"max_attempt": 3,
			"other":       true,
		},
	}, got)
}
