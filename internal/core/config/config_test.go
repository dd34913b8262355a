package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/chime/internal/core/notify"
)

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, notify.DefaultCapacity, cfg.Toasts.Max)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, notify.DefaultDurations(), cfg.Durations())
}

func TestLoad_merges_file_over_defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
toasts:
  max: 3
  error_ms: 9000
tui:
  theme: gruvbox
rules:
  - pattern: "deploy/**/failed"
    kind: error
    title: Deploy
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Toasts.Max)
	assert.Equal(t, 9*time.Second, cfg.Durations().Error)
	// Unset fields keep defaults.
	assert.Equal(t, 4*time.Second, cfg.Durations().Success)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)

	rules := cfg.RouteRules()
	require.Len(t, rules, 1)
	assert.Equal(t, notify.KindError, rules[0].Kind)
}

func TestLoad_invalid_yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toasts: ["), 0o644))

	_, err := Load(path)

	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"zero capacity", func(c *Config) { c.Toasts.Max = -1 }, "toasts.max"},
		{"zero tick", func(c *Config) { c.Toasts.TickIntervalMS = -5 }, "tick_interval_ms"},
		{"negative duration", func(c *Config) { c.Toasts.InfoMS = -1 }, "cannot be negative"},
		{
			"error not longer than success",
			func(c *Config) { c.Toasts.ErrorMS = c.Toasts.SuccessMS },
			"must exceed",
		},
		{
			"empty rule pattern",
			func(c *Config) { c.Rules = []Rule{{Pattern: ""}} },
			"pattern cannot be empty",
		},
		{
			"unknown rule kind",
			func(c *Config) { c.Rules = []Rule{{Pattern: "**", Kind: "shout"}} },
			"not a known kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDeep_bad_glob_pattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []Rule{{Pattern: "[", Kind: "error"}}

	err := cfg.ValidateDeep("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestValidateDeep_unknown_theme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.Theme = "neon-dreams"

	err := cfg.ValidateDeep("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestValidateDeep_config_path_is_directory(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ValidateDeep(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestValidateDeep_valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []Rule{{Pattern: "sync/**", Kind: "success"}}

	assert.NoError(t, cfg.ValidateDeep(""))
}
