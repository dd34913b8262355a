// Package config handles configuration loading and validation for chime.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/chime/internal/core/eventbus"
	"github.com/hay-kot/chime/internal/core/notify"
)

// Config holds the application configuration.
type Config struct {
	Toasts ToastsConfig `yaml:"toasts"`
	TUI    TUIConfig    `yaml:"tui"`
	Rules  []Rule       `yaml:"rules"`
}

// ToastsConfig controls store capacity and per-kind countdowns.
// Durations are milliseconds; zero means "use the default".
type ToastsConfig struct {
	Max            int `yaml:"max"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
	SuccessMS      int `yaml:"success_ms"`
	ErrorMS        int `yaml:"error_ms"`
	WarningMS      int `yaml:"warning_ms"`
	InfoMS         int `yaml:"info_ms"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Rule routes event topics to a notification kind. Pattern is a glob
// matched against the topic ("deploy/**/failed").
type Rule struct {
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind"`
	Title   string `yaml:"title"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	d := notify.DefaultDurations()
	return Config{
		Toasts: ToastsConfig{
			Max:            notify.DefaultCapacity,
			TickIntervalMS: int(notify.DefaultTickInterval.Milliseconds()),
			SuccessMS:      int(d.Success.Milliseconds()),
			ErrorMS:        int(d.Error.Milliseconds()),
			WarningMS:      int(d.Warning.Milliseconds()),
			InfoMS:         int(d.Info.Milliseconds()),
		},
		TUI: TUIConfig{Theme: "tokyo-night"},
	}
}

// Load reads configuration from the given path. A missing file returns
// defaults; a present file is merged over them.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toasts.Max == 0 {
		c.Toasts.Max = defaults.Toasts.Max
	}
	if c.Toasts.TickIntervalMS == 0 {
		c.Toasts.TickIntervalMS = defaults.Toasts.TickIntervalMS
	}
	if c.Toasts.SuccessMS == 0 {
		c.Toasts.SuccessMS = defaults.Toasts.SuccessMS
	}
	if c.Toasts.ErrorMS == 0 {
		c.Toasts.ErrorMS = defaults.Toasts.ErrorMS
	}
	if c.Toasts.WarningMS == 0 {
		c.Toasts.WarningMS = defaults.Toasts.WarningMS
	}
	if c.Toasts.InfoMS == 0 {
		c.Toasts.InfoMS = defaults.Toasts.InfoMS
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.Toasts.Max < 1 {
		return fmt.Errorf("toasts.max must be at least 1")
	}
	if c.Toasts.TickIntervalMS < 1 {
		return fmt.Errorf("toasts.tick_interval_ms must be at least 1")
	}
	for name, v := range map[string]int{
		"toasts.success_ms": c.Toasts.SuccessMS,
		"toasts.error_ms":   c.Toasts.ErrorMS,
		"toasts.warning_ms": c.Toasts.WarningMS,
		"toasts.info_ms":    c.Toasts.InfoMS,
	} {
		if v < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if c.Toasts.ErrorMS <= c.Toasts.SuccessMS {
		return fmt.Errorf("toasts.error_ms must exceed toasts.success_ms: errors must remain visible longer")
	}

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rules[%d].pattern cannot be empty", i)
		}
		if rule.Kind != "" && !notify.Kind(rule.Kind).Valid() {
			return fmt.Errorf("rules[%d].kind %q is not a known kind", i, rule.Kind)
		}
	}

	return nil
}

// Durations returns the configured countdown policy.
func (c *Config) Durations() notify.DurationPolicy {
	return notify.DurationPolicy{
		Success: time.Duration(c.Toasts.SuccessMS) * time.Millisecond,
		Error:   time.Duration(c.Toasts.ErrorMS) * time.Millisecond,
		Warning: time.Duration(c.Toasts.WarningMS) * time.Millisecond,
		Info:    time.Duration(c.Toasts.InfoMS) * time.Millisecond,
	}
}

// TickInterval returns the configured countdown tick cadence.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Toasts.TickIntervalMS) * time.Millisecond
}

// RouteRules converts the configured rules for the event router.
func (c *Config) RouteRules() []eventbus.Rule {
	rules := make([]eventbus.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		rules = append(rules, eventbus.Rule{
			Pattern: r.Pattern,
			Kind:    notify.Kind(r.Kind),
			Title:   r.Title,
		})
	}
	return rules
}
