package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/chime/internal/core/styles"
)

// ValidateDeep performs comprehensive validation: Validate() for basic
// structure, then field-level checks for the config file itself, the
// theme name, and routing rule glob syntax.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		c.validateRulePatterns(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func (c *Config) validateRulePatterns() error {
	errs := make([]error, 0, len(c.Rules))
	for i, rule := range c.Rules {
		if !doublestar.ValidatePattern(rule.Pattern) {
			errs = append(errs, criterio.NewFieldErrors(
				fmt.Sprintf("rules[%d].pattern", i),
				fmt.Errorf("invalid glob pattern: %s", rule.Pattern),
			))
		}
	}
	return criterio.ValidateStruct(errs...)
}
