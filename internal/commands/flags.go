// Package commands wires the chime CLI surface.
package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/chime/internal/core/config"
)

// Flags holds global CLI flag values shared across commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chime", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's
// state directory.
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "chime", "chime.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "chime", "chime.log")
	}

	return filepath.Join(home, ".local", "state", "chime", "chime.log")
}
