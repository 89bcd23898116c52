// Package config provides the TOML configuration file of the scratch
// command and its XDG location.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Fields are pointers
// so that unset keys can be told apart from zero values.
type FileConfig struct {
	Radius    *float64 `toml:"radius"`
	Tension   *float64 `toml:"tension"`
	DismissAt *float64 `toml:"dismiss-at"`
	Surface   *string  `toml:"surface"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "scratch", "config.toml")
}

// Template returns a commented config file with the default values.
func Template() string {
	return `# scratch configuration

# Brush radius in image pixels.
radius = 20.0

# Stroke smoothing tension (0 draws straight segments).
tension = 0.3

# Cleared percentage at which the top layer is dismissed.
dismiss-at = 60.0

# Raster surface: "erase" or "record".
surface = "erase"
`
}
