package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML. Window sizes are pointers so that an
// explicit zero can be told apart from an absent key.
//
//	window = 4
//	outer_window = 1
//	decade = 2
//	format = "text"
//	log_level = "info"
type FileConfig struct {
	Window      *int `toml:"window"`
	OuterWindow *int `toml:"outer_window"`
	Left        *int `toml:"left"`
	Right       *int `toml:"right"`
	Decade      *int `toml:"decade"`
	DecadeLeft  *int `toml:"decade_left"`
	DecadeRight *int `toml:"decade_right"`

	Format    string `toml:"format"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.kaminari/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".kaminari", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt(fc.Window, &cfg.Defaults.Window)
	s.setInt(fc.OuterWindow, &cfg.Defaults.OuterWindow)
	s.setInt(fc.Left, &cfg.Defaults.Left)
	s.setInt(fc.Right, &cfg.Defaults.Right)
	s.setInt(fc.Decade, &cfg.Defaults.Decade)
	s.setInt(fc.DecadeLeft, &cfg.Defaults.DecadeLeft)
	s.setInt(fc.DecadeRight, &cfg.Defaults.DecadeRight)

	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
