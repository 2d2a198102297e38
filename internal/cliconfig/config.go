package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/cyphoma/kaminari/pkg/log"
	"github.com/cyphoma/kaminari/pkg/window"
)

// Output formats of the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "KAMINARI_"

// Config holds the process-level CLI configuration: the window defaults
// installed with window.SetDefaults and the output settings. Per-render
// options (total pages, current page, explicit window sizes) come from flags
// and arguments and are not part of Config.
type Config struct {
	Defaults window.Defaults

	Format    string
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Defaults:  window.StandardDefaults(),
		Format:    FormatText,
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return err
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}

	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("log format must be %q or %q, got %q", log.FormatConsole, log.FormatJSON, c.LogFormat)
	}
	return nil
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty or missing) and KAMINARI_* environment variables, then
// validates it. Values of flags marked in changed are left alone.
func Load(path string, changed map[string]bool) (Config, error) {
	cfg := DefaultConfig()

	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(&cfg, fc, changed)
	}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefaults returns only the window defaults resolved by Load.
func LoadDefaults(path string) (window.Defaults, error) {
	cfg, err := Load(path, nil)
	if err != nil {
		return window.Defaults{}, err
	}
	return cfg.Defaults, nil
}

// configSetter applies configuration values while respecting flag
// precedence: a value is only applied if its flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value when present. Zero is a meaningful size, so
// presence is signalled by a non-nil pointer rather than a non-zero value.
func (s *configSetter) setInt(value *int, dst *int) {
	if value == nil {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value. Empty means unset.
func (s *configSetter) setIntFromString(key, value string, dst *int) error {
	if value == "" {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return &window.ConfigError{Field: key, Value: value, Reason: "not an integer"}
	}
	*dst = i
	return nil
}
