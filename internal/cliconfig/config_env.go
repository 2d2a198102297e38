package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (KAMINARI_*). It respects flags that have been explicitly set (changed
// map). A window size that is not an integer fails with
// window.ErrInvalidConfiguration.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	for _, v := range []struct {
		env string
		dst *int
	}{
		{"WINDOW", &cfg.Defaults.Window},
		{"OUTER_WINDOW", &cfg.Defaults.OuterWindow},
		{"LEFT", &cfg.Defaults.Left},
		{"RIGHT", &cfg.Defaults.Right},
		{"DECADE", &cfg.Defaults.Decade},
		{"DECADE_LEFT", &cfg.Defaults.DecadeLeft},
		{"DECADE_RIGHT", &cfg.Defaults.DecadeRight},
	} {
		key := EnvPrefix + v.env
		if err := s.setIntFromString(key, os.Getenv(key), v.dst); err != nil {
			return err
		}
	}

	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)

	return nil
}
