package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphoma/kaminari/pkg/window"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, window.StandardDefaults(), cfg.Defaults)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate(), "default config does not validate")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		wantInvalid bool
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "json output",
			mutate: func(c *Config) { c.Format = FormatJSON; c.LogFormat = "json" },
		},
		{
			name:        "negative window default",
			mutate:      func(c *Config) { c.Defaults.Window = -1 },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "negative decade default",
			mutate:      func(c *Config) { c.Defaults.DecadeLeft = -3 },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "html" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "logfmt" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantInvalid {
				assert.ErrorIs(t, err, window.ErrInvalidConfiguration)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
window = 2
outer_window = 3
decade = 1
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("KAMINARI_DECADE", "5")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, window.Defaults{Window: 2, OuterWindow: 3, Decade: 5}, cfg.Defaults)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, window.StandardDefaults(), cfg.Defaults)
}

func TestLoad_RejectsNegativeSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("left = -1\n"), 0644))

	_, err := LoadDefaults(path)
	assert.ErrorIs(t, err, window.ErrInvalidConfiguration)
}
