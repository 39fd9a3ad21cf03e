package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Sigma: 2, MaxDiagonal: 4, Workers: 4, Color: true, Verbose: false}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"DBGCYCLES_SIGMA", "3", func(c Config) any { return c.Sigma }, 3},
		{"DBGCYCLES_MAX_DIAGONAL", "6", func(c Config) any { return c.MaxDiagonal }, 6},
		{"DBGCYCLES_WORKERS", "1", func(c Config) any { return c.Workers }, 1},
		{"DBGCYCLES_COLOR", "false", func(c Config) any { return c.Color }, false},
		{"DBGCYCLES_VERBOSE", "true", func(c Config) any { return c.Verbose }, true},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			viper.Reset()
			SetupEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), ".dbgcycles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sigma: 4\nworkers: 2\n"), 0o600))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Sigma)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 4, cfg.MaxDiagonal)
}

func TestLoad_Invalid(t *testing.T) {
	for key, val := range map[string]any{
		"sigma":        1,
		"max_diagonal": -1,
		"workers":      0,
	} {
		t.Run(key, func(t *testing.T) {
			viper.Reset()
			viper.Set(key, val)

			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
	viper.Reset()
	viper.Set("sigma", 10)
	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
