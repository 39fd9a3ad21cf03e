// Package config loads dbgcycles runtime settings from viper: built-in
// defaults, then .dbgcycles.yaml, then DBGCYCLES_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "DBGCYCLES"

// ErrInvalidConfig wraps every validation failure of Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings shared by all subcommands.
type Config struct {
	// Sigma is the alphabet size used when --sigma is not given.
	Sigma int `mapstructure:"sigma"`
	// MaxDiagonal bounds the (σ, k) sweep of the conjecture command.
	MaxDiagonal int `mapstructure:"max_diagonal"`
	// Workers bounds concurrent evaluations in the conjecture sweep.
	Workers int  `mapstructure:"workers"`
	Color   bool `mapstructure:"color"`
	Verbose bool `mapstructure:"verbose"`
}

// SetupEnv makes viper read DBGCYCLES_* environment variables.
func SetupEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// value not set by config file, environment or flags, and validates it.
func Load() (Config, error) {
	viper.SetDefault("sigma", 2)
	viper.SetDefault("max_diagonal", 4)
	viper.SetDefault("workers", 4)
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges: 2 ≤ sigma ≤ 9, max_diagonal ≥ 0, workers ≥ 1.
func (c Config) Validate() error {
	if c.Sigma < 2 || c.Sigma > 9 {
		return fmt.Errorf("config: sigma=%d not in [2,9]: %w", c.Sigma, ErrInvalidConfig)
	}
	if c.MaxDiagonal < 0 {
		return fmt.Errorf("config: max_diagonal=%d is negative: %w", c.MaxDiagonal, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers=%d must be ≥ 1: %w", c.Workers, ErrInvalidConfig)
	}

	return nil
}
