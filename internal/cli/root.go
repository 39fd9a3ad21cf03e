// Package cli implements the dbgcycles command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dbgcycles/cycles"
	"github.com/katalvlaran/dbgcycles/internal/config"
)

// app is the state shared by subcommands once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	pal    palette
}

// NewRootCmd builds the dbgcycles command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dbgcycles",
		Short: "Count and enumerate simple cycles of de Bruijn graphs",
		Long: "dbgcycles counts and enumerates the simple cycles of the de Bruijn graph dBG(k, σ)\n" +
			"through perfect Lyndon words, and checks closed-form counts against enumeration.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .dbgcycles.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().Bool("no-color", false, "disable colored labels")

	root.AddCommand(
		newCountCmd(a),
		newEnumCmd(a),
		newConjectureCmd(a),
		newVerifyCmd(a),
	)

	return root
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup reads the config file and environment, applies persistent flags and
// builds the logger and palette.
func (a *app) setup(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dbgcycles")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	config.SetupEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose")); err != nil {
		return err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		viper.Set("color", false)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.pal = newPalette(cfg.Color)

	a.logger.Debug("configuration loaded",
		"config_file", viper.ConfigFileUsed(), "sigma", cfg.Sigma,
		"max_diagonal", cfg.MaxDiagonal, "workers", cfg.Workers, "color", cfg.Color)

	return nil
}

// addGraphFlags registers --order, --length and --sigma.
func addGraphFlags(cmd *cobra.Command, lengthHelp string) {
	cmd.Flags().IntP("order", "k", 0, "order of the de Bruijn graph")
	cmd.Flags().IntP("length", "l", 0, lengthHelp)
	cmd.Flags().IntP("sigma", "s", 0, "size of the alphabet (default from config)")
	_ = cmd.MarkFlagRequired("order")
}

// graphParams returns order, length and sigma; sigma falls back to the config.
func (a *app) graphParams(cmd *cobra.Command) (order, length int, sigma uint8, err error) {
	order, _ = cmd.Flags().GetInt("order")
	length, _ = cmd.Flags().GetInt("length")
	s := a.cfg.Sigma
	if cmd.Flags().Changed("sigma") {
		s, _ = cmd.Flags().GetInt("sigma")
	}
	if s < cycles.MinSigma || s > cycles.MaxSigma {
		return 0, 0, 0, fmt.Errorf("sigma must be in [%d,%d], got %d", cycles.MinSigma, cycles.MaxSigma, s)
	}
	if order < 1 {
		return 0, 0, 0, fmt.Errorf("order must be ≥ 1, got %d", order)
	}
	if length < 0 {
		return 0, 0, 0, fmt.Errorf("length must be ≥ 0, got %d", length)
	}

	return order, length, uint8(s), nil
}

// opts returns the library options carrying the command logger.
func (a *app) opts() []cycles.Option {
	return []cycles.Option{cycles.WithLogger(a.logger)}
}
