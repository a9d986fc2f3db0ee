// Package cmd implements the integrals command line.
package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/integrals/internal/config"
	"github.com/abhisek/integrals/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "integrals",
	Short: "Definite-integral practice quiz",
	Long: `Integrals is a terminal quiz for the power, reciprocal and exponential
rules of definite integration. Each exercise has four numeric options; the
step-by-step solution and a plot of the integrand are one key away.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(theoryCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override config file settings.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to YAML config file (overrides INTEGRALS_CONFIG env var)")
	fs.String("log-file", "", "Append logs to this file (default: discard)")
	fs.String("log-level", "", "Log level: debug, info, warn, error")
	fs.Uint64("seed", 0, "Seed for the exercise generator (0 picks a random seed)")
	fs.Int("count", 0, "Exercises per batch, 1-10")
}

// resolveConfigPath returns the config path using --config (highest
// priority), then INTEGRALS_CONFIG, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// loadConfig resolves settings with flag > env > file > default precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("count") {
		cfg.ExerciseCount, _ = flags.GetInt("count")
	}
	return cfg, cfg.Validate()
}

// setup loads the config and initialises logging. The returned closer
// flushes the log file.
func setup(cmd *cobra.Command) (config.Config, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	closer, err := logger.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"count":   cfg.ExerciseCount,
		"seed":    cfg.Seed,
		"verify":  cfg.VerifyWithOracle,
	}).Debug("config loaded")
	return cfg, closer, nil
}
