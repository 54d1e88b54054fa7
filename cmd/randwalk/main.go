package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Noofbiz/randwalk/config"
	"github.com/Noofbiz/randwalk/logger"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "randwalk",
		Short: "Binomial random walk Monte Carlo simulator",
		Long: `randwalk simulates discrete binomial random walks: many independent
repetitions of biased ±1 steps, each recording the highest position reached.
It aggregates the recorded maxima into a distribution, reports the success
probability (the fraction of repetitions that reach zero, a proxy for an
attacker catching up in a blockchain race), and renders or exports the
result in 1D or 2D.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON lines")

	rootCmd.AddCommand(
		newRunCmd(),
		newPlotCmd(),
		newExportCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addSimFlags registers the simulation flags shared by run, plot and export.
func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int("inner", 0, "Steps per repetition")
	cmd.Flags().Int("outer", 0, "Number of repetitions")
	cmd.Flags().Float64("bias", 0, "Probability of a +1 step")
	cmd.Flags().Int("offset", 0, "Starting deficit (walk begins at -offset)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().Int("workers", 0, "Worker goroutines (0 uses all CPUs)")
	cmd.Flags().Bool("2d", false, "Run the 2D sampler")
}

// loadConfig resolves the effective configuration: YAML file (or defaults)
// with explicitly set flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("inner") {
		cfg.Simulation.Inner, _ = flags.GetInt("inner")
	}
	if flags.Changed("outer") {
		cfg.Simulation.Outer, _ = flags.GetInt("outer")
	}
	if flags.Changed("bias") {
		cfg.Simulation.Bias, _ = flags.GetFloat64("bias")
	}
	if flags.Changed("offset") {
		cfg.Simulation.Offset, _ = flags.GetInt("offset")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("2d") {
		cfg.Simulation.TwoD, _ = flags.GetBool("2d")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.Logging.JSON, _ = flags.GetBool("log-json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newCmdLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.JSON)
}
