// Package config provides configuration loading for the randwalk CLI.
// Settings come from a YAML file and map onto walk simulation parameters;
// command-line flags override individual fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Noofbiz/randwalk/walk"
)

// Config contains all randwalk configuration settings.
type Config struct {
	// Simulation sets the Monte Carlo parameters.
	Simulation SimulationConfig `yaml:"simulation"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`

	// Output sets default file destinations for plot and export commands.
	Output OutputConfig `yaml:"output"`
}

// SimulationConfig describes one simulation run.
type SimulationConfig struct {
	// Inner is the number of steps per repetition.
	Inner int `yaml:"inner"`

	// Outer is the number of independent repetitions.
	Outer int `yaml:"outer"`

	// Bias is the probability of a +1 step.
	Bias float64 `yaml:"bias"`

	// Offset is the starting deficit; each repetition begins at -offset.
	Offset int `yaml:"offset"`

	// Seed makes runs reproducible. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`

	// Workers bounds the goroutines running repetitions. 0 means NumCPU.
	Workers int `yaml:"workers"`

	// TwoD selects the 2D sampler.
	TwoD bool `yaml:"two_d"`
}

// LoggingConfig configures CLI logging.
type LoggingConfig struct {
	// Level is a zerolog level name: "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// JSON switches from the console writer to raw JSON lines.
	JSON bool `yaml:"json"`
}

// OutputConfig sets default output paths.
type OutputConfig struct {
	Plot string `yaml:"plot"`
	CSV  string `yaml:"csv"`
}

// Default returns a Config for the smallest standard run: 10 steps per
// repetition, 1000 repetitions, a fair coin, no starting deficit.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Inner: 10,
			Outer: 1000,
			Bias:  0.5,
		},
		Logging: LoggingConfig{Level: "info"},
		Output: OutputConfig{
			Plot: "walk.png",
			CSV:  "walk.csv",
		},
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the samplers would reject, plus negative worker
// counts.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Inner <= 0 {
		return fmt.Errorf("config: simulation.inner must be > 0, got %d", s.Inner)
	}
	if s.Outer <= 0 {
		return fmt.Errorf("config: simulation.outer must be > 0, got %d", s.Outer)
	}
	if s.Bias < 0 || s.Bias > 1 {
		return fmt.Errorf("config: simulation.bias must be in [0,1], got %g", s.Bias)
	}
	if s.Workers < 0 {
		return fmt.Errorf("config: simulation.workers must be >= 0, got %d", s.Workers)
	}
	return nil
}

// Params converts the simulation settings to walk parameters.
func (c *Config) Params() walk.Params {
	return walk.Params{
		Inner:  c.Simulation.Inner,
		Outer:  c.Simulation.Outer,
		Bias:   c.Simulation.Bias,
		Offset: c.Simulation.Offset,
	}
}

// Options returns the sampler options implied by the configuration.
func (c *Config) Options() []walk.Option {
	var opts []walk.Option
	if c.Simulation.Seed != 0 {
		opts = append(opts, walk.WithSeed(c.Simulation.Seed))
	}
	if c.Simulation.Workers > 0 {
		opts = append(opts, walk.WithWorkers(c.Simulation.Workers))
	}
	return opts
}
