package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Noofbiz/randwalk/config"
	"github.com/Noofbiz/randwalk/walk"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and print the resulting distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newCmdLogger(cfg)
			jsonOut, _ := cmd.Flags().GetBool("json")

			if cfg.Simulation.TwoD {
				return run2D(cfg, log, jsonOut)
			}
			return run1D(cfg, log, jsonOut)
		},
	}
	addSimFlags(cmd)
	cmd.Flags().Bool("json", false, "Output results as JSON")
	return cmd
}

type runResult struct {
	Params  walk.Params  `json:"params"`
	Values  []int        `json:"values"`
	Heights []int        `json:"heights"`
	Success float64      `json:"success_probability"`
	Summary walk.Summary `json:"summary"`
}

func run1D(cfg *config.Config, log zerolog.Logger, jsonOut bool) error {
	s, err := walk.NewSampler(cfg.Params(), cfg.Options()...)
	if err != nil {
		return err
	}

	start := time.Now()
	s.Compute()
	log.Info().
		Int("inner", cfg.Simulation.Inner).
		Int("outer", cfg.Simulation.Outer).
		Float64("bias", cfg.Simulation.Bias).
		Int("offset", cfg.Simulation.Offset).
		Dur("took", time.Since(start)).
		Msg("simulation complete")

	values, _ := s.Values()
	heights, _ := s.Heights()
	success, _ := s.SuccessProbability()
	dist, _ := s.Distribution()
	summary := walk.Summarize(dist)

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(runResult{
			Params:  s.Params(),
			Values:  values,
			Heights: heights,
			Success: success,
			Summary: summary,
		})
	}

	fmt.Printf("%8s %8s\n", "value", "count")
	for i := range values {
		fmt.Printf("%8d %8d\n", values[i], heights[i])
	}
	fmt.Printf("\nmean=%.3f stddev=%.3f min=%d max=%d median=%.1f p90=%.1f\n",
		summary.Mean, summary.StdDev, summary.Min, summary.Max, summary.Median, summary.P90)
	fmt.Printf("success probability: %.4f\n", success)
	return nil
}

type runResult2D struct {
	Params  walk.Params `json:"params"`
	X       []int       `json:"x"`
	Y       []int       `json:"y"`
	Heights []int       `json:"heights"`
	Success float64     `json:"success_probability"`
	Cols    int         `json:"grid_cols"`
	Rows    int         `json:"grid_rows"`
}

func run2D(cfg *config.Config, log zerolog.Logger, jsonOut bool) error {
	s, err := walk.NewSampler2D(cfg.Params(), cfg.Options()...)
	if err != nil {
		return err
	}

	start := time.Now()
	s.Compute()
	log.Info().
		Int("inner", cfg.Simulation.Inner).
		Int("outer", cfg.Simulation.Outer).
		Float64("bias", cfg.Simulation.Bias).
		Int("offset", cfg.Simulation.Offset).
		Dur("took", time.Since(start)).
		Msg("2D simulation complete")

	xs, _ := s.XValues()
	ys, _ := s.YValues()
	heights, _ := s.Heights()
	success, _ := s.SuccessProbability()
	g, _ := s.Matrix()

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(runResult2D{
			Params:  s.Params(),
			X:       xs,
			Y:       ys,
			Heights: heights,
			Success: success,
			Cols:    g.Cols(),
			Rows:    g.Rows(),
		})
	}

	fmt.Printf("%8s %8s %8s\n", "x", "y", "count")
	for i := range xs {
		fmt.Printf("%8d %8d %8d\n", xs[i], ys[i], heights[i])
	}
	fmt.Printf("\ngrid: %d x %d distinct coordinates\n", g.Rows(), g.Cols())
	fmt.Printf("success probability: %.4f\n", success)
	return nil
}
