package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Noofbiz/randwalk/render"
	"github.com/Noofbiz/randwalk/walk"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Run the simulation and render it to an image file",
		Long: `plot runs the configured simulation and writes a bar chart with a
smoothed overlay curve (1D) or a heat map of the occurrence matrix (2D).
The image format follows the output file extension.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newCmdLogger(cfg)

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = cfg.Output.Plot
			}

			start := time.Now()
			if cfg.Simulation.TwoD {
				s, err := walk.NewSampler2D(cfg.Params(), cfg.Options()...)
				if err != nil {
					return err
				}
				s.Compute()
				g, err := s.Matrix()
				if err != nil {
					return err
				}
				if err := render.Heatmap(g, out); err != nil {
					return err
				}
			} else {
				s, err := walk.NewSampler(cfg.Params(), cfg.Options()...)
				if err != nil {
					return err
				}
				s.Compute()
				values, _ := s.Values()
				heights, _ := s.Heights()
				if err := render.Bar(values, heights, out); err != nil {
					return err
				}
			}

			log.Info().Str("path", out).Dur("took", time.Since(start)).Msg("plot written")
			return nil
		},
	}
	addSimFlags(cmd)
	cmd.Flags().String("out", "", "Output image path (defaults to output.plot from config)")
	return cmd
}
