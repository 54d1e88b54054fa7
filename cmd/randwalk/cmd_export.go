package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Noofbiz/randwalk/render"
	"github.com/Noofbiz/randwalk/walk"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run the simulation and export the distribution as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newCmdLogger(cfg)

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = cfg.Output.CSV
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			if cfg.Simulation.TwoD {
				s, err := walk.NewSampler2D(cfg.Params(), cfg.Options()...)
				if err != nil {
					return err
				}
				s.Compute()
				dist, _ := s.Distribution()
				if err := render.WriteCSV2D(f, dist); err != nil {
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
				if err := render.WriteCSV(f, values, heights); err != nil {
					return err
				}
			}

			log.Info().Str("path", out).Msg("csv written")
			return nil
		},
	}
	addSimFlags(cmd)
	cmd.Flags().String("out", "", "Output CSV path (defaults to output.csv from config)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("randwalk version %s\n", version)
		},
	}
}
