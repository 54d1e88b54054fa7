package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Simulation.Inner != 10 || cfg.Simulation.Outer != 1000 || cfg.Simulation.Bias != 0.5 {
		t.Fatalf("unexpected defaults: %+v", cfg.Simulation)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randwalk.yaml")
	data := `
simulation:
  inner: 50
  outer: 20000
  bias: 0.3
  offset: 2
  seed: 42
  two_d: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Inner != 50 || cfg.Simulation.Outer != 20000 {
		t.Fatalf("simulation not overridden: %+v", cfg.Simulation)
	}
	if !cfg.Simulation.TwoD || cfg.Simulation.Seed != 42 {
		t.Fatalf("two_d/seed not overridden: %+v", cfg.Simulation)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched fields keep their defaults.
	if cfg.Output.Plot != "walk.png" {
		t.Fatalf("output.plot = %q, want default walk.png", cfg.Output.Plot)
	}

	p := cfg.Params()
	if p.Inner != 50 || p.Outer != 20000 || p.Bias != 0.3 || p.Offset != 2 {
		t.Fatalf("Params = %+v", p)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative inner", "simulation:\n  inner: -1\n"},
		{"zero outer", "simulation:\n  outer: 0\n"},
		{"bias out of range", "simulation:\n  bias: 1.5\n"},
		{"negative workers", "simulation:\n  workers: -2\n"},
		{"malformed yaml", "simulation: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load accepted invalid config")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}
