package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"montecarlo-go/internal/config"
	"montecarlo-go/pkg/readpoints"
)

// addSimulationFlags registers the cloud parameters on cmd. Values only
// replace the configuration when the flag is given explicitly.
func addSimulationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("samples", 1000, "number of samples per class")
	f.Float64("std-dev", 1.2, "standard deviation of both classes")
	f.Int64("seed", 42, "random seed")
	f.String("center0", "2,2", "center of class 0 as x,y")
	f.String("center1", "6,6", "center of class 1 as x,y")
	f.String("sampler", "gonum", "normal sampler: gonum or boxmuller")
}

func applySimulationFlags(cmd *cobra.Command, sim *config.SimulationConfig) error {
	f := cmd.Flags()
	var err error
	if f.Changed("samples") {
		if sim.Samples, err = f.GetInt("samples"); err != nil {
			return err
		}
	}
	if f.Changed("std-dev") {
		if sim.StdDev, err = f.GetFloat64("std-dev"); err != nil {
			return err
		}
	}
	if f.Changed("seed") {
		if sim.Seed, err = f.GetInt64("seed"); err != nil {
			return err
		}
	}
	if f.Changed("sampler") {
		if sim.Sampler, err = f.GetString("sampler"); err != nil {
			return err
		}
	}
	for _, name := range []string{"center0", "center1"} {
		if !f.Changed(name) {
			continue
		}
		raw, err := f.GetString(name)
		if err != nil {
			return err
		}
		p, err := readpoints.ParseLine(raw)
		if err != nil {
			return eris.Wrapf(err, "--%s", name)
		}
		if name == "center0" {
			sim.Center0 = [2]float64{p.X, p.Y}
		} else {
			sim.Center1 = [2]float64{p.X, p.Y}
		}
	}
	return nil
}
