package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"montecarlo-go/pkg/normalboxmueller"
)

var (
	sampleCount int
	sampleBins  int
	sampleMean  float64
	sampleDist  string
	sampleLow   float64
	sampleHigh  float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a histogram of the normal or uniform sampler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySimulationFlags(cmd, &cfg.Simulation); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if sampleCount < 1 || sampleBins < 1 {
			return eris.New("--n and --bins must be positive")
		}

		values, err := drawSample(cmd, normalboxmueller.NewRand(cfg.Simulation.Seed))
		if err != nil {
			return err
		}
		printHistogram(cmd.OutOrStdout(), values, sampleBins)
		return nil
	},
}

// drawSample draws --n values from the distribution named by --dist. A normal
// sample with --low or --high is clamped Box-Muller; otherwise it uses the
// configured sampler.
func drawSample(cmd *cobra.Command, rnd *rand.Rand) ([]float64, error) {
	f := cmd.Flags()
	switch sampleDist {
	case "uniform":
		u := normalboxmueller.NewUniDistParams(sampleLow, sampleHigh)
		if err := u.Validate(); err != nil {
			return nil, eris.Wrap(err, "uniform sample")
		}
		return u.RandN(rnd, sampleCount), nil
	case "normal":
		if !f.Changed("low") && !f.Changed("high") {
			sampler, err := normalboxmueller.NewDistribution(cfg.Simulation.Sampler)
			if err != nil {
				return nil, err
			}
			values := make([]float64, sampleCount)
			for i := range values {
				values[i] = sampler.Normal(rnd, sampleMean, cfg.Simulation.StdDev)
			}
			return values, nil
		}
		low, high := math.Inf(-1), math.Inf(1)
		if f.Changed("low") {
			low = sampleLow
		}
		if f.Changed("high") {
			high = sampleHigh
		}
		p := normalboxmueller.NewNormalDistParams(sampleMean, cfg.Simulation.StdDev, low, high)
		if err := p.Validate(); err != nil {
			return nil, eris.Wrap(err, "clamped normal sample")
		}
		return p.RandN(rnd, sampleCount), nil
	default:
		return nil, eris.Errorf("unknown distribution %q", sampleDist)
	}
}

// printHistogram draws values as a bar chart of bins equal-width intervals.
func printHistogram(w io.Writer, values []float64, bins int) {
	sort.Float64s(values)
	lo, hi := values[0], values[len(values)-1]
	if lo == hi {
		hi = lo + 1
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram excludes the upper divider.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, values, nil)

	maxCount := floats.Max(counts)
	for i, count := range counts {
		bar := strings.Repeat("█", int(count/maxCount*50))
		fmt.Fprintf(w, "%8.3f-%8.3f: %s %d\n", dividers[i], dividers[i+1], bar, int(count))
	}

	mean, std := stat.MeanStdDev(values, nil)
	fmt.Fprintf(w, "\nn=%d mean=%.4f std=%.4f\n", len(values), mean, std)
}

func addSampleFlags(cmd *cobra.Command) {
	addSimulationFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&sampleCount, "n", 10000, "number of values to draw")
	f.IntVar(&sampleBins, "bins", 20, "number of histogram bins")
	f.Float64Var(&sampleMean, "mean", 0, "mean of the normal distribution")
	f.StringVar(&sampleDist, "dist", "normal", "distribution: normal or uniform")
	f.Float64Var(&sampleLow, "low", 0, "lower bound (uniform interval, or normal clamp)")
	f.Float64Var(&sampleHigh, "high", 1, "upper bound (uniform interval, or normal clamp)")
}

func init() {
	addSampleFlags(sampleCmd)
	rootCmd.AddCommand(sampleCmd)
}
