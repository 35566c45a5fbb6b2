package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/internal/config"
	"montecarlo-go/internal/presenter"
	"montecarlo-go/pkg/normalboxmueller"
	"montecarlo-go/pkg/readpoints"
)

var (
	classifyPoints     string
	classifyPointsFile string
	classifyOutput     string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify query points against two simulated classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySimulationFlags(cmd, &cfg.Simulation); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		queries, err := loadQueries(cmd)
		if err != nil {
			return err
		}

		c0, c1, results, err := simulate(cfg.Simulation, queries)
		if err != nil {
			return err
		}

		if b, err := classifier.BoundaryPoint(c0, c1); err == nil {
			zap.L().Info("decision boundary between centroids",
				zap.Float64("x", b.X), zap.Float64("y", b.Y))
		}

		if classifyOutput == "" || classifyOutput == "-" {
			return presenter.WriteResultsCSV(cmd.OutOrStdout(), results)
		}
		if err := presenter.SaveResultsCSV(classifyOutput, results); err != nil {
			return err
		}
		zap.L().Info("results saved", zap.String("path", classifyOutput), zap.Int("rows", len(results)))
		return nil
	},
}

// loadQueries reads the points from --points-file, --points or the
// configured default text, in that order of preference.
func loadQueries(cmd *cobra.Command) ([]classifier.Point, error) {
	var (
		lines []readpoints.LineResult
		err   error
	)
	switch {
	case classifyPointsFile == "-":
		lines, err = readpoints.ReadLines(cmd.InOrStdin())
	case classifyPointsFile != "":
		lines, err = readpoints.ReadFile(classifyPointsFile)
	case cmd.Flags().Changed("points"):
		lines = readpoints.ParseLines(classifyPoints)
	default:
		lines = readpoints.ParseLines(cfg.Simulation.Points)
	}
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if l.Err != nil {
			zap.L().Debug("skipping malformed point line", zap.Int("line", l.Line), zap.Error(l.Err))
		}
	}
	return readpoints.Valid(lines), nil
}

// simulate generates the clouds described by sim and classifies queries.
func simulate(sim config.SimulationConfig, queries []classifier.Point) (classifier.Cloud, classifier.Cloud, []classifier.Result, error) {
	sampler, err := normalboxmueller.NewDistribution(sim.Sampler)
	if err != nil {
		return classifier.Cloud{}, classifier.Cloud{}, nil, err
	}
	zap.L().Debug("generating clouds",
		zap.Int("samples", sim.Samples),
		zap.Float64("std_dev", sim.StdDev),
		zap.Int64("seed", sim.Seed),
		zap.String("sampler", sampler.Name()),
	)
	return classifier.Run(sim.Params(), sampler, queries)
}

func init() {
	addSimulationFlags(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyPoints, "points", "", "query points, one x,y pair per line")
	classifyCmd.Flags().StringVar(&classifyPointsFile, "points-file", "", "file with one x,y pair per line (- for stdin)")
	classifyCmd.Flags().StringVarP(&classifyOutput, "output", "o", "", "CSV output path (default stdout)")
	rootCmd.AddCommand(classifyCmd)
}
