package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/internal/config"
	"montecarlo-go/internal/presenter"
	"montecarlo-go/pkg/heatmapplotter"
)

var (
	plotDir     string
	plotScatter string
	plotHeatmap string
	plotFormat  string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the class clouds, classified points and decision regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySimulationFlags(cmd, &cfg.Simulation); err != nil {
			return err
		}
		if err := applyPlotFlags(cmd, &cfg.Plot); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		scatterPath := plotScatter
		if scatterPath == "" {
			scatterPath = presenter.OutputName(plotDir, "scatter", plotFormat)
		}
		heatmapPath := plotHeatmap
		if heatmapPath == "" {
			heatmapPath = presenter.OutputName(plotDir, "decision", plotFormat)
		}
		// Both figures share the decision map's formats, so check before
		// writing either.
		for _, path := range []string{scatterPath, heatmapPath} {
			if !heatmapplotter.Supports(path) {
				return eris.Errorf("unsupported plot format for %s (use png, pdf or svg)", path)
			}
		}

		queries, err := loadQueries(cmd)
		if err != nil {
			return err
		}
		c0, c1, results, err := simulate(cfg.Simulation, queries)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(plotDir, 0o755); err != nil {
			return eris.Wrapf(err, "create %s", plotDir)
		}

		opts := cfg.Plot.Options()
		if err := presenter.GenerateScatter(scatterPath, c0, c1, results, opts); err != nil {
			return err
		}
		zap.L().Info("scatter plot saved", zap.String("path", scatterPath))

		n := cfg.Plot.GridSize
		grid, err := classifier.DecisionGrid(c0, c1, classifier.CloudBounds(c0, c1, 0.5), n, n)
		if err != nil {
			return err
		}
		if err := presenter.GenerateHeatmap(heatmapPath, "d0 / (d0 + d1)", grid, opts); err != nil {
			return err
		}
		zap.L().Info("decision map saved", zap.String("path", heatmapPath))
		return nil
	},
}

func applyPlotFlags(cmd *cobra.Command, p *config.PlotConfig) error {
	f := cmd.Flags()
	var err error
	if f.Changed("width") {
		if p.Width, err = f.GetFloat64("width"); err != nil {
			return err
		}
	}
	if f.Changed("height") {
		if p.Height, err = f.GetFloat64("height"); err != nil {
			return err
		}
	}
	if f.Changed("font-size") {
		if p.FontSize, err = f.GetFloat64("font-size"); err != nil {
			return err
		}
	}
	return nil
}

func addPlotFlags(cmd *cobra.Command) {
	addSimulationFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&classifyPoints, "points", "", "query points, one x,y pair per line")
	f.StringVar(&classifyPointsFile, "points-file", "", "file with one x,y pair per line (- for stdin)")
	f.StringVar(&plotDir, "dir", "plots", "output directory for generated file names")
	f.StringVar(&plotScatter, "scatter", "", "scatter plot path (.png, .pdf, .svg)")
	f.StringVar(&plotHeatmap, "heatmap", "", "decision map path (.png, .pdf, .svg)")
	f.StringVar(&plotFormat, "format", "png", "extension used for generated file names: png, pdf or svg")
	f.Float64("width", 10, "figure width in inches")
	f.Float64("height", 6, "figure height in inches")
	f.Float64("font-size", 14, "base font size in points")
}

func init() {
	addPlotFlags(plotCmd)
	rootCmd.AddCommand(plotCmd)
}
