package presenter

import (
	"image/color"
	"slices"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/pkg/heatmapplotter"
	"montecarlo-go/pkg/scatterplotter"
)

// GenerateScatter plots both clouds and the classified query points.
func GenerateScatter(outputPath string, c0, c1 classifier.Cloud, results []classifier.Result, opts scatterplotter.Options) error {
	markers := make([]scatterplotter.Marker, len(results))
	for i, r := range results {
		markers[i] = scatterplotter.Marker{X: r.X, Y: r.Y, Label: r.PredictedLabel}
	}
	return scatterplotter.MakeScatterPlot(c0.Points, c1.Points, markers, opts, outputPath)
}

// GenerateHeatmap plots the decision score grid at the figure size of opts.
func GenerateHeatmap(outputPath string, title string, g classifier.Grid, opts scatterplotter.Options) error {
	w, h := vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch
	return heatmapplotter.MakeHeatmapPlot(g.Xs, g.Ys, g.Score, title, w, h, outputPath)
}

// SaveViewsChart draws one line per user; users are plotted in name order.
func SaveViewsChart(outputPath string, series map[string][]float64) error {
	p := plot.New()
	p.Title.Text = "Vistas por usuario"
	p.X.Label.Text = "Índice"
	p.Y.Label.Text = "Vistas"
	p.Add(plotter.NewGrid())

	users := make([]string, 0, len(series))
	for u := range series {
		users = append(users, u)
	}
	slices.Sort(users)

	for i, u := range users {
		values := series[u]
		if len(values) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(values))
		for j, v := range values {
			xys[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return eris.Wrapf(err, "presenter: line for %s", u)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(u, line)
	}
	p.Legend.Top = true
	p.Legend.TextStyle.Color = color.Black

	if err := p.Save(10*vg.Inch, 2.5*vg.Inch, outputPath); err != nil {
		return eris.Wrapf(err, "presenter: save %s", outputPath)
	}
	return nil
}
