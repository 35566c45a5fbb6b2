// Package scatterplotter draws the two class clouds and the classified query
// points on one chart.
package scatterplotter

import (
	"fmt"
	"image/color"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	class0Color = color.NRGBA{R: 0, G: 0, B: 255, A: 77}
	class1Color = color.NRGBA{R: 255, G: 0, B: 0, A: 77}
	pred0Color  = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	pred1Color  = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
)

// Marker is a classified query point.
type Marker struct {
	X, Y  float64
	Label int
}

// Options controls the figure size (inches) and base font size (points).
type Options struct {
	Width    float64
	Height   float64
	FontSize float64
}

func DefaultOptions() Options {
	return Options{Width: 10, Height: 6, FontSize: 14}
}

// MakeScatterPlot renders cloud0, cloud1 (N x 2 matrices) and markers and
// saves the figure; the format follows the file extension.
func MakeScatterPlot(cloud0, cloud1 *mat.Dense, markers []Marker, opts Options, filename string) error {
	p := plot.New()
	p.Title.Text = "Clasificación de Puntos Nuevos por Distancia Euclidiana"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	applyFonts(p, opts.FontSize)
	p.Add(plotter.NewGrid())

	for i, c := range []struct {
		m   *mat.Dense
		clr color.Color
	}{{cloud0, class0Color}, {cloud1, class1Color}} {
		s, err := plotter.NewScatter(denseXYs(c.m))
		if err != nil {
			return eris.Wrapf(err, "scatter: class %d", i)
		}
		s.GlyphStyle.Color = c.clr
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Clase %d", i), s)
	}

	for _, label := range []int{0, 1} {
		xys := make(plotter.XYs, 0, len(markers))
		for _, m := range markers {
			if m.Label == label {
				xys = append(xys, plotter.XY{X: m.X, Y: m.Y})
			}
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return eris.Wrapf(err, "scatter: markers for class %d", label)
		}
		s.GlyphStyle.Color = pred0Color
		if label == 1 {
			s.GlyphStyle.Color = pred1Color
		}
		s.GlyphStyle.Radius = vg.Points(6)
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Punto → Clase %d", label), s)
	}

	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, filename); err != nil {
		return eris.Wrapf(err, "scatter: save %s", filename)
	}
	return nil
}

func applyFonts(p *plot.Plot, size float64) {
	if size <= 0 {
		return
	}
	p.Title.TextStyle.Font.Size = vg.Points(size + 4)
	p.X.Label.TextStyle.Font.Size = vg.Points(size)
	p.Y.Label.TextStyle.Font.Size = vg.Points(size)
	p.X.Tick.Label.Font.Size = vg.Points(size - 2)
	p.Y.Tick.Label.Font.Size = vg.Points(size - 2)
	p.Legend.TextStyle.Font.Size = vg.Points(size - 2)
}

func denseXYs(m *mat.Dense) plotter.XYs {
	if m == nil {
		return plotter.XYs{}
	}
	r, _ := m.Dims()
	xys := make(plotter.XYs, r)
	for i := range xys {
		xys[i].X = m.At(i, 0)
		xys[i].Y = m.At(i, 1)
	}
	return xys
}
