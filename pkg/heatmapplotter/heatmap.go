package heatmapplotter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// MakeHeatmapPlot draws z (rows follow ys, columns follow xs) with values in
// [0, 1] and writes a PNG, PDF or SVG of width x height depending on the file
// extension.
func MakeHeatmapPlot(xs, ys []float64, z *mat.Dense, title string, width, height vg.Length, filename string) error {
	if width <= 0 || height <= 0 {
		return eris.Errorf("heatmap: canvas must be positive, got %vx%v", width, height)
	}
	r, c := z.Dims()
	if r != len(ys) || c != len(xs) {
		return eris.Errorf("heatmap: grid is %dx%d but axes are %dx%d", r, c, len(ys), len(xs))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	pal := palette.Rainbow(10, palette.Blue, palette.Red, 1, 1, 1)
	heatmap := plotter.NewHeatMap(grid{xs: xs, ys: ys, z: z}, pal)
	heatmap.Max = 1
	heatmap.Min = 0

	p.Add(heatmap)

	// Create a legend.
	l := plot.NewLegend()
	thumbs := plotter.PaletteThumbnailers(pal)
	nthumbs := len(thumbs)
	for i := nthumbs - 1; i >= 0; i-- {
		t := thumbs[i]
		val := (heatmap.Max - heatmap.Min) / float64(nthumbs) * float64(i)
		switch i {
		case 0:
			val = heatmap.Min
		case nthumbs - 1:
			val = heatmap.Max
		}
		l.Add(fmt.Sprintf("%.1f", val), t)
	}

	p.X.Padding = 0
	p.Y.Padding = 0

	canvas, err := newCanvas(filename, width, height)
	if err != nil {
		return err
	}

	dc := draw.New(canvas)

	l.Top = true
	// Calculate the width of the legend.
	rect := l.Rectangle(dc)
	legendWidth := rect.Max.X - rect.Min.X
	l.YOffs = -p.Title.TextStyle.FontExtents().Height // Adjust the legend down a little.

	l.Draw(dc)
	dc = draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0) // Make space for the legend.
	p.Draw(dc)

	w, err := os.Create(filename)
	if err != nil {
		return eris.Wrapf(err, "heatmap: create %s", filename)
	}
	defer w.Close()

	if _, err = canvas.WriteTo(w); err != nil {
		return eris.Wrapf(err, "heatmap: write %s", filename)
	}
	return nil
}

// Supports reports whether filename has an extension MakeHeatmapPlot can write.
func Supports(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".png", ".svg":
		return true
	}
	return false
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(filename string, width, height vg.Length) (canvasWriter, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return vgpdf.New(width, height), nil
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.New(width, height)}, nil
	case ".svg":
		return vgsvg.New(width, height), nil
	default:
		return nil, eris.Errorf("heatmap: unsupported output format %q", filepath.Ext(filename))
	}
}

type grid struct {
	xs, ys []float64
	z      *mat.Dense
}

func (g grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g grid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g grid) X(c int) float64    { return g.xs[c] }
func (g grid) Y(r int) float64    { return g.ys[r] }
