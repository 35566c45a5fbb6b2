package heatmapplotter

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

func TestMakeHeatmapPlot(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1}
	z := mat.NewDense(2, 3, []float64{0, 0.2, 0.4, 0.6, 0.8, 1})

	for _, ext := range []string{".png", ".pdf", ".svg"} {
		path := filepath.Join(t.TempDir(), "decision"+ext)
		require.NoError(t, MakeHeatmapPlot(xs, ys, z, "Decision", 4*vg.Inch, 3*vg.Inch, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestMakeHeatmapPlotErrors(t *testing.T) {
	z := mat.NewDense(2, 2, nil)
	dir := t.TempDir()

	size := 4 * vg.Inch

	assert.Error(t, MakeHeatmapPlot([]float64{0, 1, 2}, []float64{0, 1}, z, "bad", size, size, filepath.Join(dir, "a.png")))
	assert.Error(t, MakeHeatmapPlot([]float64{0, 1}, []float64{0, 1}, z, "bad", size, size, filepath.Join(dir, "a.eps")))
	assert.Error(t, MakeHeatmapPlot([]float64{0, 1}, []float64{0, 1}, z, "bad", 0, size, filepath.Join(dir, "a.png")))
}

func TestMakeHeatmapPlotSize(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	z := mat.NewDense(2, 2, []float64{0, 0.5, 0.5, 1})
	dir := t.TempDir()

	small := filepath.Join(dir, "small.png")
	large := filepath.Join(dir, "large.png")
	require.NoError(t, MakeHeatmapPlot(xs, ys, z, "Decision", 2*vg.Inch, 2*vg.Inch, small))
	require.NoError(t, MakeHeatmapPlot(xs, ys, z, "Decision", 8*vg.Inch, 6*vg.Inch, large))

	for path, want := range map[string][2]int{small: {192, 192}, large: {768, 576}} {
		f, err := os.Open(path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, want, [2]int{cfg.Width, cfg.Height}, path)
	}
}

func TestSupports(t *testing.T) {
	for _, name := range []string{"a.png", "a.PDF", "dir/a.svg"} {
		assert.True(t, Supports(name), name)
	}
	for _, name := range []string{"a.eps", "a.jpg", "noext"} {
		assert.False(t, Supports(name), name)
	}
}

func TestGridDims(t *testing.T) {
	g := grid{xs: []float64{0, 1, 2}, ys: []float64{5, 6}, z: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})}
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 6.0, g.Y(1))
}
