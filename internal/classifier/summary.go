package classifier

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"montecarlo-go/internal/solver"
)

// Centroid returns the empirical mean of the cloud.
func Centroid(c Cloud) Point {
	if c.Len() == 0 {
		return Point{X: math.NaN(), Y: math.NaN()}
	}
	v := solver.AveragePRows(c.Points, c.Len())
	return Point{X: v.AtVec(0), Y: v.AtVec(1)}
}

// BoundaryPoint finds the point on the segment between the two centroids
// whose mean distances to both clouds are equal.
func BoundaryPoint(c0, c1 Cloud) (Point, error) {
	a, b := Centroid(c0), Centroid(c1)
	if floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2) == 0 {
		return Point{}, eris.New("classifier: centroids coincide")
	}

	at := func(t float64) Point {
		return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	}
	gap := func(t float64) float64 {
		q := at(t)
		d := MeanDistance(c0, q) - MeanDistance(c1, q)
		return d * d
	}

	t, _, err := solver.MinimizeBounded(gap, 0, 1, 0.5)
	if err != nil {
		return Point{}, eris.Wrap(err, "classifier: boundary point")
	}
	return at(t), nil
}

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// CloudBounds returns the rectangle enclosing both clouds, padded by pad on
// every side.
func CloudBounds(c0, c1 Cloud, pad float64) Bounds {
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range []Cloud{c0, c1} {
		for i := 0; i < c.Len(); i++ {
			p := c.At(i)
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	b.MinX -= pad
	b.MinY -= pad
	b.MaxX += pad
	b.MaxY += pad
	return b
}

// Grid holds a regular lattice of scores. Score(r, c) belongs to (Xs[c], Ys[r]).
type Grid struct {
	Xs, Ys []float64
	Score  *mat.Dense
}

// DecisionGrid evaluates d0/(d0+d1) on an nx x ny lattice over b. Cells below
// 0.5 are predicted as class 0.
func DecisionGrid(c0, c1 Cloud, b Bounds, nx, ny int) (Grid, error) {
	if nx < 2 || ny < 2 {
		return Grid{}, eris.Errorf("classifier: grid needs at least 2x2 cells, got %dx%d", nx, ny)
	}
	if !(b.MaxX > b.MinX) || !(b.MaxY > b.MinY) {
		return Grid{}, eris.New("classifier: degenerate grid bounds")
	}

	g := Grid{
		Xs:    make([]float64, nx),
		Ys:    make([]float64, ny),
		Score: mat.NewDense(ny, nx, nil),
	}
	floats.Span(g.Xs, b.MinX, b.MaxX)
	floats.Span(g.Ys, b.MinY, b.MaxY)

	for r, y := range g.Ys {
		for c, x := range g.Xs {
			q := Point{X: x, Y: y}
			d0 := MeanDistance(c0, q)
			d1 := MeanDistance(c1, q)
			score := 0.5
			if d0+d1 > 0 {
				score = d0 / (d0 + d1)
			}
			g.Score.Set(r, c, score)
		}
	}
	return g, nil
}
