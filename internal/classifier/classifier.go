// Package classifier generates two labelled Gaussian point clouds and assigns
// query points to the cloud with the smaller mean Euclidean distance.
package classifier

import (
	"math"
	"math/rand/v2"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"montecarlo-go/pkg/normalboxmueller"
	"montecarlo-go/pkg/readpoints"
)

type Point = readpoints.Point

// Sampler draws one normal deviate from the supplied stream.
type Sampler interface {
	Normal(rnd *rand.Rand, mean, stdDev float64) float64
}

// Params describes one simulation run.
type Params struct {
	Samples int     `json:"samples"`
	StdDev  float64 `json:"std_dev"`
	Center0 Point   `json:"center0"`
	Center1 Point   `json:"center1"`
	Seed    int64   `json:"seed"`
}

func (p Params) Validate() error {
	if p.Samples <= 0 {
		return eris.Errorf("classifier: samples must be positive, got %d", p.Samples)
	}
	if !(p.StdDev > 0) || math.IsInf(p.StdDev, 0) {
		return eris.Errorf("classifier: std dev must be positive and finite, got %v", p.StdDev)
	}
	for _, c := range []Point{p.Center0, p.Center1} {
		if !finite(c.X) || !finite(c.Y) {
			return eris.Errorf("classifier: center must be finite, got (%v, %v)", c.X, c.Y)
		}
	}
	return nil
}

// Cloud is an N x 2 matrix of points sharing one label.
type Cloud struct {
	Label  int
	Points *mat.Dense
}

// Len returns the number of points in the cloud.
func (c Cloud) Len() int {
	if c.Points == nil {
		return 0
	}
	r, _ := c.Points.Dims()
	return r
}

// At returns the i-th point.
func (c Cloud) At(i int) Point {
	row := c.Points.RawRowView(i)
	return Point{X: row[0], Y: row[1]}
}

// Result is the classification of one query point. Distances are unrounded.
type Result struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	DistanceToClass0 float64 `json:"distance_to_class_0"`
	DistanceToClass1 float64 `json:"distance_to_class_1"`
	PredictedLabel   int     `json:"predicted_label"`
}

// Rounded returns a copy with both distances rounded to two decimals.
func (r Result) Rounded() Result {
	r.DistanceToClass0 = Round2(r.DistanceToClass0)
	r.DistanceToClass1 = Round2(r.DistanceToClass1)
	return r
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Generate seeds a fresh stream from p.Seed and draws both clouds from it.
func Generate(p Params, s Sampler) (Cloud, Cloud, error) {
	return GenerateClouds(normalboxmueller.NewRand(p.Seed), p, s)
}

// GenerateClouds draws cloud 0 and then cloud 1 from rnd. Every point takes
// its x deviate before its y deviate.
func GenerateClouds(rnd *rand.Rand, p Params, s Sampler) (Cloud, Cloud, error) {
	if err := p.Validate(); err != nil {
		return Cloud{}, Cloud{}, err
	}
	c0 := sampleCloud(rnd, s, 0, p.Samples, p.Center0, p.StdDev)
	c1 := sampleCloud(rnd, s, 1, p.Samples, p.Center1, p.StdDev)
	return c0, c1, nil
}

func sampleCloud(rnd *rand.Rand, s Sampler, label, n int, center Point, stdDev float64) Cloud {
	data := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		data[2*i] = s.Normal(rnd, center.X, stdDev)
		data[2*i+1] = s.Normal(rnd, center.Y, stdDev)
	}
	return Cloud{Label: label, Points: mat.NewDense(n, 2, data)}
}

// MeanDistance is the average Euclidean distance from q to every point of c.
func MeanDistance(c Cloud, q Point) float64 {
	n := c.Len()
	if n == 0 {
		return math.NaN()
	}
	qv := []float64{q.X, q.Y}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += floats.Distance(c.Points.RawRowView(i), qv, 2)
	}
	return sum / float64(n)
}

// Predict returns 0 only when d0 is strictly smaller than d1.
func Predict(d0, d1 float64) int {
	if d0 < d1 {
		return 0
	}
	return 1
}

// Classify scores every query against both clouds, preserving input order.
func Classify(c0, c1 Cloud, queries []Point) []Result {
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		d0 := MeanDistance(c0, q)
		d1 := MeanDistance(c1, q)
		results = append(results, Result{
			X:                q.X,
			Y:                q.Y,
			DistanceToClass0: d0,
			DistanceToClass1: d1,
			PredictedLabel:   Predict(d0, d1),
		})
	}
	return results
}

// Run generates the clouds for p and classifies queries against them.
func Run(p Params, s Sampler, queries []Point) (Cloud, Cloud, []Result, error) {
	c0, c1, err := Generate(p, s)
	if err != nil {
		return Cloud{}, Cloud{}, nil, err
	}
	return c0, c1, Classify(c0, c1, queries), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
