package normalboxmueller

import (
	"math"
	"math/rand/v2"

	"github.com/rotisserie/eris"
)

type UniDistParams struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// NewUniDistParams creates a uniform distribution over [low, high).
func NewUniDistParams(low, high float64) *UniDistParams {
	return &UniDistParams{
		Low:  low,
		High: high,
	}
}

// Validate requires a finite, non-empty interval.
func (p *UniDistParams) Validate() error {
	if math.IsInf(p.Low, 0) || math.IsInf(p.High, 0) || math.IsNaN(p.Low) || math.IsNaN(p.High) {
		return eris.New("low and high must be finite")
	}
	if p.Low >= p.High {
		return eris.New("low must be less than high")
	}
	return nil
}

func (p *UniDistParams) Generate(rnd *rand.Rand) float64 {
	span := p.High - p.Low
	return rnd.Float64()*span + p.Low
}

// IntN returns an integer in [Low, High), both bounds truncated to int.
func (p *UniDistParams) IntN(rnd *rand.Rand) int {
	low, high := int(p.Low), int(p.High)
	if high <= low {
		return low
	}
	return low + rnd.IntN(high-low)
}

func (p *UniDistParams) GenerateVector(rnd *rand.Rand, v []float64) {
	for i := range v {
		v[i] = p.Generate(rnd)
	}
}

func (p *UniDistParams) RandN(rnd *rand.Rand, n int) []float64 {
	r := make([]float64, n)
	p.GenerateVector(rnd, r)
	return r
}

// Choice picks one element of options uniformly.
func Choice[T any](rnd *rand.Rand, options []T) T {
	return options[rnd.IntN(len(options))]
}
