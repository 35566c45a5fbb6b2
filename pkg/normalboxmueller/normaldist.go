package normalboxmueller

import (
	"math"
	"math/rand/v2"

	"github.com/rotisserie/eris"
)

// NormalDistParams represents the parameters for a normal distribution.
// Low and High clamp generated values; use math.Inf for an unbounded side.
type NormalDistParams struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
}

// NewNormalDistParams creates a new NormalDistParams instance with the given parameters.
func NewNormalDistParams(mean, stdDev, low, high float64) *NormalDistParams {
	return &NormalDistParams{
		Mean:   mean,
		StdDev: stdDev,
		Low:    low,
		High:   high,
	}
}

// NewUnboundedNormal creates parameters without clamping.
func NewUnboundedNormal(mean, stdDev float64) *NormalDistParams {
	return NewNormalDistParams(mean, stdDev, math.Inf(-1), math.Inf(1))
}

// Validate checks if the parameters are valid.
func (p *NormalDistParams) Validate() error {
	if p.Low > p.High {
		return eris.New("low must be less than or equal to high")
	}
	if p.Mean < p.Low || p.Mean > p.High {
		return eris.New("mean must be between low and high")
	}
	if p.StdDev <= 0 {
		return eris.New("std_dev must be positive")
	}
	return nil
}

// Generate draws one value with the Box-Muller transform.
func (p *NormalDistParams) Generate(rnd *rand.Rand) float64 {
	z := boxMuller(rnd)*p.StdDev + p.Mean

	if z < p.Low {
		z = p.Low
	} else if z > p.High {
		z = p.High
	}

	return z
}

func (p *NormalDistParams) GenerateVector(rnd *rand.Rand, v []float64) {
	for i := range v {
		v[i] = p.Generate(rnd)
	}
}

func (p *NormalDistParams) RandN(rnd *rand.Rand, n int) []float64 {
	r := make([]float64, n)
	p.GenerateVector(rnd, r)
	return r
}

// boxMuller returns a standard normal deviate. u1 is taken from (0, 1] so the
// logarithm stays finite.
func boxMuller(rnd *rand.Rand) float64 {
	u1 := 1.0 - rnd.Float64()
	u2 := rnd.Float64()

	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// BoxMuller is a NormalSampler backed by the Box-Muller transform.
type BoxMuller struct{}

func (BoxMuller) Normal(rnd *rand.Rand, mean, stdDev float64) float64 {
	return NewUnboundedNormal(mean, stdDev).Generate(rnd)
}

func (BoxMuller) Name() string {
	return "boxmuller"
}
