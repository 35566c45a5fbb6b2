package randomnormal

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalRandGenerator draws normally distributed numbers through gonum's
// distuv.Normal. The random stream is always supplied by the caller.
type NormalRandGenerator struct{}

// NewNormalRandGenerator creates a new generator
func NewNormalRandGenerator() *NormalRandGenerator {
	return &NormalRandGenerator{}
}

// Normal draws one value from N(mean, stdDev^2) using rnd.
func (g *NormalRandGenerator) Normal(rnd *rand.Rand, mean, stdDev float64) float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stdDev,
		Src:   rnd,
	}
	return dist.Rand()
}

// RandN draws n values from N(mean, stdDev^2) using rnd.
func (g *NormalRandGenerator) RandN(rnd *rand.Rand, n int, mean, stdDev float64) []float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: stdDev,
		Src:   rnd,
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = dist.Rand()
	}
	return result
}

// Name identifies the sampler in logs and config.
func (g *NormalRandGenerator) Name() string {
	return "gonum"
}
