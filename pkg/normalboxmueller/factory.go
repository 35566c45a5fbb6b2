package normalboxmueller

import (
	"math/rand/v2"

	"github.com/rotisserie/eris"

	"montecarlo-go/pkg/randomnormal"
)

const (
	SamplerGonum     = "gonum"
	SamplerBoxMuller = "boxmuller"
)

// NormalSampler draws one value from N(mean, stdDev^2) on the given stream.
type NormalSampler interface {
	Normal(rnd *rand.Rand, mean, stdDev float64) float64
	Name() string
}

// NewDistribution returns the sampler registered under kind. An empty kind
// selects the gonum sampler.
func NewDistribution(kind string) (NormalSampler, error) {
	switch kind {
	case "", SamplerGonum:
		return randomnormal.NewNormalRandGenerator(), nil
	case SamplerBoxMuller:
		return BoxMuller{}, nil
	default:
		return nil, eris.Errorf("unknown sampler %q", kind)
	}
}

// NewRand creates a deterministic random stream for seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
