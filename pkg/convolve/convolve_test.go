package convolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestBoxKernelRollingMean(t *testing.T) {
	ck := NewBoxKernel(3)
	got := ck.Convolve([]float64{1, 2, 3, 4, 5})
	assert.InDeltaSlice(t, []float64{2, 3, 4}, got, 1e-12)
}

func TestBoxKernelShortInput(t *testing.T) {
	ck := NewBoxKernel(7)
	assert.Empty(t, ck.Convolve([]float64{1, 2, 3}))
	assert.Len(t, ck.Convolve(make([]float64, 7)), 1)
}

func TestBoxKernelOfOneIsIdentity(t *testing.T) {
	in := []float64{5, 1, 9}
	assert.InDeltaSlice(t, in, NewBoxKernel(1).Convolve(in), 1e-12)
	assert.Equal(t, 1, NewBoxKernel(0).Len())
}

func TestGaussianKernelIsNormalised(t *testing.T) {
	ck := NewGaussianKernel(2, 7)
	assert.Equal(t, 7, ck.Len())
	assert.InDelta(t, 1, floats.Sum(ck.kernel.RawVector().Data), 1e-12)

	// constant input stays constant
	got := ck.Convolve([]float64{3, 3, 3, 3, 3, 3, 3, 3})
	assert.InDeltaSlice(t, []float64{3, 3}, got, 1e-12)
}
