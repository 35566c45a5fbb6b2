package convolve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type ConvolveKernel struct {
	kernel *mat.VecDense
}

// NewBoxKernel returns a kernel whose valid convolution is a trailing rolling
// mean over size samples.
func NewBoxKernel(size int) *ConvolveKernel {
	if size < 1 {
		size = 1
	}
	weights := make([]float64, size)
	for i := range weights {
		weights[i] = 1 / float64(size)
	}
	return &ConvolveKernel{mat.NewVecDense(size, weights)}
}

// NewGaussianKernel returns a normalised Gaussian kernel of the given width.
func NewGaussianKernel(sigma float64, size int) *ConvolveKernel {
	if size < 1 {
		size = 1
	}
	weights := make([]float64, size)

	center := float64(size-1) / 2.0
	for i := range weights {
		t := float64(i) - center
		weights[i] = math.Exp(-(t * t) / (sigma * sigma))
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return &ConvolveKernel{mat.NewVecDense(size, weights)}
}

// Len is the kernel width.
func (ck *ConvolveKernel) Len() int {
	return ck.kernel.Len()
}

// Convolve slides the kernel over input without padding. The output has
// len(input)-Len()+1 samples, or none when the input is shorter than the kernel.
func (ck *ConvolveKernel) Convolve(input []float64) []float64 {
	k := ck.kernel.Len()
	if len(input) < k {
		return []float64{}
	}

	output := make([]float64, len(input)-k+1)
	for i := range output {
		window := mat.NewVecDense(k, input[i:i+k])
		output[i] = mat.Dot(window, ck.kernel)
	}
	return output
}
