package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const Tolerance = 1e-3

// TestAveragePRows tests the AveragePRows function.
func TestAveragePRows(t *testing.T) {
	A := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	result := AveragePRows(A, 2)
	assert.InDelta(t, 2, result.AtVec(0), Tolerance)
	assert.InDelta(t, 3, result.AtVec(1), Tolerance)

	all := AveragePRows(A, 10)
	assert.InDelta(t, 4, all.AtVec(0), Tolerance)
	assert.InDelta(t, 5, all.AtVec(1), Tolerance)

	none := AveragePRows(A, 0)
	assert.Equal(t, 0.0, none.AtVec(0))
}

func TestMinimizeBounded(t *testing.T) {
	x, fx, err := MinimizeBounded(func(t float64) float64 { return (t - 0.3) * (t - 0.3) }, 0, 1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, Tolerance)
	assert.InDelta(t, 0, fx, Tolerance)
}

func TestMinimizeBoundedClampsToInterval(t *testing.T) {
	x, _, err := MinimizeBounded(func(t float64) float64 { return math.Abs(t + 2) }, 0, 1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, Tolerance)
}

func TestMinimizeBoundedRejectsEmptyInterval(t *testing.T) {
	_, _, err := MinimizeBounded(func(t float64) float64 { return t }, 1, 0, 0.5)
	assert.Error(t, err)
}
