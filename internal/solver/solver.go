package solver

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const penaltyCoefficient = 1000

// MinimizeBounded minimizes a scalar function on [lower, upper] with
// NelderMead. Leaving the interval costs a quadratic penalty.
func MinimizeBounded(f func(t float64) float64, lower, upper, start float64) (float64, float64, error) {
	if lower > upper {
		return 0, 0, eris.Errorf("solver: empty interval [%v, %v]", lower, upper)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			t := x[0]
			penalty := 0.0
			if t < lower {
				penalty = penaltyCoefficient * (lower - t) * (lower - t)
			} else if t > upper {
				penalty = penaltyCoefficient * (t - upper) * (t - upper)
			}
			return f(math.Max(lower, math.Min(upper, t))) + penalty
		},
	}

	settings := &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 1000,
	}

	result, err := optimize.Minimize(problem, []float64{start}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, eris.Wrap(err, "solver: minimize")
	}

	t := math.Max(lower, math.Min(upper, result.X[0]))
	return t, f(t), nil
}

// AveragePRows averages the first n rows of A.
func AveragePRows(A *mat.Dense, n int) *mat.VecDense {
	r, c := A.Dims()
	if n > r {
		n = r
	}

	sum := mat.NewVecDense(c, nil)
	if n <= 0 {
		return sum
	}
	for i := range n {
		row := A.RowView(i)
		sum.AddVec(sum, row)
	}
	sum.ScaleVec(1/float64(n), sum)
	return sum
}
