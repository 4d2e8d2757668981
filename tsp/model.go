package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspbb/matrix"
)

// CostModel is the pairwise cost oracle consumed by the solver.
//
// Contract:
//   - Len() is the number of cities n (indices 0..n-1).
//   - Cost(i, j) is the cost of travelling i→j; asymmetric models are allowed.
//   - A missing edge is reported as math.Inf(1), never as 0 or a negative value.
//   - Cost(i, i) is ignored: the solver always treats the diagonal as unreachable.
type CostModel interface {
	Len() int
	Cost(i, j int) float64
}

// DenseModel is a CostModel over a square [][]float64 (row = source city).
type DenseModel [][]float64

// Len returns the number of rows.
func (d DenseModel) Len() int { return len(d) }

// Cost returns d[i][j].
func (d DenseModel) Cost(i, j int) float64 { return d[i][j] }

// Validate rejects ragged rows.
func (d DenseModel) Validate() error {
	for i, row := range d {
		if len(row) != len(d) {
			return fmt.Errorf("tsp: row %d has %d entries, want %d: %w", i, len(row), len(d), ErrDimensionMismatch)
		}
	}

	return nil
}

type funcModel struct {
	n  int
	fn func(i, j int) float64
}

func (f funcModel) Len() int              { return f.n }
func (f funcModel) Cost(i, j int) float64 { return f.fn(i, j) }

// ModelFunc adapts a plain cost function over n cities to CostModel.
func ModelFunc(n int, fn func(i, j int) float64) CostModel {
	return funcModel{n: n, fn: fn}
}

// FromMatrix copies a square matrix.Matrix into a DenseModel.
//
// Errors: matrix.ErrNilMatrix / matrix.ErrNonSquare (wrapped) for bad shapes,
// and any error surfaced by m.At.
//
// Complexity: O(n²).
func FromMatrix(m matrix.Matrix) (DenseModel, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("tsp: FromMatrix: %w", err)
	}
	var (
		n    = m.Rows()
		out  = make(DenseModel, n)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("tsp: FromMatrix: %w", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
