// Package tsp — reduced cost matrices (the admissible lower bound).
//
// A CostMatrix is the n×n table owned by exactly one search State. Two
// operations drive the bound:
//
//   - Reduce subtracts every live row minimum, then every live column minimum,
//     and returns their sum. Any completion of the partial tour pays at least that
//     much more, so the sum is an admissible increment to the bound.
//   - FixEdge commits parent→child: it returns the (reduced) entry, closes the
//     parent's row and the child's column, and forbids the 2-cycle child→parent.
//
// Rows and columns that are entirely +Inf are "dead". After k committed edges
// exactly k rows and k columns are legitimately dead; any surplus means some
// city can no longer be left or entered, so the branch has no completion.
package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CostMatrix is a dense row-major n×n table of reduced costs; +Inf is unreachable.
// It is not safe for concurrent mutation; each State owns its own copy.
type CostMatrix struct {
	n    int
	data []float64
}

// Reduction is the outcome of one Reduce call.
type Reduction struct {
	// Delta is the bound increment (sum of row and column minima).
	Delta float64
	// DeadRows counts rows with no finite entry.
	DeadRows int
	// DeadCols counts columns with no finite entry.
	DeadCols int
}

// NewCostMatrix loads model into a fresh CostMatrix with an unreachable diagonal.
//
// Errors:
//   - ErrDimensionMismatch if model is nil, ragged or has fewer than 2 cities.
//   - ErrInvalidWeight on NaN, ErrNegativeWeight on negative off-diagonal costs.
//
// Complexity: O(n²) model calls.
func NewCostMatrix(model CostModel) (*CostMatrix, error) {
	n, err := validateSize(model)
	if err != nil {
		return nil, err
	}
	var (
		m    = &CostMatrix{n: n, data: make([]float64, n*n)}
		inf  = math.Inf(1)
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.data[i*n+j] = inf
				continue
			}
			c = model.Cost(i, j)
			switch {
			case math.IsNaN(c):
				return nil, fmt.Errorf("tsp: cost(%d,%d): %w", i, j, ErrInvalidWeight)
			case c < 0:
				return nil, fmt.Errorf("tsp: cost(%d,%d)=%g: %w", i, j, c, ErrNegativeWeight)
			}
			m.data[i*n+j] = c
		}
	}

	return m, nil
}

// Len returns n.
func (m *CostMatrix) Len() int { return m.n }

// At returns entry (i, j). Indices are trusted (hot path; no bounds errors).
func (m *CostMatrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Clone returns a deep copy; the copy shares no storage with m.
func (m *CostMatrix) Clone() *CostMatrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &CostMatrix{n: m.n, data: cp}
}

// FixEdge commits parent→child and returns the entry that was at (parent, child).
// A +Inf return means the edge does not exist and the caller must prune.
// Afterwards row parent and column child are all +Inf, as is (child, parent).
// Call Reduce next to tighten the bound.
//
// Complexity: O(n).
func (m *CostMatrix) FixEdge(parent, child int) float64 {
	var (
		n    = m.n
		inf  = math.Inf(1)
		edge = m.data[parent*n+child]
		k    int
	)
	for k = 0; k < n; k++ {
		m.data[parent*n+k] = inf
		m.data[k*n+child] = inf
	}
	m.data[child*n+parent] = inf

	return edge
}

// Reduce performs row then column reduction in place.
//
// Every row holding a finite entry has its minimum subtracted from its finite
// entries; then the same per column. The returned Delta is the sum of all minima
// subtracted. Dead rows/columns contribute nothing and are counted instead.
//
// Calling Reduce twice in a row yields Delta == 0 the second time.
//
// Complexity: O(n²) time, no allocation.
func (m *CostMatrix) Reduce() Reduction {
	var (
		n    = m.n
		red  Reduction
		row  []float64
		lo   float64
		v    float64
		i, j int
	)

	for i = 0; i < n; i++ {
		row = m.data[i*n : (i+1)*n]
		lo = floats.Min(row)
		if math.IsInf(lo, 1) {
			red.DeadRows++
			continue
		}
		if lo == 0 {
			continue
		}
		red.Delta += lo
		for j = 0; j < n; j++ {
			if !math.IsInf(row[j], 1) {
				row[j] -= lo
			}
		}
	}

	for j = 0; j < n; j++ {
		lo = math.Inf(1)
		for i = 0; i < n; i++ {
			if v = m.data[i*n+j]; v < lo {
				lo = v
			}
		}
		if math.IsInf(lo, 1) {
			red.DeadCols++
			continue
		}
		if lo == 0 {
			continue
		}
		red.Delta += lo
		for i = 0; i < n; i++ {
			if !math.IsInf(m.data[i*n+j], 1) {
				m.data[i*n+j] -= lo
			}
		}
	}

	return red
}
