// Package tsp_test provides lightweight helpers shared across *_test.go files:
// deterministic instance generators and a brute-force reference solver.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/tspbb/tsp"
)

const (
	// epsTiny is the tolerance used to compare costs against references.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for generators.
	seedDet = int64(42)

	// startV is the canonical start city.
	startV = 0
)

var inf = math.Inf(1)

// sampleMatrix is the 4-city asymmetric instance used throughout the docs.
// Its optimal tour is 0 → 1 → 3 → 2 → 0 with cost 35.
func sampleMatrix() tsp.DenseModel {
	return tsp.DenseModel{
		{inf, 10, 15, 20},
		{5, inf, 9, 10},
		{6, 13, inf, 12},
		{8, 8, 9, inf},
	}
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// euclid builds a symmetric metric from 2D points (diagonal +Inf).
func euclid(pts [][2]float64) tsp.DenseModel {
	n := len(pts)
	a := make(tsp.DenseModel, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	var dx, dy float64
	for i = 0; i < n; i++ {
		a[i][i] = inf
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			a[i][j] = math.Round(math.Hypot(dx, dy))
			a[j][i] = a[i][j]
		}
	}

	return a
}

// randomPoints draws n integer-ish points in [0, 100)² from seed.
func randomPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{float64(rng.Intn(100)), float64(rng.Intn(100))}
	}

	return pts
}

// randomAsym draws an asymmetric matrix with integer costs in [1, 50].
// Each off-diagonal edge is removed (+Inf) with probability missing.
func randomAsym(n int, missing float64, seed int64) tsp.DenseModel {
	rng := rand.New(rand.NewSource(seed))
	a := make(tsp.DenseModel, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				a[i][j] = inf
			case rng.Float64() < missing:
				a[i][j] = inf
			default:
				a[i][j] = float64(1 + rng.Intn(50))
			}
		}
	}

	return a
}

// pathCost sums the edges along an open path (no closing edge).
func pathCost(m tsp.CostModel, path []int) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += m.Cost(path[i-1], path[i])
	}

	return total
}

// bestCompletion returns the cheapest closed tour extending prefix, or +Inf when
// none exists. It enumerates every ordering of the unvisited cities.
func bestCompletion(m tsp.CostModel, prefix []int) float64 {
	var (
		n    = m.Len()
		seen = make([]bool, n)
		rest []int
	)
	for _, c := range prefix {
		seen[c] = true
	}
	for c := 0; c < n; c++ {
		if !seen[c] {
			rest = append(rest, c)
		}
	}

	base := pathCost(m, prefix)
	last := prefix[len(prefix)-1]
	if len(rest) == 0 {
		return base + m.Cost(last, prefix[0])
	}

	best := inf
	var (
		cur, total float64
		prev       int
	)
	for _, perm := range combin.Permutations(len(rest), len(rest)) {
		total, prev = base, last
		for _, idx := range perm {
			cur = m.Cost(prev, rest[idx])
			total += cur
			prev = rest[idx]
		}
		total += m.Cost(prev, prefix[0])
		if total < best {
			best = total
		}
	}

	return best
}

// bruteForce returns the optimal closed tour cost from start (+Inf if none).
func bruteForce(m tsp.CostModel, start int) float64 {
	return bestCompletion(m, []int{start})
}
