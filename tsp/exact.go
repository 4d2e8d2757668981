package tsp

import (
	"fmt"
	"math"
)

// MaxExactCities is the largest instance SolveExact accepts.
const MaxExactCities = 16

// SolveExact solves the instance exactly with the Held–Karp dynamic program.
// It is the reference oracle for small instances; Solve is the production path.
//
// The returned tour is open (len n, beginning at start, closing edge implied).
// Missing edges (+Inf) are skipped; ErrInfeasible is returned when no
// Hamiltonian cycle exists and ErrTooLarge when n > MaxExactCities.
//
// dp[mask*n+j] = cheapest path that leaves start, visits exactly the cities in
// mask (start included), and ends at j.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func SolveExact(model CostModel, start int) ([]int, float64, error) {
	n, err := validateSize(model)
	if err != nil {
		return nil, 0, err
	}
	if err = validateStart(n, start); err != nil {
		return nil, 0, err
	}
	if n > MaxExactCities {
		return nil, 0, fmt.Errorf("tsp: SolveExact with %d cities (max %d): %w", n, MaxExactCities, ErrTooLarge)
	}

	var (
		full      = 1<<n - 1
		startMask = 1 << start
		dp        = make([]float64, (full+1)*n)
		parent    = make([]int, (full+1)*n)
		inf       = math.Inf(1)
	)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[startMask*n+start] = 0

	var (
		mask, prev, j, k int
		c, cand          float64
	)
	for mask = 0; mask <= full; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				c = model.Cost(k, j)
				if math.IsInf(c, 1) || math.IsNaN(c) {
					continue // no edge k→j
				}
				cand = dp[prev*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// Close the cycle back to start.
	best, last := inf, -1
	for j = 0; j < n; j++ {
		if j == start {
			continue
		}
		c = model.Cost(j, start)
		if math.IsInf(c, 1) || math.IsNaN(c) {
			continue
		}
		if cand = dp[full*n+j] + c; cand < best {
			best, last = cand, j
		}
	}
	if last < 0 {
		return nil, 0, ErrInfeasible
	}

	tour := make([]int, n)
	tour[0] = start
	mask, j = full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}

	return tour, round1e9(best), nil
}
