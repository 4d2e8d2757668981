// Package tsp — initial tours (upper bounds) for the branch-and-bound search.
//
// Greedy walks to the nearest unvisited city; RandomTour samples random
// permutations. Both only ever return complete tours with a finite closing
// edge, so their cost is a valid upper bound for pruning.
package tsp

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Greedy builds a nearest-neighbour tour from start.
//
// At every step the cheapest finite edge to an unvisited city wins, ties going to
// the lowest index. On the last step only cities with a finite edge back to start
// qualify. The result is an upper bound, not necessarily optimal.
//
// Errors: validation sentinels, or ErrNoInitialTour when the walk gets stuck.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(model CostModel, start int) ([]int, float64, error) {
	n, err := validateSize(model)
	if err != nil {
		return nil, 0, err
	}
	if err = validateStart(n, start); err != nil {
		return nil, 0, err
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 1, n)
		cur     = start
		next    int
		best    float64
		c       float64
		i       int
	)
	tour[0] = start
	visited[start] = true

	for len(tour) < n {
		next, best = -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if visited[i] || i == cur {
				continue
			}
			c = model.Cost(cur, i)
			if !(c < best) {
				continue
			}
			if len(tour) == n-1 && math.IsInf(model.Cost(i, start), 1) {
				continue
			}
			next, best = i, c
		}
		if next < 0 {
			return nil, 0, fmt.Errorf("tsp: greedy walk stuck at city %d after %d steps: %w", cur, len(tour), ErrNoInitialTour)
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	cost, err := TourCost(model, tour)
	if err != nil {
		return nil, 0, fmt.Errorf("tsp: greedy tour: %w", err)
	}

	return tour, cost, nil
}

// RandomTour samples up to attempts random permutations (fixed start) and returns
// the first one whose every edge, closing edge included, is finite. The stream is
// deterministic for a given seed (0 ⇒ DefaultSeed).
//
// Errors: validation sentinels, or ErrNoInitialTour after attempts failures.
//
// Complexity: O(attempts·n).
func RandomTour(model CostModel, start int, attempts int, seed int64) ([]int, float64, error) {
	n, err := validateSize(model)
	if err != nil {
		return nil, 0, err
	}
	if err = validateStart(n, start); err != nil {
		return nil, 0, err
	}

	if seed == 0 {
		seed = DefaultSeed
	}
	var (
		rng  = rand.New(rand.NewSource(seed))
		tour = make([]int, n)
		rest = tour[1:]
		k    int
		i    int
	)
	tour[0] = start
	for i = 0; i < n; i++ {
		if i != start {
			rest[k] = i
			k++
		}
	}

	for i = 0; i < attempts; i++ {
		rng.Shuffle(len(rest), func(a, b int) { rest[a], rest[b] = rest[b], rest[a] })
		cost, cerr := TourCost(model, tour)
		if cerr == nil {
			out := make([]int, n)
			copy(out, tour)
			return out, cost, nil
		}
		if !errors.Is(cerr, ErrInfeasible) {
			return nil, 0, cerr
		}
	}

	return nil, 0, fmt.Errorf("tsp: %d random permutations without a closed tour: %w", attempts, ErrNoInitialTour)
}

// initialTour seeds the BSSF: Greedy first, RandomTour as fallback.
func initialTour(model CostModel, opts Options) ([]int, float64, error) {
	tour, cost, err := Greedy(model, opts.StartCity)
	if err == nil || !errors.Is(err, ErrNoInitialTour) || opts.FallbackAttempts == 0 {
		return tour, cost, err
	}

	return RandomTour(model, opts.StartCity, opts.FallbackAttempts, opts.Seed)
}
