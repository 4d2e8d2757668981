// Package tsp — tour utilities shared by the search, the oracles and the CLI.
//
// A tour is an open visiting order: n distinct city indices with tour[0] == start.
// The closing edge tour[n-1]→tour[0] is implied and always counted by TourCost.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 removes floating-point noise from reported costs.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// ValidateTour checks that tour is a permutation of {0..n-1} starting at start.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start {
		return fmt.Errorf("tsp: tour starts at %d, want %d: %w", tour[0], start, ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("tsp: city %d repeated or out of range: %w", v, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums model costs along tour, including the closing edge.
// Self-loops are never legal, so a repeated consecutive city counts as unreachable.
//
// Errors:
//   - ErrDimensionMismatch for an empty tour or indices outside the model.
//   - ErrInfeasible (wrapped with the offending edge) when an edge is +Inf.
//   - ErrInvalidWeight / ErrNegativeWeight for NaN / negative costs.
//
// Complexity: O(n).
func TourCost(model CostModel, tour []int) (float64, error) {
	if model == nil || len(tour) == 0 {
		return 0, ErrDimensionMismatch
	}
	var (
		n     = model.Len()
		total float64
		u, v  int
		c     float64
		i     int
	)
	for i = 0; i < len(tour); i++ {
		u = tour[i]
		v = tour[(i+1)%len(tour)]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if u == v {
			return 0, fmt.Errorf("tsp: self-loop at %d: %w", u, ErrInfeasible)
		}
		c = model.Cost(u, v)
		switch {
		case math.IsNaN(c):
			return 0, fmt.Errorf("tsp: cost(%d,%d): %w", u, v, ErrInvalidWeight)
		case c < 0:
			return 0, fmt.Errorf("tsp: cost(%d,%d): %w", u, v, ErrNegativeWeight)
		case math.IsInf(c, 1):
			return 0, fmt.Errorf("tsp: edge %d→%d missing: %w", u, v, ErrInfeasible)
		}
		total += c
	}

	return round1e9(total), nil
}

// Closed returns a copy of tour with the start city appended (len n+1).
func Closed(tour []int) []int {
	if len(tour) == 0 {
		return nil
	}
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]

	return out
}

// RotateToStart returns a copy of the cyclic order tour that begins at start.
// Errors: ErrStartOutOfRange if start does not occur in tour.
func RotateToStart(tour []int, start int) ([]int, error) {
	var (
		n     = len(tour)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, ErrStartOutOfRange
	}
	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// EqualTours reports whether a and b describe the same directed cycle
// (equal up to rotation, same direction).
func EqualTours(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rb, err := RotateToStart(b, a[0])
	if err != nil {
		return false
	}
	for i := range a {
		if a[i] != rb[i] {
			return false
		}
	}

	return true
}

// FormatTour renders a tour as "0 → 3 → 1 → 0" (closing city included).
func FormatTour(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var sb strings.Builder
	for i, v := range Closed(tour) {
		if i > 0 {
			sb.WriteString(" → ")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
