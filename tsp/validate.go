// Package tsp - validation helpers.
//
// Small, side-effect free checks shared by Solve, Greedy and the exact oracle.
// Model costs themselves are validated while loading the root CostMatrix.
package tsp

import (
	"fmt"
	"math"
)

// validateOptions checks internal consistency of Options.
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.TimeLimit < 0:
		return fmt.Errorf("%w: negative time limit %s", ErrInvalidOptions, opts.TimeLimit)
	case opts.DepthBias < 0 || math.IsNaN(opts.DepthBias) || math.IsInf(opts.DepthBias, 0):
		return fmt.Errorf("%w: depth bias must be finite and >= 0, got %g", ErrInvalidOptions, opts.DepthBias)
	case opts.Eps < 0 || math.IsNaN(opts.Eps):
		return fmt.Errorf("%w: eps must be >= 0, got %g", ErrInvalidOptions, opts.Eps)
	case opts.FallbackAttempts < 0:
		return fmt.Errorf("%w: negative fallback attempts %d", ErrInvalidOptions, opts.FallbackAttempts)
	}

	return nil
}

// validateStart checks 0 <= start < n.
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("tsp: start %d with %d cities: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// validator is implemented by models that can check their own shape.
type validator interface{ Validate() error }

// validateSize rejects nil models and models with fewer than two cities.
func validateSize(model CostModel) (int, error) {
	if model == nil {
		return 0, fmt.Errorf("tsp: nil model: %w", ErrDimensionMismatch)
	}
	n := model.Len()
	if n < 2 {
		return 0, fmt.Errorf("tsp: need at least 2 cities, got %d: %w", n, ErrDimensionMismatch)
	}
	if v, ok := model.(validator); ok {
		if err := v.Validate(); err != nil {
			return 0, err
		}
	}

	return n, nil
}
