// Package tsp provides a time-bounded branch-and-bound solver for the
// Travelling Salesman Problem over a dense cost matrix.
//
// It includes:
//
//   - Solve: best-first Branch-and-Bound over reduced cost matrices.
//
//   - Anytime: a valid tour is always held once one is known.
//
//   - Exact when the search completes (Status.Optimal()).
//
//   - Symmetric and asymmetric instances; missing edges via math.Inf(1).
//
//   - Greedy / RandomTour: initial upper bounds.
//
//   - SolveExact: Held–Karp oracle for n ≤ MaxExactCities.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
// Conventions:
//   - Cities are indexed 0..n-1; tours are open slices of length n starting at
//     the start city, the closing edge being implied.
//   - Costs must be non-negative; NaN is rejected.
//   - If no tour exists, Solve returns ErrInfeasible.
//
// Use this package when a provably optimal tour is wanted on small instances
// (n≲25) and a good tour within a fixed wall-clock budget otherwise.
package tsp
