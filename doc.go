// Package tspbb is a time-bounded branch-and-bound solver for the Travelling
// Salesman Problem.
//
// The module is organized as:
//
//	tsp/      — the solver: reduced cost matrices, best-first search, greedy and
//	            random initial tours, Held–Karp oracle, tour utilities
//	pqueue/   — generic binary min-heap backing the open list
//	matrix/   — dense matrix type and shape validators
//	geo/      — city instances on a plane (easy / normal / hard cost modes)
//	problem/  — YAML and JSON problem documents
//	config/   — TOML configuration
//	internal/ — the tspbb CLI and HTTP server
//	cmd/      — the tspbb binary
//
// Quick start:
//
//	m := tsp.DenseModel{
//		{math.Inf(1), 10, 15, 20},
//		{5, math.Inf(1), 9, 10},
//		{6, 13, math.Inf(1), 12},
//		{8, 8, 9, math.Inf(1)},
//	}
//	res, err := tsp.Solve(ctx, m, tsp.DefaultOptions())
//	// res.Tour == [0 1 3 2], res.Cost == 35
package tspbb
