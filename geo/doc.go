// Package geo generates and models TSP instances made of cities on a plane.
//
// A City is a point in the unit square plus an elevation. The cost of
// travelling between two cities depends on the Mode:
//
//   - Easy:   planar distance, symmetric.
//   - Normal: planar distance adjusted by elevation change (uphill costs
//     more, downhill less), asymmetric.
//   - Hard:   Normal with a fraction of directed edges removed (+Inf).
//
// All costs are scaled by Scale. A *Model is immutable once built and satisfies
// tsp.CostModel, so it can be passed straight to tsp.Solve.
package geo
