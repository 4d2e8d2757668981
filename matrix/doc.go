// SPDX-License-Identifier: MIT

// Package matrix offers the dense cost-table storage consumed by the tsp solver.
//
// The package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set).
//   - Dense, a row-major implementation backed by one flat []float64.
//   - NewFromRows, to build a Dense from a [][]float64 literal (problem files load through it).
//   - Validators (ValidateNotNil, ValidateSquare) shared with the solver's input checks.
//
// Numeric policy: +Inf is a first-class value meaning "no edge"; NaN is rejected
// by Set and by NewFromRows.
package matrix
