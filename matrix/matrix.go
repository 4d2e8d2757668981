// SPDX-License-Identifier: MIT

// Package matrix defines the Matrix interface used to hand cost tables to the solver.
//
// What & Why:
//
//	A cost table is an n×n grid of float64 values where +Inf marks a missing edge.
//	Keeping the interface small lets callers plug their own storage (e.g. a table
//	backed by a database row set) while the solver only ever reads through At.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
