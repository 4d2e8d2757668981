package problem

import "errors"

var (
	// ErrEmpty indicates a document with neither cities nor a matrix.
	ErrEmpty = errors.New("problem: document has neither cities nor matrix")
	// ErrAmbiguous indicates a document with both cities and a matrix.
	ErrAmbiguous = errors.New("problem: document has both cities and matrix")
	// ErrRagged indicates a non-square matrix.
	ErrRagged = errors.New("problem: matrix must be square")
	// ErrBadWeight indicates a weight that is neither a number nor a missing-edge marker.
	ErrBadWeight = errors.New("problem: invalid weight")
	// ErrBadEdge indicates a removed edge outside the instance.
	ErrBadEdge = errors.New("problem: removed edge out of range")
)
