package geo

import "errors"

var (
	// ErrTooFewCities indicates a model with fewer than two cities.
	ErrTooFewCities = errors.New("geo: at least two cities are required")
	// ErrUnknownMode indicates an unrecognized Mode value or name.
	ErrUnknownMode = errors.New("geo: unknown mode")
	// ErrEdgeOutOfRange indicates a removed edge that does not name two distinct cities.
	ErrEdgeOutOfRange = errors.New("geo: removed edge out of range")
	// ErrInvalidCity indicates a NaN/Inf coordinate or elevation.
	ErrInvalidCity = errors.New("geo: city coordinates must be finite")
)
