package geo

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

const (
	// Scale multiplies every unit-square cost.
	Scale = 1000.0

	// MaxElevation bounds generated elevations (unit-square units).
	MaxElevation = 0.25

	// UphillFactor weights a climb; DownhillFactor weights a descent discount.
	UphillFactor   = 1.0
	DownhillFactor = 0.5

	// RemovedFraction of size is the number of directed edges Hard mode removes.
	RemovedFraction = 0.20
)

// City is one stop of a tour.
type City struct {
	ID        int       // index in the model, 0..n-1
	Point     orb.Point // position in the unit square
	Elevation float64   // 0 in Easy mode
}

// X returns the horizontal coordinate.
func (c City) X() float64 { return c.Point.X() }

// Y returns the vertical coordinate.
func (c City) Y() float64 { return c.Point.Y() }

// Mode selects the cost function of a Model.
type Mode int

const (
	// Easy uses planar distance only.
	Easy Mode = iota
	// Normal adds the elevation penalty.
	Normal
	// Hard is Normal with removed edges.
	Hard
)

var modeNames = [...]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m >= Easy && m <= Hard }

// ParseMode maps a case-insensitive name to a Mode. An empty name means Easy.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Easy, nil
	}
	for i, s := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}

	return Easy, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Edge is a directed pair of city indices.
type Edge struct{ From, To int }
