package tsp

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// Sentinel errors. Every message is prefixed with "tsp: "; call sites add
// context with fmt.Errorf("...: %w", ErrX) and callers match with errors.Is.
var (
	// ErrInfeasible is returned when the cost graph admits no Hamiltonian cycle.
	ErrInfeasible = errors.New("tsp: no Hamiltonian cycle exists")

	// ErrTimeLimit is returned only when the time budget expires before any
	// complete tour is known. A budget that expires after a tour was found is
	// a normal early exit reported through Result.Status, not an error.
	ErrTimeLimit = errors.New("tsp: time limit reached before any tour was found")

	// ErrNoInitialTour is returned by the initial-tour builders when neither the
	// greedy walk nor the random fallback produced a feasible tour.
	ErrNoInitialTour = errors.New("tsp: no initial tour found")

	// ErrDimensionMismatch signals a malformed model or tour (too few cities,
	// wrong length, repeated or out-of-range city indices).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight signals a negative off-diagonal cost.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrInvalidWeight signals a NaN off-diagonal cost.
	ErrInvalidWeight = errors.New("tsp: invalid (NaN) edge weight")

	// ErrStartOutOfRange signals a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrInvalidOptions signals an inconsistent Options value.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrTooLarge is returned by the exact oracles for instances beyond their size limit.
	ErrTooLarge = errors.New("tsp: instance too large for exact oracle")
)

// Defaults used by DefaultOptions.
const (
	// DefaultDepthBias is added per remaining city to a State's priority.
	DefaultDepthBias = 31.0

	// DefaultEps is the improvement/pruning tolerance.
	DefaultEps = 1e-9

	// DefaultTimeLimit is the wall-clock budget of one search.
	DefaultTimeLimit = 60 * time.Second

	// DefaultFallbackAttempts bounds the random-permutation fallback of the initial tour.
	DefaultFallbackAttempts = 1000

	// DefaultSeed seeds the random fallback.
	DefaultSeed int64 = 1
)

// Options configures one Solve call.
//
// The zero value is usable: no time limit, DepthBias 0 (pure best-bound order),
// Eps 0, start city 0, no random fallback, silent logging.
type Options struct {
	// TimeLimit is the wall-clock budget. 0 disables the limit.
	TimeLimit time.Duration

	// StartCity is the fixed first city of every tour.
	StartCity int

	// DepthBias trades best-bound order for faster descent: a State's priority is
	// LowerBound + remaining*DepthBias. Must be >= 0. Pruning never reads priority.
	DepthBias float64

	// Eps is the tolerance below which a cost difference does not count as an
	// improvement. Must be >= 0.
	Eps float64

	// Seed drives the random-permutation fallback (0 ⇒ DefaultSeed).
	Seed int64

	// FallbackAttempts bounds the random fallback used when the greedy walk gets stuck.
	// 0 disables the fallback.
	FallbackAttempts int

	// Logger receives debug-level progress. nil means silent.
	Logger *log.Logger

	// OnImprove, when non-nil, is called for the initial tour and for every
	// BSSF improvement, in order. The Tour slice is a private copy.
	OnImprove func(Improvement)
}

// DefaultOptions returns Options with the package defaults:
//   - 60s time limit, start city 0,
//   - DepthBias 31, Eps 1e-9,
//   - random fallback with 1000 attempts seeded by DefaultSeed.
func DefaultOptions() Options {
	return Options{
		TimeLimit:        DefaultTimeLimit,
		StartCity:        0,
		DepthBias:        DefaultDepthBias,
		Eps:              DefaultEps,
		Seed:             DefaultSeed,
		FallbackAttempts: DefaultFallbackAttempts,
	}
}

// Status tells why a search terminated.
type Status int

const (
	// StatusExhausted: the open list emptied; the BSSF is optimal.
	StatusExhausted Status = iota
	// StatusProvedOptimal: no open State can beat the BSSF; the BSSF is optimal.
	StatusProvedOptimal
	// StatusTimeLimit: the time budget expired; the BSSF is the best tour found so far.
	StatusTimeLimit
	// StatusCanceled: the context was canceled; the BSSF is the best tour found so far.
	StatusCanceled
)

var statusNames = [...]string{
	StatusExhausted:     "exhausted",
	StatusProvedOptimal: "proved-optimal",
	StatusTimeLimit:     "time-limit",
	StatusCanceled:      "canceled",
}

// String returns the lower-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Optimal reports whether the status certifies the returned tour as optimal.
func (s Status) Optimal() bool {
	return s == StatusExhausted || s == StatusProvedOptimal
}

// MarshalText encodes the status name (JSON/YAML friendly).
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a status name produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}

	return errors.New("tsp: unknown status " + string(b))
}

// Stats holds diagnostic counters of one search.
type Stats struct {
	// Created counts States built (root + every generated child).
	Created int `json:"created"`
	// Pruned counts States discarded by bound, infeasibility or lazy pruning.
	Pruned int `json:"pruned"`
	// Expanded counts States popped and branched.
	Expanded int `json:"expanded"`
	// MaxQueue is the peak size of the open list.
	MaxQueue int `json:"max_queue"`
	// Remaining is the open-list size at termination (never expanded).
	Remaining int `json:"remaining"`
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the visiting order: n distinct city indices, Tour[0] == start.
	// The closing edge Tour[n-1]→Tour[0] is implied.
	Tour []int `json:"tour"`

	// Cost is the total cost of the closed tour.
	Cost float64 `json:"cost"`

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration `json:"-"`

	// ElapsedSeconds mirrors Elapsed for serialization.
	ElapsedSeconds float64 `json:"elapsed_seconds"`

	// SolutionsFound counts BSSF improvements made by the search (the initial tour excluded).
	SolutionsFound int `json:"solutions_found"`

	// InitialCost is the cost of the seeding tour; 0 when none was found.
	InitialCost float64 `json:"initial_cost,omitempty"`

	// Status tells why the search stopped.
	Status Status `json:"status"`

	// Stats holds State counters.
	Stats Stats `json:"states"`
}

// Improvement describes one BSSF update delivered to Options.OnImprove.
type Improvement struct {
	// Tour is a private copy of the new best tour.
	Tour []int
	// Cost is the new best cost.
	Cost float64
	// Elapsed is the time since the search started.
	Elapsed time.Duration
	// Solution is 0 for the initial tour and k for the k-th search improvement.
	Solution int
}
