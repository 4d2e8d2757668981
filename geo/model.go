package geo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats"
)

// Model is an immutable set of cities with precomputed travel costs.
type Model struct {
	cities  []City
	mode    Mode
	removed []Edge
	costs   []float64 // row-major n×n, diagonal +Inf
}

// NewModel builds a Model over cities. Cities are re-numbered 0..n-1 in order.
// removed lists directed edges to drop; it is only meaningful in Hard mode but
// is honored in every mode. Duplicates are ignored.
//
// Errors: ErrTooFewCities, ErrUnknownMode, ErrInvalidCity, ErrEdgeOutOfRange.
//
// Complexity: O(n²) time and memory.
func NewModel(cities []City, mode Mode, removed []Edge) (*Model, error) {
	n := len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	m := &Model{
		cities: make([]City, n),
		mode:   mode,
		costs:  make([]float64, n*n),
	}
	for i, c := range cities {
		if !finite(c.Point.X()) || !finite(c.Point.Y()) || !finite(c.Elevation) {
			return nil, fmt.Errorf("%w: city %d", ErrInvalidCity, i)
		}
		c.ID = i
		if mode == Easy {
			c.Elevation = 0
		}
		m.cities[i] = c
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.costs[i*n+j] = math.Inf(1)
				continue
			}
			m.costs[i*n+j] = travelCost(m.cities[i], m.cities[j], mode)
		}
	}

	for _, e := range removed {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
			return nil, fmt.Errorf("%w: %d→%d with %d cities", ErrEdgeOutOfRange, e.From, e.To, n)
		}
		if math.IsInf(m.costs[e.From*n+e.To], 1) {
			continue
		}
		m.costs[e.From*n+e.To] = math.Inf(1)
		m.removed = append(m.removed, e)
	}

	return m, nil
}

// Generate creates a deterministic random instance of size cities.
//
// Cities are drawn uniformly from the unit square; Normal and Hard draw an
// elevation in [0, MaxElevation). Hard then removes int(size·RemovedFraction)
// distinct directed edges.
func Generate(size int, mode Mode, seed int64) (*Model, error) {
	if size < 2 {
		return nil, ErrTooFewCities
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	rng := rand.New(rand.NewSource(seed))
	cities := make([]City, size)
	for i := range cities {
		cities[i] = City{ID: i, Point: orb.Point{rng.Float64(), rng.Float64()}}
		if mode != Easy {
			cities[i].Elevation = rng.Float64() * MaxElevation
		}
	}

	var removed []Edge
	if mode == Hard {
		removed = pickRemoved(size, int(float64(size)*RemovedFraction), rng)
	}

	return NewModel(cities, mode, removed)
}

// pickRemoved draws count distinct off-diagonal directed edges.
func pickRemoved(n, count int, rng *rand.Rand) []Edge {
	if limit := n * (n - 1); count > limit {
		count = limit
	}
	seen := make(map[Edge]struct{}, count)
	out := make([]Edge, 0, count)
	for len(out) < count {
		e := Edge{From: rng.Intn(n), To: rng.Intn(n)}
		if e.From == e.To {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// travelCost is the scaled cost of a→b under mode.
func travelCost(a, b City, mode Mode) float64 {
	d := planar.Distance(a.Point, b.Point)
	if mode == Easy {
		return d * Scale
	}
	rise := b.Elevation - a.Elevation
	if rise > 0 {
		d += UphillFactor * rise
	} else {
		d += DownhillFactor * rise
	}

	return math.Max(d, 0) * Scale
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Len returns the number of cities.
func (m *Model) Len() int { return len(m.cities) }

// Cost returns the travel cost i→j; +Inf for i == j and removed edges.
func (m *Model) Cost(i, j int) float64 { return m.costs[i*len(m.cities)+j] }

// Mode returns the cost mode.
func (m *Model) Mode() Mode { return m.mode }

// Cities returns a copy of the cities.
func (m *Model) Cities() []City {
	out := make([]City, len(m.cities))
	copy(out, m.cities)

	return out
}

// Removed returns a copy of the removed directed edges in insertion order.
func (m *Model) Removed() []Edge {
	out := make([]Edge, len(m.removed))
	copy(out, m.removed)

	return out
}

// Summary describes a Model for reports.
type Summary struct {
	Cities       int     `json:"cities"`
	Mode         string  `json:"mode"`
	Removed      int     `json:"removed_edges"`
	MinElevation float64 `json:"min_elevation"`
	MaxElevation float64 `json:"max_elevation"`
	MeanCost     float64 `json:"mean_cost"`
}

// Summary computes elevation range and the mean finite edge cost.
func (m *Model) Summary() Summary {
	var (
		n    = len(m.cities)
		elev = make([]float64, n)
		live = make([]float64, 0, n*(n-1))
	)
	for i, c := range m.cities {
		elev[i] = c.Elevation
	}
	for _, c := range m.costs {
		if !math.IsInf(c, 1) {
			live = append(live, c)
		}
	}
	s := Summary{
		Cities:       n,
		Mode:         m.mode.String(),
		Removed:      len(m.removed),
		MinElevation: floats.Min(elev),
		MaxElevation: floats.Max(elev),
	}
	if len(live) > 0 {
		s.MeanCost = floats.Sum(live) / float64(len(live))
	}

	return s
}
