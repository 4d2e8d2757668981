package tsp

import "math"

// State is one node of the search tree: a partial tour, its reduced matrix and bounds.
//
// Invariants:
//   - Path holds distinct city indices, Path[0] is the start city.
//   - LowerBound never exceeds the cost of any completion of Path.
//   - The matrix is owned exclusively by this State.
//
// A State is immutable once built, except Priority which is set once before the
// State is scheduled.
type State struct {
	Path       []int
	LowerBound float64
	Priority   float64

	matrix *CostMatrix
}

// Last returns the most recently visited city.
func (s *State) Last() int { return s.Path[len(s.Path)-1] }

// Depth returns len(Path).
func (s *State) Depth() int { return len(s.Path) }

// priority computes the scheduling key of a State with the given bound and
// number of cities still to visit. Complete paths use the bare bound.
func priority(lowerBound float64, remaining int, depthBias float64) float64 {
	if remaining < 1 {
		return lowerBound
	}

	return lowerBound + float64(remaining)*depthBias
}

// newRoot reduces cm (taking ownership) and wraps it in the root State at start.
// ok is false when some city cannot be left or entered at all.
func newRoot(cm *CostMatrix, start int) (*State, bool) {
	red := cm.Reduce()
	if red.DeadRows > 0 || red.DeadCols > 0 {
		return nil, false
	}

	return &State{
		Path:       []int{start},
		LowerBound: red.Delta,
		matrix:     cm,
	}, true
}

// branch builds the child of parent that travels Last()→c.
//
// The parent's matrix is deep-copied, the edge fixed, the copy reduced, and the
// child bound is parent.LowerBound + edge + delta. ok is false when the edge is
// missing or the reduction exposes a city that can no longer be left or entered.
// Priority is left for the caller to set.
//
// Complexity: O(n²) time and space (matrix copy + reduction).
func branch(parent *State, c int) (*State, bool) {
	var (
		m    = parent.matrix.Clone()
		edge = m.FixEdge(parent.Last(), c)
	)
	if math.IsInf(edge, 1) {
		return nil, false
	}
	red := m.Reduce()
	// Each committed edge legitimately closes one row and one column.
	closed := len(parent.Path)
	if red.DeadRows > closed || red.DeadCols > closed {
		return nil, false
	}

	path := make([]int, len(parent.Path)+1)
	copy(path, parent.Path)
	path[len(parent.Path)] = c

	return &State{
		Path:       path,
		LowerBound: parent.LowerBound + edge + red.Delta,
		matrix:     m,
	}, true
}
