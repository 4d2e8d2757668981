package tsp

// Internal hooks for black-box tests.

// NewRootForTest exposes the root construction.
func NewRootForTest(cm *CostMatrix, start int) (*State, bool) { return newRoot(cm, start) }

// BranchForTest exposes child construction.
func BranchForTest(parent *State, c int) (*State, bool) { return branch(parent, c) }

// PriorityForTest exposes the scheduling key.
func PriorityForTest(lb float64, remaining int, bias float64) float64 {
	return priority(lb, remaining, bias)
}
