// Package tsp — Branch-and-Bound (best-first search over reduced cost matrices).
//
// Solve enumerates partial tours with a best-first Branch-and-Bound (BnB) search,
// admissible reduced-matrix lower bounds, and a wall-clock time budget. Both
// symmetric TSP and asymmetric ATSP are supported.
//
// Outline:
//  1. The model is loaded into a CostMatrix (diagonal = +Inf) and reduced; the
//     root State is Path=[start] with the reduction as its bound.
//  2. An initial incumbent (BSSF) comes from Greedy, falling back to RandomTour.
//  3. States are popped from a min-heap keyed by priority
//     (LowerBound + remaining·DepthBias). A popped State whose bound no longer
//     beats the BSSF is discarded (lazy pruning); otherwise one child per
//     unvisited city is built, reduced, and pruned or scheduled.
//  4. A child that completes the tour replaces the BSSF when cheaper.
//  5. The loop stops when the heap empties, the budget or context expires, or the
//     certified bound floor of the heap reaches the BSSF.
//
// Bound floor: every queued State satisfies Priority ≥ head.Priority and
// remaining ≤ n−1, hence LowerBound ≥ head.Priority − (n−1)·DepthBias. Once that
// floor meets the BSSF no queued State can improve it, so the BSSF is optimal.
//
// Complexity:
//   - Worst case exponential in n. Practical speed comes from pruning.
//   - Per child: O(n²) matrix copy + reduction.
//   - Memory: O(n²) per live State.
package tsp

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tspbb/pqueue"
)

// searcher holds all search data and policies of one Solve call.
type searcher struct {
	// Configuration / policy
	n     int
	start int
	bias  float64
	eps   float64
	model CostModel

	// Time budget
	ctx         context.Context
	began       time.Time
	useDeadline bool
	deadline    time.Time
	stopped     Status // valid once interrupted() returned true

	// Open list keyed by State.Priority
	open *pqueue.Heap[*State, float64]

	// Incumbent (BSSF)
	bestTour []int
	bestCost float64
	found    int

	stats     Stats
	visited   []bool
	logger    *log.Logger
	onImprove func(Improvement)
}

// Solve runs the time-bounded branch-and-bound search over model.
//
// On success the Result always carries a complete tour with a finite closing edge.
// Result.Status tells whether the tour is proved optimal (StatusExhausted,
// StatusProvedOptimal) or the best found before the budget or ctx ran out
// (StatusTimeLimit, StatusCanceled). Running out of time is not an error.
//
// Errors:
//   - ErrInvalidOptions, ErrStartOutOfRange, ErrDimensionMismatch,
//     ErrInvalidWeight, ErrNegativeWeight for malformed input.
//   - ErrInfeasible when no Hamiltonian cycle exists.
//   - ErrTimeLimit (or the ctx error) when the search stopped before any tour was known.
func Solve(ctx context.Context, model CostModel, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := validateSize(model)
	if err != nil {
		return Result{}, err
	}
	if err = validateStart(n, opts.StartCity); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := newSearcher(ctx, model, n, opts)

	cm, err := NewCostMatrix(model)
	if err != nil {
		return Result{}, err
	}
	root, ok := newRoot(cm, s.start)
	s.stats.Created++
	if !ok {
		s.logger.Debug("root reduction found an isolated city", "cities", n)
		return Result{}, fmt.Errorf("tsp: some city cannot be left or entered: %w", ErrInfeasible)
	}
	root.Priority = priority(root.LowerBound, n-1, s.bias)

	var initialCost float64
	if tour, cost, ierr := initialTour(model, opts); ierr == nil {
		initialCost = cost
		s.bestTour, s.bestCost = tour, cost
		s.notify(0)
		s.logger.Debug("initial tour", "cost", cost, "root_bound", root.LowerBound)
	} else {
		s.logger.Debug("no initial tour, searching from +Inf", "err", ierr)
	}

	s.open.Push(root)
	s.stats.MaxQueue = 1
	status := s.run()

	s.stats.Remaining = s.open.Len()
	s.open.Drain(nil)
	elapsed := time.Since(s.began)
	s.logger.Debug("search finished",
		"status", status,
		"cost", s.bestCost,
		"solutions", s.found,
		"created", s.stats.Created,
		"pruned", s.stats.Pruned,
		"elapsed", elapsed)

	if s.bestTour == nil {
		switch status {
		case StatusTimeLimit:
			return Result{}, ErrTimeLimit
		case StatusCanceled:
			return Result{}, fmt.Errorf("tsp: search canceled before any tour was found: %w", ctx.Err())
		default:
			return Result{}, ErrInfeasible
		}
	}

	return Result{
		Tour:           s.bestTour,
		Cost:           round1e9(s.bestCost),
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		SolutionsFound: s.found,
		InitialCost:    initialCost,
		Status:         status,
		Stats:          s.stats,
	}, nil
}

func newSearcher(ctx context.Context, model CostModel, n int, opts Options) *searcher {
	s := &searcher{
		n:         n,
		start:     opts.StartCity,
		bias:      opts.DepthBias,
		eps:       opts.Eps,
		model:     model,
		ctx:       ctx,
		began:     time.Now(),
		bestCost:  math.Inf(1),
		visited:   make([]bool, n),
		logger:    opts.Logger,
		onImprove: opts.OnImprove,
		open:      pqueue.New(func(st *State) float64 { return st.Priority }, 4*n),
	}
	if opts.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = s.began.Add(opts.TimeLimit)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	return s
}

// run drives the EXPANDING phase and returns the terminal status.
func (s *searcher) run() Status {
	var (
		st *State
		ok bool
	)
	for {
		if s.open.IsEmpty() {
			return StatusExhausted
		}
		if s.interrupted() {
			return s.stopped
		}
		if s.minLowerBound() >= s.bestCost-s.eps {
			return StatusProvedOptimal
		}

		st, _ = s.open.Pop()
		if st.LowerBound >= s.bestCost-s.eps {
			// The BSSF improved after st was scheduled.
			s.stats.Pruned++
			continue
		}
		if ok = s.expand(st); !ok {
			return s.stopped
		}
	}
}

// minLowerBound returns a value no greater than the LowerBound of any queued State.
func (s *searcher) minLowerBound() float64 {
	head, ok := s.open.Peek()
	if !ok {
		return math.Inf(1)
	}

	return head.Priority - float64(s.n-1)*s.bias
}

// expand branches st on every unvisited city in ascending index order.
// It returns false when the budget or context expired mid-expansion.
func (s *searcher) expand(st *State) bool {
	var (
		c     int
		child *State
		ok    bool
	)
	s.stats.Expanded++
	for c = range s.visited {
		s.visited[c] = false
	}
	for _, c = range st.Path {
		s.visited[c] = true
	}

	for c = 0; c < s.n; c++ {
		if s.visited[c] {
			continue
		}
		if s.interrupted() {
			return false
		}

		child, ok = branch(st, c)
		s.stats.Created++
		if !ok || child.LowerBound >= s.bestCost-s.eps {
			s.stats.Pruned++
			continue
		}

		if child.Depth() == s.n {
			s.complete(child)
			continue
		}

		child.Priority = priority(child.LowerBound, s.n-child.Depth(), s.bias)
		s.open.Push(child)
		if l := s.open.Len(); l > s.stats.MaxQueue {
			s.stats.MaxQueue = l
		}
	}

	return true
}

// complete evaluates a child whose path visits every city.
func (s *searcher) complete(child *State) {
	closing := child.matrix.At(child.Last(), s.start)
	if math.IsInf(closing, 1) || child.LowerBound+closing >= s.bestCost-s.eps {
		s.stats.Pruned++
		return
	}
	// The reduced bound of a complete tour equals its cost; the model is the
	// reference for the reported value.
	cost, err := TourCost(s.model, child.Path)
	if err != nil || cost >= s.bestCost-s.eps {
		s.stats.Pruned++
		return
	}
	s.bestTour, s.bestCost = child.Path, cost
	s.found++
	s.logger.Debug("new best tour",
		"cost", cost,
		"bound", child.LowerBound,
		"solution", s.found,
		"queued", s.open.Len(),
		"elapsed", time.Since(s.began))
	s.notify(s.found)
}

// interrupted polls the deadline and ctx; on expiry it records the status.
func (s *searcher) interrupted() bool {
	if err := s.ctx.Err(); err != nil {
		s.stopped = StatusCanceled
		return true
	}
	if s.useDeadline && !time.Now().Before(s.deadline) {
		s.stopped = StatusTimeLimit
		return true
	}

	return false
}

func (s *searcher) notify(solution int) {
	if s.onImprove == nil {
		return
	}
	tour := make([]int, len(s.bestTour))
	copy(tour, s.bestTour)
	s.onImprove(Improvement{
		Tour:     tour,
		Cost:     s.bestCost,
		Elapsed:  time.Since(s.began),
		Solution: solution,
	})
}
