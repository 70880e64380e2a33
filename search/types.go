package search

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned if no neighbor function is supplied.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("search: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N comparable] struct {
	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node and its depth from the start.
	OnEnqueue func(n N, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→next.
	FilterNeighbor func(curr, next N) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnEnqueue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, next N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in steps) of every reached node from the start.
//   - Parent: predecessor of every reached node except the start.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the path from the start node to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Wrapf(ErrNoPath, "%v", dest)
	}
	// build reversed path
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
