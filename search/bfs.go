package search

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors func(N) iter.Seq[N]
	opts      Options[N]
	queue     []queueItem[N]
	res       *Result[N]
}

// BFS runs breadth-first search from start, expanding each node with
// neighbors and applying any number of functional Options.
// Returns ErrNilNeighbors for a nil neighbor function, ErrOptionViolation
// for bad options, or any user-supplied hook error. On a hook error the
// partial Result is returned alongside it.
func BFS[N comparable](start N, neighbors func(N) iter.Seq[N], opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// Distances is a convenience wrapper returning only the depth map.
func Distances[N comparable](start N, neighbors func(N) iter.Seq[N], opts ...Option[N]) (map[N]int, error) {
	res, err := BFS(start, neighbors, opts...)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// enqueue marks n reached at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int) {
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return errors.Wrapf(err, "search: OnVisit error at %v", item.node)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for next := range w.neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, next) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[next]; seen {
			continue
		}
		w.res.Parent[next] = item.node
		w.enqueue(next, nextDepth)
	}
}
