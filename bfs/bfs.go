// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, depth layers, parent links, and unweighted
// shortest paths.
//
// BFS explores vertices in increasing edge distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/kaverin/digraph/core"
)

// queueItem pairs a vertex key with its BFS depth.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph   core.Graph[K]
	opts    Options[K]
	queue   []queueItem[K]
	visited map[K]bool // marked at enqueue time: doubles as the pending set
	res     *Result[K]

	target    *K // non-nil in shortest-path mode
	hitTarget bool
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The whole component of start is visited
// (subject to MaxDepth and FilterNeighbor).
// Returns ErrGraphNil for a nil graph, core.ErrKeyNotFound for an absent
// start key, ErrOptionViolation for bad options, ErrNeighbors for iterator
// failures, or any user-supplied hook error.
func BFS[K comparable](g core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(g, opts, start)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath finds a fewest-edge directed path start→end.
//
// Outcomes:
//   - both keys present, end reachable: (path, true, nil) where
//     path[0] == start and path[len-1] == end; the first path BFS finds is
//     shortest in edge count because exploration proceeds in non-decreasing
//     depth layers.
//   - start == end: ([start], true, nil).
//   - end unreachable: (nil, false, nil) — absence is a value, not an error.
//   - either key absent: (nil, false, core.ErrKeyNotFound).
//
// The search stops as soon as end is discovered.
// Complexity: O(V+E) worst case.
func ShortestPath[K comparable](g core.Graph[K], start, end K, opts ...Option[K]) ([]K, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	// Validate both endpoints eagerly, before any hook fires.
	if !g.HasVertex(end) {
		return nil, false, core.ErrKeyNotFound
	}
	w, err := newWalker(g, opts, start)
	if err != nil {
		return nil, false, err
	}
	if start == end {
		return []K{start}, true, nil
	}

	w.target = &end
	if err = w.loop(); err != nil {
		return nil, false, err
	}
	if !w.hitTarget {
		return nil, false, nil
	}
	path, err := w.res.PathTo(end)
	if err != nil {
		// unreachable: hitTarget implies a Parent chain to end exists
		return nil, false, err
	}

	return path, true, nil
}

// newWalker validates inputs, applies options, and seeds the frontier with
// the start vertex.
func newWalker[K comparable](g core.Graph[K], opts []Option[K], start K) (*walker[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, core.ErrKeyNotFound
	}

	n := g.VertexCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed the frontier; the root records no parent.
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem[K]{key: start})

	return w, nil
}

// enqueue marks key visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[K]) enqueue(key K, d int, parent K) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.res.Parent[key] = parent
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem[K]{key: key, depth: d})
}

// loop processes the queue until empty, target hit, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 && !w.hitTarget {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.key, err)
	}

	return nil
}

// enqueueNeighbors walks item's successor iterator, applies filtering and
// MaxDepth, and enqueues each unseen neighbor. In shortest-path mode it
// stops as soon as the target is discovered.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	it, err := w.graph.SuccessorIterator(item.key)
	if err != nil {
		return fmt.Errorf("%w: successors of %v: %v", ErrNeighbors, item.key, err)
	}
	for it.Next() {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		nbr := it.Key()
		if !w.opts.FilterNeighbor(item.key, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen? (visited covers both settled and queued keys,
		// so this membership test is O(1), never a queue scan)
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.key)
			if w.target != nil && nbr == *w.target {
				w.hitTarget = true

				return nil
			}
		}
	}
	if err = it.Err(); err != nil {
		return fmt.Errorf("%w: successors of %v: %v", ErrNeighbors, item.key, err)
	}

	return nil
}
