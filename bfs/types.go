// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when neighbor iteration fails mid-traversal
	// (the graph was mutated by a hook while its iterator was live).
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex key and its depth from the start.
	OnEnqueue func(key K, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(key K, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(key K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnEnqueue:      func(K, int) {},
		OnDequeue:      func(K, int) {},
		OnVisit:        func(K, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(K, K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[K comparable](fn func(key K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex key to its distance (in edges) from the start.
//   - Parent: map from vertex key to its predecessor in the BFS tree;
//     the start vertex has no entry.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start vertex to dest by walking the
// Parent map backward and reversing. Returns an error if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []K{}
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
