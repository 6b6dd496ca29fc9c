// Package dfs: tunable options, result types and error definitions for
// depth-first traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS behavior via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize DFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is popped and settled. If it returns
	// an error, the traversal aborts and propagates that error.
	OnVisit func(key K) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor (neighbor→curr when reversed).
	FilterNeighbor func(curr, neighbor K) bool

	// Reverse switches traversal to predecessor edges: the walk follows
	// incoming edges backward instead of outgoing edges forward.
	Reverse bool
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op visit hook, no filtering, forward direction.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K) error { return nil },
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

// WithOnVisit registers a callback to run when a vertex is settled;
// returning an error from this callback stops the traversal.
func WithOnVisit[K comparable](fn func(key K) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
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

// WithReverse makes the traversal follow predecessor edges instead of
// successor edges. ConnectedComponent honors it; the two passes of
// StronglyConnectedComponent manage direction themselves and ignore it.
func WithReverse[K comparable]() Option[K] {
	return func(o *Options[K]) { o.Reverse = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in settle sequence (start first).
//   - Parent: vertex that pushed each discovered vertex; the start has no entry.
//   - Visited: every vertex reached by the walk, including the start.
type Result[K comparable] struct {
	Order   []K
	Parent  map[K]K
	Visited map[K]bool
}
