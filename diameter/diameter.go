// Package diameter implements the brute-force longest-shortest-path search
// over a core.Graph: for every ordered pair of vertices connected by a
// directed path, compute the unweighted shortest path and keep the longest.
package diameter

import (
	"context"
	"errors"

	"github.com/kaverin/digraph/bfs"
	"github.com/kaverin/digraph/core"
	"github.com/kaverin/digraph/dfs"
)

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("diameter: graph is nil")

// Option configures the search via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks for the search.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines. On non-trivial graphs the
	// search runs O(V) BFS invocations — give it a deadline.
	Ctx context.Context

	// OnImprove is called each time a strictly longer shortest path is
	// found, with the candidate endpoints and its length in vertices.
	// Useful for progress reporting on long runs.
	OnImprove func(start, end K, length int)
}

// DefaultOptions returns Options with a background context and a no-op
// improvement hook.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:       context.Background(),
		OnImprove: func(K, K, int) {},
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

// WithOnImprove registers a callback fired on every new longest candidate.
func WithOnImprove[K comparable](fn func(start, end K, length int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// Result reports the winning pair and the path achieving it.
// Found is false only when the graph has no vertices.
type Result[K comparable] struct {
	Start K
	End   K
	Path  []K // Start..End inclusive; length counts vertices
	Found bool
}

// LongestShortestPath scans every vertex s, computes s's forward-reachable
// component, and for every member t takes the shortest path s→t, tracking
// the (s, t) pair whose shortest path contains the most vertices.
//
// This is a diagnostic, intentionally exhaustive operation: O(V) BFS
// invocations, each O(V+E) on the list backend — O(V·(V+E)) overall, and
// worse on the matrix backend. No early termination or approximation is
// applied; use WithContext to bound the run.
//
// A single-vertex graph yields the trivial pair (v, v) with path [v].
func LongestShortestPath[K comparable](g core.Graph[K], opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result[K]{}
	for _, start := range g.Keys() {
		// cancellation check (once per source vertex; the inner BFS runs
		// carry the same context)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		component, err := dfs.ConnectedComponent(g, start, dfs.WithContext[K](o.Ctx))
		if err != nil {
			return nil, err
		}
		for end := range component {
			path, found, err := bfs.ShortestPath(g, start, end, bfs.WithContext[K](o.Ctx))
			if err != nil {
				return nil, err
			}
			if !found {
				continue
			}
			if len(path) > len(res.Path) {
				res.Start, res.End = start, end
				res.Path = path
				res.Found = true
				o.OnImprove(start, end, len(path))
			}
		}
	}

	return res, nil
}
