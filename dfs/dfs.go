// Package dfs implements iterative depth-first traversal on the core.Graph
// contract, in either edge direction, plus the reachability queries built on
// it: connected components and strongly connected components.
package dfs

import (
	"fmt"

	"github.com/kaverin/digraph/core"
)

// DFS performs depth-first traversal on g starting from start, following
// successor edges (or predecessor edges with WithReverse). The traversal is
// iterative (explicit stack, no recursion), so arbitrarily deep graphs cannot
// overflow the goroutine stack.
// Returns ErrGraphNil for a nil graph, core.ErrKeyNotFound for an absent
// start key, a context error on cancellation, or any OnVisit error.
// Complexity: O(V+E) on the list backend, O(V²) on the matrix backend.
func DFS[K comparable](g core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}

	return run(g, start, o, o.Reverse)
}

// prepare validates inputs and folds functional options.
func prepare[K comparable](g core.Graph[K], start K, opts []Option[K]) (Options[K], error) {
	if g == nil {
		return Options[K]{}, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return Options[K]{}, core.ErrKeyNotFound
	}

	return o, nil
}

// run is the traversal core shared by DFS, ConnectedComponent and both SCC
// passes. Stack membership is mirrored in the pending set so the "already
// scheduled" test is O(1), never a stack scan.
func run[K comparable](g core.Graph[K], start K, o Options[K], reverse bool) (*Result[K], error) {
	n := g.VertexCount()
	res := &Result[K]{
		Order:   make([]K, 0, n),
		Parent:  make(map[K]K, n),
		Visited: make(map[K]bool, n),
	}

	stack := make([]K, 0, n)
	pending := make(map[K]bool, n)
	stack = append(stack, start)
	pending[start] = true

	for len(stack) > 0 {
		// cancellation check (once per settled vertex)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// pop the deepest scheduled vertex
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(pending, cur)

		res.Visited[cur] = true
		res.Order = append(res.Order, cur)
		if err := o.OnVisit(cur); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %v: %w", cur, err)
		}

		it, err := neighborIterator(g, cur, reverse)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %v: %w", cur, err)
		}
		for it.Next() {
			nbr := it.Key()
			if !o.FilterNeighbor(cur, nbr) {
				continue
			}
			// schedule each neighbor at most once
			if !res.Visited[nbr] && !pending[nbr] {
				res.Parent[nbr] = cur
				pending[nbr] = true
				stack = append(stack, nbr)
			}
		}
		if err = it.Err(); err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %v: %w", cur, err)
		}
	}

	return res, nil
}

// neighborIterator picks the edge direction for one traversal step.
func neighborIterator[K comparable](g core.Graph[K], key K, reverse bool) (core.Iterator[K], error) {
	if reverse {
		return g.PredecessorIterator(key)
	}

	return g.SuccessorIterator(key)
}
