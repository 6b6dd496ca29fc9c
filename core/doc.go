// Package core defines the polymorphic directed-graph contract and its two
// storage backends: a sparse adjacency-list representation and a dense
// adjacency-matrix representation.
//
// The graph G = (V,E) is directed, unweighted and simple:
//
//   - V is fixed at construction from a caller-supplied key set and never
//     changes afterwards; there are no AddVertex/RemoveVertex operations.
//   - At most one edge exists per ordered (from, to) pair.
//   - Vertex identity is any comparable key type K; no vertex object is
//     exposed beyond the key itself.
//
// Both backends implement the same Graph[K] interface, so every algorithm in
// the sibling packages (bfs, dfs, diameter) runs unchanged against either.
// They differ only in complexity:
//
//	                 AdjacencyList      AdjacencyMatrix
//	AddEdge          O(deg)             O(1)
//	RemoveEdge       O(deg)             O(1)
//	HasEdge          O(deg)             O(1)
//	Out/InDegree     O(1)               O(V)
//	Neighbor iter    O(deg) total       O(V) total
//	Space            O(V+E)             O(V²)
//
// Pick AdjacencyList for sparse graphs, AdjacencyMatrix for dense graphs or
// when constant-time edge tests dominate.
//
// Iteration & mutation:
//
// SuccessorIterator and PredecessorIterator return lazy, non-restartable
// sequences. Mutating the graph while an iterator from it is live is not
// supported: every successful AddEdge/RemoveEdge bumps an internal version
// stamp, and an iterator whose stamp no longer matches stops and reports
// ErrConcurrentModification via Err(). Results of iteration interleaved with
// mutation are never silently wrong.
//
// Concurrency:
//
// core is single-threaded by design. Graphs and iterators are owned by the
// calling goroutine; there is no internal locking. Wrap access externally if
// you need to share a graph.
//
// Errors:
//
//	ErrKeyNotFound            – an operation referenced a key outside the vertex set.
//	ErrConcurrentModification – the graph was mutated under a live iterator.
//
// Expected, recoverable outcomes are returned as values, not errors:
// AddEdge/RemoveEdge report already-present/absent edges as (false, nil).
package core
