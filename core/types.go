// Package core: contract types shared by both storage backends.
//
// This file declares the Graph interface, the Iterator contract, and the
// package sentinel errors. The two implementations live in
// adjacency_list.go and adjacency_matrix.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrKeyNotFound indicates an operation referenced a vertex key that is
	// not part of the graph's (fixed) vertex set. It is checked eagerly,
	// before any side effect.
	ErrKeyNotFound = errors.New("core: vertex key not found")

	// ErrConcurrentModification indicates the graph was structurally mutated
	// while a neighbor iterator obtained from it was still live. The iterator
	// that detects it stops; the graph itself remains valid.
	ErrConcurrentModification = errors.New("core: graph modified during iteration")
)

// Graph is the minimal directed-graph contract implemented identically by
// AdjacencyList and AdjacencyMatrix. All algorithms in sibling packages are
// written only against this interface.
//
// The vertex set is fixed at construction; only edges mutate. Methods taking
// keys return ErrKeyNotFound when a key is outside the vertex set.
type Graph[K comparable] interface {
	// VertexCount reports the number of vertices. Complexity: O(1).
	VertexCount() int

	// EdgeCount reports the number of directed edges currently present.
	// Complexity: O(1).
	EdgeCount() int

	// HasVertex reports whether key belongs to the vertex set. Complexity: O(1).
	HasVertex(key K) bool

	// AddEdge inserts the directed edge from→to.
	// Returns (false, nil) if the edge is already present (no-op), and
	// ErrKeyNotFound if either endpoint is absent.
	AddEdge(from, to K) (bool, error)

	// RemoveEdge deletes the directed edge from→to.
	// Returns (false, nil) if the edge is absent, and ErrKeyNotFound if
	// either endpoint is absent.
	RemoveEdge(from, to K) (bool, error)

	// HasEdge reports whether the directed edge from→to is present.
	// Returns ErrKeyNotFound if either endpoint is absent.
	HasEdge(from, to K) (bool, error)

	// OutDegree reports the number of successors of key.
	OutDegree(key K) (int, error)

	// InDegree reports the number of predecessors of key.
	InDegree(key K) (int, error)

	// Keys returns all vertex keys in unspecified order. The returned slice
	// is owned by the caller. Complexity: O(V).
	Keys() []K

	// Successors returns the duplicate-free set of direct outgoing neighbors
	// of key, in unspecified order.
	Successors(key K) ([]K, error)

	// Predecessors returns the duplicate-free set of direct incoming
	// neighbors of key, in unspecified order.
	Predecessors(key K) ([]K, error)

	// SuccessorIterator returns a lazy, non-restartable iterator over the
	// successors of key. Mutating the graph invalidates the iterator; see
	// Iterator.
	SuccessorIterator(key K) (Iterator[K], error)

	// PredecessorIterator returns a lazy, non-restartable iterator over the
	// predecessors of key.
	PredecessorIterator(key K) (Iterator[K], error)
}

// Iterator is a lazy, finite, non-restartable sequence of neighbor keys,
// following the stdlib scanner idiom:
//
//	it, err := g.SuccessorIterator(key)
//	if err != nil { ... }
//	for it.Next() {
//	    use(it.Key())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Next advances and reports whether a key is available; Key returns the
// current key and is valid only after a true Next. Err is non-nil only when
// iteration stopped because the graph was mutated underneath the iterator
// (ErrConcurrentModification); a normally exhausted iterator has a nil Err.
type Iterator[K comparable] interface {
	Next() bool
	Key() K
	Err() error
}

// Interface conformance pins: both backends satisfy the contract.
var (
	_ Graph[string] = (*AdjacencyList[string])(nil)
	_ Graph[int]    = (*AdjacencyMatrix[int])(nil)
)
