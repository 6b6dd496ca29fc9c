// Package core: sparse adjacency-list backend.
//
// Each vertex owns two ordered neighbor slices (successors, predecessors)
// holding keys, not pointers: the predecessor slice is the cached inverse of
// the successor slices and both are kept consistent on every mutation.
package core

// listVertex is the per-vertex adjacency record of AdjacencyList.
type listVertex[K comparable] struct {
	succ []K // outgoing neighbors, insertion order
	pred []K // incoming neighbors, insertion order
}

// AdjacencyList is the sparse backend: O(V+E) space, O(deg) edge mutation and
// containment, O(1) degree queries. Appropriate for sparse graphs.
//
// The zero value is not usable; construct with NewAdjacencyList.
type AdjacencyList[K comparable] struct {
	vertices  map[K]*listVertex[K]
	edgeCount int
	version   uint64 // bumped on every successful mutation; guards iterators
}

// NewAdjacencyList builds an adjacency-list graph over the given key set.
// Duplicate keys collapse; an empty key set yields a valid empty graph.
// The vertex set is immutable afterwards.
// Complexity: O(len(keys)).
func NewAdjacencyList[K comparable](keys ...K) *AdjacencyList[K] {
	g := &AdjacencyList[K]{vertices: make(map[K]*listVertex[K], len(keys))}
	for _, k := range keys {
		if _, ok := g.vertices[k]; ok {
			continue // set semantics: duplicates collapse
		}
		g.vertices[k] = &listVertex[K]{}
	}

	return g
}

// VertexCount reports the number of vertices. Complexity: O(1).
func (g *AdjacencyList[K]) VertexCount() int { return len(g.vertices) }

// EdgeCount reports the number of directed edges. Complexity: O(1).
func (g *AdjacencyList[K]) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether key belongs to the vertex set. Complexity: O(1).
func (g *AdjacencyList[K]) HasVertex(key K) bool {
	_, ok := g.vertices[key]

	return ok
}

// AddEdge inserts from→to, appending to from's successor list and to's
// predecessor list. Returns (false, nil) if the edge already exists.
// Complexity: O(deg(from)) for the duplicate scan, O(1) amortized append.
func (g *AdjacencyList[K]) AddEdge(from, to K) (bool, error) {
	fv, tv, err := g.endpoints(from, to)
	if err != nil {
		return false, err
	}
	// At-most-one-edge invariant: membership scan over the successor list.
	// Checking to's predecessors as well would be redundant (mirror invariant).
	if indexOf(fv.succ, to) >= 0 {
		return false, nil
	}
	fv.succ = append(fv.succ, to)
	tv.pred = append(tv.pred, from)
	g.edgeCount++
	g.version++

	return true, nil
}

// RemoveEdge deletes from→to from both mirror lists.
// Returns (false, nil) if the edge is absent.
// Complexity: O(deg(from) + deg(to)).
func (g *AdjacencyList[K]) RemoveEdge(from, to K) (bool, error) {
	fv, tv, err := g.endpoints(from, to)
	if err != nil {
		return false, err
	}
	i := indexOf(fv.succ, to)
	if i < 0 {
		return false, nil
	}
	fv.succ = spliceAt(fv.succ, i)
	tv.pred = spliceAt(tv.pred, indexOf(tv.pred, from))
	g.edgeCount--
	g.version++

	return true, nil
}

// HasEdge reports whether from→to is present. Complexity: O(deg(from)).
func (g *AdjacencyList[K]) HasEdge(from, to K) (bool, error) {
	fv, _, err := g.endpoints(from, to)
	if err != nil {
		return false, err
	}

	return indexOf(fv.succ, to) >= 0, nil
}

// OutDegree reports the successor count of key. Complexity: O(1).
func (g *AdjacencyList[K]) OutDegree(key K) (int, error) {
	v, ok := g.vertices[key]
	if !ok {
		return 0, ErrKeyNotFound
	}

	return len(v.succ), nil
}

// InDegree reports the predecessor count of key. Complexity: O(1).
func (g *AdjacencyList[K]) InDegree(key K) (int, error) {
	v, ok := g.vertices[key]
	if !ok {
		return 0, ErrKeyNotFound
	}

	return len(v.pred), nil
}

// Keys returns all vertex keys in unspecified order. Complexity: O(V).
func (g *AdjacencyList[K]) Keys() []K {
	out := make([]K, 0, len(g.vertices))
	for k := range g.vertices {
		out = append(out, k)
	}

	return out
}

// Successors returns a copy of key's successor set. Complexity: O(deg).
func (g *AdjacencyList[K]) Successors(key K) ([]K, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return append([]K(nil), v.succ...), nil
}

// Predecessors returns a copy of key's predecessor set. Complexity: O(deg).
func (g *AdjacencyList[K]) Predecessors(key K) ([]K, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return append([]K(nil), v.pred...), nil
}

// SuccessorIterator returns a lazy iterator over key's successors.
// O(1) per step; invalidated by mutation (see Iterator).
func (g *AdjacencyList[K]) SuccessorIterator(key K) (Iterator[K], error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return &listIterator[K]{g: g, keys: v.succ, stamp: g.version}, nil
}

// PredecessorIterator returns a lazy iterator over key's predecessors.
func (g *AdjacencyList[K]) PredecessorIterator(key K) (Iterator[K], error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return &listIterator[K]{g: g, keys: v.pred, stamp: g.version}, nil
}

// endpoints resolves both edge endpoints, or ErrKeyNotFound before any
// side effect when either is absent.
func (g *AdjacencyList[K]) endpoints(from, to K) (fv, tv *listVertex[K], err error) {
	fv, ok := g.vertices[from]
	if !ok {
		return nil, nil, ErrKeyNotFound
	}
	tv, ok = g.vertices[to]
	if !ok {
		return nil, nil, ErrKeyNotFound
	}

	return fv, tv, nil
}

// indexOf is a linear membership scan; -1 when absent.
func indexOf[K comparable](keys []K, key K) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}

	return -1
}

// spliceAt removes the element at i preserving order.
func spliceAt[K comparable](keys []K, i int) []K {
	return append(keys[:i], keys[i+1:]...)
}

// listIterator walks a neighbor slice, failing fast when the owning graph's
// version stamp no longer matches the one captured at creation.
type listIterator[K comparable] struct {
	g     *AdjacencyList[K]
	keys  []K
	stamp uint64
	idx   int
	cur   K
	err   error
}

// Next advances to the next neighbor key.
func (it *listIterator[K]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.g.version != it.stamp {
		it.err = ErrConcurrentModification

		return false
	}
	if it.idx >= len(it.keys) {
		return false
	}
	it.cur = it.keys[it.idx]
	it.idx++

	return true
}

// Key returns the current neighbor key; valid only after a true Next.
func (it *listIterator[K]) Key() K { return it.cur }

// Err reports whether iteration stopped due to concurrent modification.
func (it *listIterator[K]) Err() error { return it.err }
