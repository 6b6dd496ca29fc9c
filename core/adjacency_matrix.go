// Package core: dense adjacency-matrix backend.
//
// Vertex keys receive a stable dense index at construction (input order);
// a V×V boolean matrix records edge presence. Space is O(V²) regardless of
// edge count.
package core

// AdjacencyMatrix is the dense backend: O(1) edge mutation and containment,
// O(V) degree queries and neighbor scans, O(V²) space. Appropriate for dense
// graphs or when constant-time edge tests dominate.
//
// The zero value is not usable; construct with NewAdjacencyMatrix.
type AdjacencyMatrix[K comparable] struct {
	keyToIndex map[K]int
	indexToKey []K
	// cells[i][j] reports the edge indexToKey[i]→indexToKey[j].
	cells     [][]bool
	edgeCount int
	version   uint64 // bumped on every successful mutation; guards iterators
}

// NewAdjacencyMatrix builds an adjacency-matrix graph over the given key set.
// Indices follow the order keys are supplied; duplicates collapse.
// Complexity: O(len(keys)²) time and space for the zeroed matrix.
func NewAdjacencyMatrix[K comparable](keys ...K) *AdjacencyMatrix[K] {
	g := &AdjacencyMatrix[K]{
		keyToIndex: make(map[K]int, len(keys)),
		indexToKey: make([]K, 0, len(keys)),
	}
	for _, k := range keys {
		if _, ok := g.keyToIndex[k]; ok {
			continue // set semantics: duplicates collapse
		}
		g.keyToIndex[k] = len(g.indexToKey)
		g.indexToKey = append(g.indexToKey, k)
	}
	n := len(g.indexToKey)
	g.cells = make([][]bool, n)
	for i := range g.cells {
		g.cells[i] = make([]bool, n)
	}

	return g
}

// VertexCount reports the number of vertices. Complexity: O(1).
func (g *AdjacencyMatrix[K]) VertexCount() int { return len(g.indexToKey) }

// EdgeCount reports the number of directed edges. Complexity: O(1).
func (g *AdjacencyMatrix[K]) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether key belongs to the vertex set. Complexity: O(1).
func (g *AdjacencyMatrix[K]) HasVertex(key K) bool {
	_, ok := g.keyToIndex[key]

	return ok
}

// AddEdge sets cells[from][to]. Returns (false, nil) if already set.
// Complexity: O(1).
func (g *AdjacencyMatrix[K]) AddEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}
	if g.cells[i][j] {
		return false, nil
	}
	g.cells[i][j] = true
	g.edgeCount++
	g.version++

	return true, nil
}

// RemoveEdge clears cells[from][to]. Returns (false, nil) if already clear.
// Complexity: O(1).
func (g *AdjacencyMatrix[K]) RemoveEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}
	if !g.cells[i][j] {
		return false, nil
	}
	g.cells[i][j] = false
	g.edgeCount--
	g.version++

	return true, nil
}

// HasEdge reports whether from→to is present. Complexity: O(1).
func (g *AdjacencyMatrix[K]) HasEdge(from, to K) (bool, error) {
	i, j, err := g.indices(from, to)
	if err != nil {
		return false, err
	}

	return g.cells[i][j], nil
}

// OutDegree counts set cells in key's row. Complexity: O(V).
func (g *AdjacencyMatrix[K]) OutDegree(key K) (int, error) {
	i, ok := g.keyToIndex[key]
	if !ok {
		return 0, ErrKeyNotFound
	}
	deg := 0
	for _, set := range g.cells[i] {
		if set {
			deg++
		}
	}

	return deg, nil
}

// InDegree counts set cells in key's column. Complexity: O(V).
func (g *AdjacencyMatrix[K]) InDegree(key K) (int, error) {
	j, ok := g.keyToIndex[key]
	if !ok {
		return 0, ErrKeyNotFound
	}
	deg := 0
	for i := range g.cells {
		if g.cells[i][j] {
			deg++
		}
	}

	return deg, nil
}

// Keys returns all vertex keys in unspecified order. Complexity: O(V).
func (g *AdjacencyMatrix[K]) Keys() []K {
	return append([]K(nil), g.indexToKey...)
}

// Successors scans key's row for set cells. Complexity: O(V).
func (g *AdjacencyMatrix[K]) Successors(key K) ([]K, error) {
	i, ok := g.keyToIndex[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	var out []K
	for j, set := range g.cells[i] {
		if set {
			out = append(out, g.indexToKey[j])
		}
	}

	return out, nil
}

// Predecessors scans key's column for set cells. Complexity: O(V).
func (g *AdjacencyMatrix[K]) Predecessors(key K) ([]K, error) {
	j, ok := g.keyToIndex[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	var out []K
	for i := range g.cells {
		if g.cells[i][j] {
			out = append(out, g.indexToKey[i])
		}
	}

	return out, nil
}

// SuccessorIterator returns a lazy iterator over key's row, skipping unset
// cells. O(V) total per full scan; invalidated by mutation (see Iterator).
func (g *AdjacencyMatrix[K]) SuccessorIterator(key K) (Iterator[K], error) {
	i, ok := g.keyToIndex[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return &matrixIterator[K]{g: g, fixed: i, row: true, stamp: g.version}, nil
}

// PredecessorIterator returns a lazy iterator over key's column.
func (g *AdjacencyMatrix[K]) PredecessorIterator(key K) (Iterator[K], error) {
	j, ok := g.keyToIndex[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return &matrixIterator[K]{g: g, fixed: j, row: false, stamp: g.version}, nil
}

// indices resolves both endpoints to matrix indices, or ErrKeyNotFound
// before any side effect when either is absent.
func (g *AdjacencyMatrix[K]) indices(from, to K) (i, j int, err error) {
	i, ok := g.keyToIndex[from]
	if !ok {
		return 0, 0, ErrKeyNotFound
	}
	j, ok = g.keyToIndex[to]
	if !ok {
		return 0, 0, ErrKeyNotFound
	}

	return i, j, nil
}

// matrixIterator walks one row (successors) or column (predecessors),
// lazily advancing past unset cells. It fails fast when the owning graph's
// version stamp no longer matches the one captured at creation.
type matrixIterator[K comparable] struct {
	g     *AdjacencyMatrix[K]
	fixed int  // row index when row==true, column index otherwise
	row   bool // true: scan cells[fixed][*]; false: scan cells[*][fixed]
	stamp uint64
	pos   int // next candidate index along the scanned axis
	cur   K
	err   error
}

// Next advances to the next set cell along the scanned axis.
func (it *matrixIterator[K]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.g.version != it.stamp {
		it.err = ErrConcurrentModification

		return false
	}
	for n := it.g.VertexCount(); it.pos < n; it.pos++ {
		if it.set(it.pos) {
			it.cur = it.g.indexToKey[it.pos]
			it.pos++

			return true
		}
	}

	return false
}

// set reports the cell at offset p along the scanned axis.
func (it *matrixIterator[K]) set(p int) bool {
	if it.row {
		return it.g.cells[it.fixed][p]
	}

	return it.g.cells[p][it.fixed]
}

// Key returns the current neighbor key; valid only after a true Next.
func (it *matrixIterator[K]) Key() K { return it.cur }

// Err reports whether iteration stopped due to concurrent modification.
func (it *matrixIterator[K]) Err() error { return it.err }
