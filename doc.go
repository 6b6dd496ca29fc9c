// Package digraph is a small, backend-agnostic directed-graph toolkit:
// a minimal polymorphic graph contract, two interchangeable storage
// representations, and a set of connectivity algorithms written once
// against that contract.
//
// What you get:
//
//	• Core contract: edge mutation, degree and containment queries, and
//	  lazy neighbor iteration over an immutable vertex key set
//	• Two backends: sparse adjacency lists (O(V+E) space, O(deg) edge ops)
//	  and a dense adjacency matrix (O(V²) space, O(1) edge ops)
//	• Traversals: BFS with unweighted shortest paths, iterative DFS over
//	  successor or predecessor edges
//	• Connectivity: forward reachable sets and strongly connected
//	  components via two-pass reachability intersection
//	• Diagnostics: brute-force longest-shortest-path (diameter-style) search
//
// Why choose digraph?
//
//   - Generic – vertex identity is any comparable key type, no wrapper objects
//   - Backend-agnostic – every algorithm sees only the core.Graph interface;
//     swap list and matrix storage without touching callers
//   - Fail-fast – mutation during a live neighbor iteration is detected by
//     version stamping and surfaced as a distinct error, never silent
//   - Pure Go – no cgo, no hidden deps
//
// Packages:
//
//	core/     — Graph contract, sentinel errors, AdjacencyList & AdjacencyMatrix
//	bfs/      — breadth-first traversal & single-pair shortest path
//	dfs/      — depth-first traversal, reachable sets, strongly connected components
//	diameter/ — all-pairs longest-shortest-path search
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    │   ▼
//	    D◀──C
//
//	a directed 4-cycle: every vertex is strongly connected to every other.
//
// See each package's doc.go for semantics, complexity notes and examples.
//
//	go get github.com/kaverin/digraph
package digraph
