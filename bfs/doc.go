// Package bfs implements breadth-first search over the core.Graph contract,
// independent of storage backend.
//
// What you get:
//
//   - BFS(g, start, opts...): full traversal of start's component, producing
//     visit Order, per-vertex Depth (edge distance from start), and Parent
//     links forming the BFS tree.
//   - ShortestPath(g, start, end, opts...): fewest-edge directed path using
//     the same machinery with early exit on discovery of end. BFS explores
//     strictly non-decreasing distance layers, so the first path found is
//     shortest in edge count.
//   - Result.PathTo(dest): path reconstruction from the Parent map.
//
// Duplicate-work avoidance: a vertex is marked in the visited set at enqueue
// time, so "already settled" and "already queued" are a single O(1) map test;
// the frontier queue itself is never scanned.
//
// Unreachable targets are an expected outcome, reported as found == false,
// not as an error. Errors are reserved for absent keys (core.ErrKeyNotFound),
// nil graphs, invalid options, cancelled contexts, hook failures, and
// iterator invalidation caused by hooks mutating the graph mid-search.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context
//   - WithOnEnqueue(fn)       hook on enqueue (key, depth)
//   - WithOnDequeue(fn)       hook before visiting (key, depth)
//   - WithOnVisit(fn)         visit hook; returning an error aborts
//   - WithMaxDepth(d)         stop exploring past depth d (0 = unlimited)
//   - WithFilterNeighbor(fn)  prune edges curr→neighbor when fn returns false
//
// Complexity: O(V + E) time per call on the adjacency-list backend,
// O(V²) on the adjacency-matrix backend (each neighbor scan is O(V));
// O(V) memory for queue, visited set, and result maps.
package bfs
