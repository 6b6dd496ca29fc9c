// Package dfs implements iterative depth-first traversal over the core.Graph
// contract, independent of storage backend, and the two reachability queries
// built on top of it.
//
// What you get:
//
//   - DFS(g, start, opts...): explicit-stack depth-first walk following
//     successor edges, or predecessor edges with WithReverse. Produces settle
//     Order, Parent links, and the Visited set.
//   - ConnectedComponent(g, key, opts...): the set of vertices reachable from
//     key by a forward directed walk, key included. Forward-only: membership
//     does not imply a path back.
//   - StronglyConnectedComponent(g, key, opts...): the maximal mutually
//     reachable set containing key, computed as the intersection of one
//     forward and one backward reachability pass. See scc.go for the
//     correctness argument.
//
// Scheduling guarantee: a companion pending set mirrors stack membership, so
// the "already scheduled" test during neighbor expansion is an O(1) map
// lookup, never a scan of the stack.
//
// Errors: ErrGraphNil for a nil graph, core.ErrKeyNotFound for absent keys
// (checked before any work), context errors on cancellation, hook errors
// from OnVisit, and wrapped core.ErrConcurrentModification if a hook mutates
// the graph mid-walk.
//
// Complexity: O(V + E) per traversal on the adjacency-list backend, O(V²) on
// the adjacency-matrix backend; O(V) memory for stack, pending set, and
// result maps. StronglyConnectedComponent costs two traversals.
package dfs
