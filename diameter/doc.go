// Package diameter answers "which two vertices are farthest apart?" by
// brute force: an all-pairs sweep of unweighted shortest paths, keeping the
// longest one found. The winning length (in vertices) is the diameter-style
// measure of the graph's reachable structure.
//
// The sweep visits every vertex s, restricts candidates to s's
// forward-reachable component (so no BFS is wasted on unreachable targets),
// and runs one shortest-path query per reachable pair. Cost is
// O(V·(V+E)) on the adjacency-list backend and higher on the matrix
// backend — this is a diagnostic/analysis operation, not an online one.
//
// There is no early termination and no approximation. For non-trivial
// graphs, bound the run with WithContext and observe progress with
// WithOnImprove, which fires on every strictly longer candidate.
package diameter
