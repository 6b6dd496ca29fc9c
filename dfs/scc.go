package dfs

import "github.com/kaverin/digraph/core"

// StronglyConnectedComponent returns the maximal set of vertices mutually
// reachable with key: every member lies on a directed path from key AND on a
// directed path back to key. The result always contains key itself.
//
// Algorithm (two-pass reachability intersection):
//  1. forward  = vertices reachable from key via successor edges;
//  2. backward = vertices from which key is reachable, found by the same
//     walk over predecessor edges (forward reachability in the reversed graph);
//  3. result   = forward ∩ backward.
//
// A vertex v belongs to key's SCC iff paths key→v and v→key both exist;
// pass 1 captures exactly the first condition, pass 2 exactly the second,
// so the intersection is exactly the SCC.
//
// Direction is managed internally: a WithReverse option, if supplied, is
// ignored. Returns core.ErrKeyNotFound if key is absent.
// Complexity: two full traversals — O(V+E) list backend, O(V²) matrix backend.
func StronglyConnectedComponent[K comparable](g core.Graph[K], key K, opts ...Option[K]) (map[K]bool, error) {
	o, err := prepare(g, key, opts)
	if err != nil {
		return nil, err
	}

	forward, err := run(g, key, o, false)
	if err != nil {
		return nil, err
	}
	backward, err := run(g, key, o, true)
	if err != nil {
		return nil, err
	}

	scc := make(map[K]bool, len(forward.Visited))
	for k := range forward.Visited {
		if backward.Visited[k] {
			scc[k] = true
		}
	}

	return scc, nil
}
