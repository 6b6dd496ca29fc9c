package dfs

import "github.com/kaverin/digraph/core"

// ConnectedComponent returns every vertex reachable from key by a directed
// walk over successor edges, including key itself. This is forward-only
// reachability; it says nothing about paths back to key (see
// StronglyConnectedComponent for mutual reachability).
// Returns core.ErrKeyNotFound if key is absent.
// Complexity: one DFS — O(V+E) list backend, O(V²) matrix backend.
func ConnectedComponent[K comparable](g core.Graph[K], key K, opts ...Option[K]) (map[K]bool, error) {
	res, err := DFS(g, key, opts...)
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}
