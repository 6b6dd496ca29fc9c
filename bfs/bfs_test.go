package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/kaverin/digraph/bfs"
	"github.com/kaverin/digraph/core"
)

// graphMakers builds each backend over the same key set, so every test can
// assert backend-agnostic behavior.
var graphMakers = map[string]func(keys ...string) core.Graph[string]{
	"list": func(keys ...string) core.Graph[string] {
		return core.NewAdjacencyList(keys...)
	},
	"matrix": func(keys ...string) core.Graph[string] {
		return core.NewAdjacencyMatrix(keys...)
	},
}

// diamondGraph is the canonical fixture: one cycle A→B→C→A plus a tail C→D.
func diamondGraph(mk func(keys ...string) core.Graph[string]) core.Graph[string] {
	g := mk("A", "B", "C", "D")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewAdjacencyList("A")
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("missing start: want ErrKeyNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// shortest path endpoints must both exist
	if _, _, err := bfs.ShortestPath(g, "A", "missing"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("missing end: want ErrKeyNotFound, got %v", err)
	}
	if _, _, err := bfs.ShortestPath(g, "missing", "A"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("missing start: want ErrKeyNotFound, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	for name, mk := range graphMakers {
		t.Run(name, func(t *testing.T) {
			g := mk("A")
			res, err := bfs.BFS(g, "A")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
				t.Errorf("Order = %v; want %v", res.Order, want)
			}
			if d := res.Depth["A"]; d != 0 {
				t.Errorf("Depth[A] = %d; want 0", d)
			}
		})
	}
}

// TestBFS_DirectedLayers checks that depths follow successor edges only.
func TestBFS_DirectedLayers(t *testing.T) {
	for name, mk := range graphMakers {
		t.Run(name, func(t *testing.T) {
			// A→B, A→C, B→D, and a back edge D→A that must not shorten anything
			g := mk("A", "B", "C", "D")
			g.AddEdge("A", "B")
			g.AddEdge("A", "C")
			g.AddEdge("B", "D")
			g.AddEdge("D", "A")

			res, err := bfs.BFS(g, "A")
			if err != nil {
				t.Fatal(err)
			}
			wantDepth := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
			if !reflect.DeepEqual(res.Depth, wantDepth) {
				t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
			}
			if res.Order[0] != "A" {
				t.Errorf("first visited = %s; want A", res.Order[0])
			}
			// No edge leaves via predecessors: starting at C explores only C.
			resC, _ := bfs.BFS(g, "C")
			if want := []string{"C"}; !reflect.DeepEqual(resC.Order, want) {
				t.Errorf("from C: Order = %v; want %v", resC.Order, want)
			}
		})
	}
}

// TestShortestPath_Canonical runs the canonical scenario:
// A→B→C→A cycle plus C→D tail.
func TestShortestPath_Canonical(t *testing.T) {
	for name, mk := range graphMakers {
		t.Run(name, func(t *testing.T) {
			g := diamondGraph(mk)

			path, found, err := bfs.ShortestPath(g, "A", "D")
			if err != nil {
				t.Fatal(err)
			}
			if !found {
				t.Fatal("A→D: expected a path")
			}
			if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
				t.Errorf("path = %v; want %v", path, want)
			}

			// D has no outgoing edges: no way back.
			path, found, err = bfs.ShortestPath(g, "D", "A")
			if err != nil {
				t.Fatal(err)
			}
			if found || path != nil {
				t.Errorf("D→A: want no path, got %v (found=%v)", path, found)
			}
		})
	}
}

// TestShortestPath_StartEqualsEnd: the degenerate case is the one-element path.
func TestShortestPath_StartEqualsEnd(t *testing.T) {
	for name, mk := range graphMakers {
		t.Run(name, func(t *testing.T) {
			g := mk("X", "Y")
			path, found, err := bfs.ShortestPath(g, "X", "X")
			if err != nil || !found {
				t.Fatalf("want ([X], true, nil); got (%v, %v, %v)", path, found, err)
			}
			if want := []string{"X"}; !reflect.DeepEqual(path, want) {
				t.Errorf("path = %v; want %v", path, want)
			}
		})
	}
}

// TestShortestPath_PrefersFewerHops gives two competing routes and expects
// the three-hop one.
func TestShortestPath_PrefersFewerHops(t *testing.T) {
	for name, mk := range graphMakers {
		t.Run(name, func(t *testing.T) {
			g := mk("A", "B", "C", "D", "E", "F", "K")
			// Route 1: A→B→C→D→K (4 hops)
			g.AddEdge("A", "B")
			g.AddEdge("B", "C")
			g.AddEdge("C", "D")
			g.AddEdge("D", "K")
			// Route 2: A→E→F→K (3 hops)
			g.AddEdge("A", "E")
			g.AddEdge("E", "F")
			g.AddEdge("F", "K")

			path, found, err := bfs.ShortestPath(g, "A", "K")
			if err != nil || !found {
				t.Fatalf("unexpected (%v, %v)", found, err)
			}
			if want := []string{"A", "E", "F", "K"}; !reflect.DeepEqual(path, want) {
				t.Errorf("path = %v; want %v", path, want)
			}
		})
	}
}

// TestShortestPath_CrossBackendAgreement: both backends must return paths of
// identical length for every ordered pair of the fixture.
func TestShortestPath_CrossBackendAgreement(t *testing.T) {
	list := diamondGraph(graphMakers["list"])
	matrix := diamondGraph(graphMakers["matrix"])
	keys := []string{"A", "B", "C", "D"}

	for _, s := range keys {
		for _, e := range keys {
			lPath, lFound, err := bfs.ShortestPath(list, s, e)
			if err != nil {
				t.Fatal(err)
			}
			mPath, mFound, err := bfs.ShortestPath(matrix, s, e)
			if err != nil {
				t.Fatal(err)
			}
			if lFound != mFound {
				t.Errorf("%s→%s: found diverged (list=%v matrix=%v)", s, e, lFound, mFound)
			}
			if len(lPath) != len(mPath) {
				t.Errorf("%s→%s: path lengths diverged (list=%v matrix=%v)", s, e, lPath, mPath)
			}
		}
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and
// oversized depths.
func TestBFS_MaxDepth(t *testing.T) {
	mk := graphMakers["list"]
	g := mk("A", "B", "C")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth[string](0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth[string](10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	mk := graphMakers["matrix"]
	g := mk("A", "B", "C")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	// filter out B→C
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor[string](func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewAdjacencyList("A", "B", "C")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	var enq, deq, vis []string
	makeEntry := func(prefix, key string, d int) string {
		return prefix + ":" + key + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS[string](
		g, "A",
		bfs.WithOnEnqueue[string](func(key string, d int) { enq = append(enq, makeEntry("e", key, d)) }),
		bfs.WithOnDequeue[string](func(key string, d int) { deq = append(deq, makeEntry("d", key, d)) }),
		bfs.WithOnVisit[string](func(key string, d int) error { vis = append(vis, makeEntry("v", key, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_VisitHookAborts propagates an error returned by OnVisit.
func TestBFS_VisitHookAborts(t *testing.T) {
	g := core.NewAdjacencyList("A", "B")
	g.AddEdge("A", "B")
	boom := errors.New("boom")
	_, err := bfs.BFS[string](g, "A", bfs.WithOnVisit[string](func(key string, _ int) error {
		if key == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error propagated, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewAdjacencyMatrix("X", "Y")
	res, err := bfs.BFS(g, "X")
	if err != nil {
		t.Fatal(err)
	}
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if _, err = res.PathTo("Y"); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	keys := make([]string, 101)
	for i := range keys {
		keys[i] = fmt.Sprintf("v%d", i)
	}
	g := core.NewAdjacencyList(keys...)
	for i := 0; i < 100; i++ {
		g.AddEdge(keys[i], keys[i+1])
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_MutatingHookSurfacesIteratorFault: a hook that mutates the graph
// invalidates the walker's live iterator, which must surface as ErrNeighbors
// wrapping the core fault, not as silent corruption.
func TestBFS_MutatingHookSurfacesIteratorFault(t *testing.T) {
	g := core.NewAdjacencyList("A", "B", "C")
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")

	_, err := bfs.BFS[string](g, "A", bfs.WithOnEnqueue[string](func(key string, _ int) {
		if key == "B" {
			g.RemoveEdge("A", "C")
		}
	}))
	if !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("want ErrNeighbors, got %v", err)
	}
}
