// File: reachability.go
// Role: Descendants/Neighborhood/FindCycle built atop the bfs/dfs packages
//       via small adapters, rather than hand-rolled traversal, so the one
//       BFS/DFS implementation backs both directed reachability queries
//       and cycle detection.
// Determinism:
//   - Descendants/Neighborhood sort their result ascending; bfs.Walk's
//     internal visit order does not leak into the returned set.
// Concurrency:
//   - Read-only with respect to the graph; adapters take read locks via
//     the same Predecessors/Successors/Vertices methods callers would use
//     directly.
//
// AI-HINT (file):
//   - Direction here is core's own public type; toBFSDirection and
//     dfsAdapter translate it to bfs.Direction/dfs.Direction at the
//     boundary, and Graph.NeighborIDs (which takes a bfs.Direction) is
//     the one exported method in this file that carries a traversal
//     package's type.
package core

import (
	"sort"

	"github.com/mark-me/mapping-dependencies/bfs"
	"github.com/mark-me/mapping-dependencies/dfs"
)

// Direction selects which edge orientation a reachability query follows.
type Direction int

const (
	// DirOut follows edges From->To (successors).
	DirOut Direction = iota
	// DirIn follows edges To->From (predecessors).
	DirIn
)

// NeighborIDs implements bfs.Neighborer directly: *Graph can be passed to
// bfs.Walk without an adapter, since bfs.Direction and core.Direction share
// the same two-value shape (DirOut=0, DirIn=1).
func (g *Graph) NeighborIDs(id string, dir bfs.Direction) []string {
	if dir == bfs.DirIn {
		return g.Predecessors(id)
	}
	return g.Successors(id)
}

// dfsAdapter exposes a Graph as a dfs.Neighborer; kept separate from Graph
// itself because dfs defines its own local Direction type, which Go cannot
// overload against bfs.Direction on the same NeighborIDs method name.
type dfsAdapter struct{ g *Graph }

func (a dfsAdapter) AllIDs() []string { return a.g.Vertices() }

func (a dfsAdapter) NeighborIDs(id string, dir dfs.Direction) []string {
	if dir == dfs.DirIn {
		return a.g.Predecessors(id)
	}
	return a.g.Successors(id)
}

// Descendants returns the set of vertices reachable from id following dir,
// including id itself, sorted ascending.
//
// Implementation:
//   - Delegates to bfs.Walk(g, id, WithDirection(dir)) and sorts the
//     visited-order result; *Graph itself satisfies bfs.Neighborer.
//
// Returns:
//   - []string: reachable vertex ids (including id), sorted ascending.
//   - error: ErrVertexNotFound if id is unknown.
//
// Determinism:
//   - Output order is independent of bfs.Walk's internal visit order.
//
// Complexity: O(V + E).
func (g *Graph) Descendants(id string, dir Direction) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	res, err := bfs.Walk(g, id, bfs.WithDirection(toBFSDirection(dir)))
	if err != nil {
		return nil, err
	}

	out := append([]string(nil), res.Order...)
	sort.Strings(out)

	return out, nil
}

// Neighborhood returns the vertices within k hops of id (inclusive of id
// itself) following dir, sorted ascending.
//
// Inputs:
//   - id: starting vertex; must exist.
//   - dir: DirOut to follow successors, DirIn to follow predecessors.
//   - k: hop limit; k <= 0 means "no limit" and is equivalent to
//     Descendants(id, dir).
//
// Returns:
//   - []string: vertex ids within k hops (including id), sorted ascending.
//   - error: ErrVertexNotFound if id is unknown.
//
// Determinism:
//   - Output order is independent of bfs.Walk's internal visit order.
//
// Complexity: O(V + E).
func (g *Graph) Neighborhood(id string, dir Direction, k int) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	if k < 0 {
		k = 0
	}

	res, err := bfs.Walk(g, id, bfs.WithDirection(toBFSDirection(dir)), bfs.WithMaxDepth(k))
	if err != nil {
		return nil, err
	}

	out := append([]string(nil), res.Order...)
	sort.Strings(out)

	return out, nil
}

func toBFSDirection(dir Direction) bfs.Direction {
	if dir == DirIn {
		return bfs.DirIn
	}
	return bfs.DirOut
}

// FindCycle checks g, following every edge regardless of kind, for a
// cycle and returns the offending vertex ids in cycle
// order, or nil if acyclic. Intended to be called on the ETL projection
// (see package runplan), where File vertices and FileEntity/FileMapping
// edges are already excluded.
// Complexity: O(V + E).
func (g *Graph) FindCycle() ([]string, error) {
	return dfs.FindCycle(dfsAdapter{g: g})
}
