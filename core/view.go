// File: view.go
// Role: Non-mutating graph views and (for views only) vertex deletion.
// Determinism:
//   - Preserves vertex/edge ids and kinds; no reordering beyond Vertices()/
//     Edges() sort rules.
// Concurrency:
//   - Read locks on the source graph; the result is a fresh, independent
//     Graph instance that callers may freely mutate.
//
// AI-HINT (file):
//   - InducedSubgraph keeps only vertices in 'keep'; an edge survives iff
//     BOTH endpoints are kept, so excluding File vertices from keep is
//     enough to drop FileEntity/FileMapping edges without an explicit
//     edge-kind filter (that's how runplan builds the ETL projection).
//   - DeleteVertices mutates its receiver in place: call it only on a
//     Graph obtained from InducedSubgraph, never on the ingest
//     store — subgraph queries return views, and deleting from a view
//     must never affect the store it was taken from.
package core

// InducedSubgraph returns a new Graph containing only the vertices whose id
// is in keep, plus every edge of g whose From and To are both in keep.
//
// Implementation:
//   - Stage 1: Under g's muVert read lock, clone every kept vertex into a
//     fresh Graph.
//   - Stage 2: Under g's muEdgeAdj read lock, re-insert every edge whose
//     endpoints both survived, via AddEdge so the output's adjacency
//     indices are rebuilt consistently rather than copied raw.
//
// Behavior highlights:
//   - An edge survives iff both endpoints are kept; excluding a vertex
//     kind from keep is enough to drop every edge touching it without a
//     separate edge-kind filter.
//
// Determinism:
//   - g is not mutated; the result is a fresh, independent Graph.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = cloneVertex(v)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		_, _ = out.AddEdge(e.From, e.To, e.Kind, out.vertices[e.From].Kind, e.Attrs)
	}
	g.muEdgeAdj.RUnlock()

	return out
}

func cloneVertex(v *Vertex) *Vertex {
	nv := &Vertex{ID: v.ID, Kind: v.Kind, Extra: v.Extra}
	if v.File != nil {
		a := *v.File
		nv.File = &a
	}
	if v.Entity != nil {
		a := *v.Entity
		nv.Entity = &a
	}
	if v.Mapping != nil {
		a := *v.Mapping
		nv.Mapping = &a
	}
	if v.Error != nil {
		a := *v.Error
		nv.Error = &a
	}
	return nv
}

// DeleteVertices removes every id in ids from g, along with all edges
// incident to it. Intended for views only (see file AI-HINT); the ingest
// store is never passed here.
// Complexity: O(V + E).
func (g *Graph) DeleteVertices(ids []string) {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	g.muVert.Lock()
	for id := range doomed {
		delete(g.vertices, id)
	}
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	for eid, e := range g.edges {
		if doomed[e.From] || doomed[e.To] {
			delete(g.edges, eid)
		}
	}
	for id := range doomed {
		for to := range g.adjOut[id] {
			delete(g.adjIn[to], id)
		}
		delete(g.adjOut, id)
		for from := range g.adjIn[id] {
			delete(g.adjOut[from], id)
		}
		delete(g.adjIn, id)
	}
	g.muEdgeAdj.Unlock()
}
