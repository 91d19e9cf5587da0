// File: methods_edges.go
// Role: Edge upsert & query surface (set semantics via deterministic
//       edge ids; source/target presence is checked by callers, not
//       enforced here).
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
// Concurrency:
//   - Mutations and reads under muEdgeAdj; AddEdge auto-creates missing
//     endpoints as bare vertices under muVert first (AddVertex).
//
// AI-HINT (file):
//   - AddEdge is idempotent: re-adding (from, to, kind) is a no-op, which
//     is exactly the set semantics re-ingestion requires.
package core

import "sort"

// AddVertex inserts a bare vertex of the given kind if id is not already
// present, with no attrs populated. Used internally by AddEdge so an edge
// can never point at a missing endpoint; ingest callers normally create
// fully-attributed vertices via UpsertFile/UpsertEntity/UpsertMapping
// first, in which case this is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, kind VertexKind) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	if _, exists := g.vertices[id]; exists {
		g.muVert.Unlock()
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Kind: kind, Extra: make(map[string]any)}
	g.muVert.Unlock()

	g.bootstrapAdjacency(id)

	return nil
}

// AddEdge inserts the (from, to, kind) edge if absent.
//
// Implementation:
//   - Stage 1: Reject empty endpoints.
//   - Stage 2: Auto-vertex both endpoints with endpointKind via AddVertex
//     (a no-op if the caller already upserted them with full attrs).
//   - Stage 3: Under muEdgeAdj write lock, compute the deterministic
//     edgeKey; if already present, return it unchanged (idempotent
//     upsert). Otherwise register the Edge and update both adjacency
//     indices (adjOut[from][to], adjIn[to][from]) together.
//
// Behavior highlights:
//   - Re-adding the same (from, to, kind) triple is a no-op, giving set
//     semantics for edges without a separate dedup pass.
//
// Inputs:
//   - from, to: endpoint vertex ids; must be non-empty.
//   - kind: the edge's role.
//   - endpointKind: the VertexKind to use if an endpoint must be
//     auto-vertexed.
//   - attrs: edge audit data; ignored on a repeat upsert.
//
// Returns:
//   - string: the edge's deterministic id.
//   - error: ErrEmptyVertexID, or whatever AddVertex returns.
//
// Determinism:
//   - edgeKey(from, to, kind) is a pure function of its inputs, so the
//     same logical edge always maps to the same id regardless of
//     insertion order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string, kind EdgeKind, endpointKind VertexKind, attrs EdgeAttrs) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := g.AddVertex(from, endpointKind); err != nil {
		return "", err
	}
	if err := g.AddVertex(to, endpointKind); err != nil {
		return "", err
	}

	eid := edgeKey(from, to, kind)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[eid]; exists {
		return eid, nil
	}

	e := &Edge{ID: eid, From: from, To: to, Kind: kind, Attrs: attrs}
	g.edges[eid] = e

	if g.adjOut[from] == nil {
		g.adjOut[from] = make(map[string]map[string]struct{})
	}
	if g.adjOut[from][to] == nil {
		g.adjOut[from][to] = make(map[string]struct{})
	}
	g.adjOut[from][to][eid] = struct{}{}

	if g.adjIn[to] == nil {
		g.adjIn[to] = make(map[string]map[string]struct{})
	}
	if g.adjIn[to][from] == nil {
		g.adjIn[to][from] = make(map[string]struct{})
	}
	g.adjIn[to][from][eid] = struct{}{}

	return eid, nil
}

// HasEdge reports whether an edge (from, to, kind) exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string, kind EdgeKind) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[edgeKey(from, to, kind)]
	return ok
}

// Edges returns all edges, sorted by Edge.ID asc for reproducible output.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Predecessors returns the direct in-neighbor vertex IDs of id (vertices
// u such that an edge u->id exists), sorted ascending.
//
// Determinism:
//   - Always sorted ascending; safe to diff across calls or assert in
//     tests without normalizing order first.
//
// Complexity: O(d log d), where d is id's in-degree.
func (g *Graph) Predecessors(id string) []string {
	return g.directNeighbors(id, g.adjIn)
}

// Successors returns the direct out-neighbor vertex IDs of id (vertices v
// such that an edge id->v exists), sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Successors(id string) []string {
	return g.directNeighbors(id, g.adjOut)
}

func (g *Graph) directNeighbors(id string, idx map[string]map[string]map[string]struct{}) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	nbrs := idx[id]
	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out
}
