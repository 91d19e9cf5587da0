// File: methods_vertices.go
// Role: Vertex upsert & query surface (set semantics on edges, no derived
//       attributes stored on the vertex).
//
// Determinism:
//   - Vertices()/Select() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency bootstrap under
//     muEdgeAdj to keep both indices consistent for later edge ops.
//
// AI-HINT (file):
//   - UpsertFile always replaces attributes (file re-ingestion keeps
//     identity but refreshes content).
//   - UpsertEntity/UpsertMapping merge: only fields the existing vertex
//     doesn't already have are filled in from the new attrs.
package core

import "sort"

// UpsertFile inserts or replaces the FileRETW vertex for id.
//
// Implementation:
//   - Stage 1: Reject an empty id.
//   - Stage 2: Under muVert write lock, look up id; if it already exists
//     under a different Kind, fail with ErrKindMismatch.
//   - Stage 3: If new, allocate the Vertex and bootstrap its adjacency
//     buckets; either way, replace File wholesale with a copy of attrs.
//
// Behavior highlights:
//   - Re-ingesting the same path (same id) replaces its attributes
//     wholesale; the vertex identity is unaffected, unlike
//     UpsertEntity/UpsertMapping's merge-only-absent-fields behavior.
//
// Inputs:
//   - id: stable file identifier (see package hashid); must be non-empty.
//   - attrs: the file's current attributes.
//
// Returns:
//   - *Vertex: the upserted vertex.
//   - error: ErrEmptyVertexID or ErrKindMismatch.
//
// Determinism:
//   - Deterministic given (id, attrs); independent of call order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) UpsertFile(id string, attrs FileAttrs) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if exists && v.Kind != KindFile {
		return nil, ErrKindMismatch
	}
	if !exists {
		v = &Vertex{ID: id, Kind: KindFile, Extra: make(map[string]any)}
		g.vertices[id] = v
		g.bootstrapAdjacency(id)
	}
	a := attrs
	v.File = &a

	return v, nil
}

// UpsertEntity inserts the Entity vertex for id if absent, or fills any
// zero-value fields of its existing attrs from attrs.
//
// Implementation:
//   - Stage 1: Reject an empty id.
//   - Stage 2: Under muVert write lock, look up id; fail on kind mismatch.
//   - Stage 3: If new, allocate the Vertex with a copy of attrs and
//     bootstrap adjacency; if existing, delegate to EntityAttrs.merge so
//     already-populated fields are never clobbered.
//
// Behavior highlights:
//   - First full insertion wins: a later bare source reference (mostly
//     zero-value attrs) cannot erase fields populated by an earlier,
//     fuller upsert, regardless of ingestion order.
//
// Inputs:
//   - id: stable entity identifier; must be non-empty.
//   - attrs: the entity attributes known at this call site.
//
// Returns:
//   - *Vertex: the upserted vertex.
//   - error: ErrEmptyVertexID or ErrKindMismatch.
//
// Determinism:
//   - Deterministic: merge only ever looks at (existing, incoming), never
//     at iteration or arrival order beyond that pair.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) UpsertEntity(id string, attrs EntityAttrs) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if exists && v.Kind != KindEntity {
		return nil, ErrKindMismatch
	}
	if !exists {
		a := attrs
		v = &Vertex{ID: id, Kind: KindEntity, Entity: &a, Extra: make(map[string]any)}
		g.vertices[id] = v
		g.bootstrapAdjacency(id)
		return v, nil
	}
	if v.Entity == nil {
		v.Entity = &EntityAttrs{}
	}
	v.Entity.merge(attrs)

	return v, nil
}

// UpsertMapping inserts the Mapping vertex for id if absent, or fills any
// zero-value fields of its existing attrs from attrs. Mapping identity is
// file-local (see package hashid), so collisions across files never occur.
//
// Complexity: O(1) amortized.
func (g *Graph) UpsertMapping(id string, attrs MappingAttrs) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if exists && v.Kind != KindMapping {
		return nil, ErrKindMismatch
	}
	if !exists {
		a := attrs
		v = &Vertex{ID: id, Kind: KindMapping, Mapping: &a, Extra: make(map[string]any)}
		g.vertices[id] = v
		g.bootstrapAdjacency(id)
		return v, nil
	}
	if v.Mapping == nil {
		v.Mapping = &MappingAttrs{}
	}
	v.Mapping.merge(attrs)

	return v, nil
}

// bootstrapAdjacency ensures empty forward/reverse adjacency buckets exist
// for id so later edge operations can rely on the invariant that every
// known vertex has a (possibly empty) entry in both indices.
//
// Notes:
//   - Called while the caller still holds only muVert. This is safe
//     because bootstrapAdjacency only ever initializes a fresh map for a
//     brand new id; vertex creation and its own adjacency bootstrap never
//     race each other, so the separate muEdgeAdj lock here exists only to
//     keep the map write itself non-racy against concurrent edge
//     operations, not to order it against vertex creation.
func (g *Graph) bootstrapAdjacency(id string) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if g.adjOut[id] == nil {
		g.adjOut[id] = make(map[string]map[string]struct{})
	}
	if g.adjIn[id] == nil {
		g.adjIn[id] = make(map[string]map[string]struct{})
	}
}

// HasVertex reports whether the vertex id exists (empty id => false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the vertex for id, or ErrVertexNotFound.
//
// Returns:
//   - *Vertex: the stored vertex; callers must not mutate it in place.
//   - error: ErrVertexNotFound if id is unknown.
//
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Determinism:
//   - Always sorted; safe to diff across calls or snapshot in tests.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices currently in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// Select returns the IDs, sorted ascending, of every vertex for which pred
// returns true. pred must be pure (must not mutate the graph); it runs
// while muVert is held for reading.
//
// Complexity: O(V).
func (g *Graph) Select(pred func(*Vertex) bool) []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var out []string
	for id, v := range g.vertices {
		if pred(v) {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// SelectKind returns the IDs, sorted ascending, of every vertex of the
// given kind. Complexity: O(V).
func (g *Graph) SelectKind(kind VertexKind) []string {
	return g.Select(func(v *Vertex) bool { return v.Kind == kind })
}
