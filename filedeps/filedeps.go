// Package filedeps derives the cross-file dependency view (§4.5): a
// directed graph over FileRETW vertices only, where A -> B iff A defines
// an entity that B sources via one of its mappings (A must exist before
// B can run).
package filedeps

import "github.com/mark-me/mapping-dependencies/core"

// fileDepEdge is the synthetic edge kind used in the returned files-only
// graph; it carries no audit data of its own.
const fileDepEdge core.EdgeKind = core.EdgeFileEntity

// Build returns a new *core.Graph containing only FileRETW vertices, with
// a directed edge A -> B whenever a mapping owned by B sources an entity
// whose FileEntity edge originates in A.
//
// For each mapping m owned by file B (found via m's FileMapping in-edge),
// the backward 2-hop core.Neighborhood of m is inspected: m's direct
// source entities at depth 1, then those entities' own FileEntity in-edges
// at depth 2, keeping every FileRETW vertex reached other than B itself.
// Complexity: O(M * (V + E)) via core.Neighborhood's BFS per mapping.
func Build(g *core.Graph) *core.Graph {
	out := core.NewGraph()

	files := g.SelectKind(core.KindFile)
	for _, f := range files {
		v, err := g.Vertex(f)
		if err != nil || v.File == nil {
			continue
		}
		if _, err := out.UpsertFile(f, *v.File); err != nil {
			continue
		}
	}

	for _, mapping := range g.SelectKind(core.KindMapping) {
		owner := owningFile(g, mapping)
		if owner == "" {
			continue
		}
		nearby, err := g.Neighborhood(mapping, core.DirIn, 2)
		if err != nil {
			continue
		}
		for _, id := range nearby {
			if id == owner || id == mapping {
				continue
			}
			dv, err := g.Vertex(id)
			if err != nil || dv.Kind != core.KindFile {
				continue
			}
			_, _ = out.AddEdge(id, owner, fileDepEdge, core.KindFile, core.EdgeAttrs{})
		}
	}

	return out
}

// owningFile returns the FileRETW vertex that declared mapping via a
// FileMapping edge, or "" if none is found (should not happen for a
// well-formed graph, since every mapping is created alongside its
// FileMapping edge during ingestion).
func owningFile(g *core.Graph, mapping string) string {
	for _, pred := range g.Predecessors(mapping) {
		v, err := g.Vertex(pred)
		if err == nil && v.Kind == core.KindFile {
			return pred
		}
	}
	return ""
}
