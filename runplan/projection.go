package runplan

import "github.com/mark-me/mapping-dependencies/core"

// buildProjection returns the ETL projection of g: mappings and entities
// connected only by EntitySource/EntityTarget edges (File vertices and
// their edges are excluded simply by leaving File ids out of keep, per
// core.InducedSubgraph's edge-retention rule). Isolated entities (no
// incident ETL edge once the projection is built) are then pruned.
// Returns ErrNoFlow if no mappings remain.
func buildProjection(g *core.Graph) (*core.Graph, error) {
	keep := make(map[string]bool)
	for _, id := range g.Select(func(v *core.Vertex) bool {
		return v.Kind == core.KindEntity || v.Kind == core.KindMapping
	}) {
		keep[id] = true
	}

	proj := core.InducedSubgraph(g, keep)

	var isolated []string
	for _, id := range proj.SelectKind(core.KindEntity) {
		if len(proj.Predecessors(id)) == 0 && len(proj.Successors(id)) == 0 {
			isolated = append(isolated, id)
		}
	}
	proj.DeleteVertices(isolated)

	if len(proj.SelectKind(core.KindMapping)) == 0 {
		return nil, ErrNoFlow
	}

	return proj, nil
}
