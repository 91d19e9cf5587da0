package runplan

import "github.com/mark-me/mapping-dependencies/core"

// computeRunLevels derives run_level(v) for every mapping in proj: the
// number of mappings on the longest ancestor chain ending at v (including
// v itself) minus one. Mappings with no mapping ancestor are level 0.
// proj must be acyclic (Build checks this first).
func computeRunLevels(proj *core.Graph) (map[string]int, error) {
	chain := make(map[string]int)
	var longest func(id string) int
	longest = func(id string) int {
		if n, ok := chain[id]; ok {
			return n
		}
		n := 0
		for _, p := range proj.Predecessors(id) {
			n = max(n, longest(p))
		}
		if v, err := proj.Vertex(id); err == nil && v.Kind == core.KindMapping {
			n++
		}
		chain[id] = n
		return n
	}
	levels := make(map[string]int)
	for _, id := range proj.SelectKind(core.KindMapping) {
		levels[id] = longest(id) - 1
	}
	return levels, nil
}
