package core_test

import (
	"fmt"

	"github.com/mark-me/mapping-dependencies/core"
)

// Example_descendants demonstrates reverse reachability: listing every
// ancestor of a mapping (entities and mappings, the mapping itself included).
func Example_descendants() {
	g := core.NewGraph()
	g.UpsertEntity("E1", core.EntityAttrs{Code: "E1"})
	g.UpsertEntity("E2", core.EntityAttrs{Code: "E2"})
	g.UpsertMapping("M1", core.MappingAttrs{Code: "M1"})
	g.UpsertMapping("M2", core.MappingAttrs{Code: "M2"})
	g.AddEdge("E1", "M1", core.EdgeEntitySource, core.KindMapping, core.EdgeAttrs{})
	g.AddEdge("M1", "E2", core.EdgeEntityTarget, core.KindEntity, core.EdgeAttrs{})
	g.AddEdge("E2", "M2", core.EdgeEntitySource, core.KindMapping, core.EdgeAttrs{})

	ancestors, err := g.Descendants("M2", core.DirIn)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ancestors)
	// Output:
	// [E1 E2 M1 M2]
}
