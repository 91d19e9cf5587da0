package core_test

import (
	"testing"

	"github.com/mark-me/mapping-dependencies/core"
)

func TestUpsertFile_ReplacesOnReingest(t *testing.T) {
	g := core.NewGraph()

	v, err := g.UpsertFile("f1", core.FileAttrs{Path: "a.json", OrderAdded: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.File.Path != "a.json" {
		t.Fatalf("Path = %q, want a.json", v.File.Path)
	}

	v2, err := g.UpsertFile("f1", core.FileAttrs{Path: "a-renamed.json", OrderAdded: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2.File.Path != "a-renamed.json" {
		t.Fatalf("Path after re-ingest = %q, want a-renamed.json (full replace)", v2.File.Path)
	}
	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1 (identity stable)", g.VertexCount())
	}
}

func TestUpsertEntity_MergeFillsAbsentOnly(t *testing.T) {
	g := core.NewGraph()

	// Bare source reference: only Code/CodeModel known.
	_, err := g.UpsertEntity("e1", core.EntityAttrs{Code: "E1", CodeModel: "M"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Full definition arrives later (e.g. from the owning document model).
	v, err := g.UpsertEntity("e1", core.EntityAttrs{
		Code: "E1", CodeModel: "M", Name: "Entity One", IDModel: "m1", NameModel: "Model",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Entity.Name != "Entity One" || v.Entity.IDModel != "m1" {
		t.Fatalf("fuller attrs did not fill absent fields: %+v", v.Entity)
	}

	// A later bare reference must not clobber the fuller attrs already present.
	v2, err := g.UpsertEntity("e1", core.EntityAttrs{Code: "E1", CodeModel: "M"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2.Entity.Name != "Entity One" {
		t.Fatalf("bare reference clobbered fuller attrs: %+v", v2.Entity)
	}
}

func TestUpsertEntity_KindMismatch(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.UpsertFile("x", core.FileAttrs{Path: "p"}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.UpsertEntity("x", core.EntityAttrs{Code: "C"}); err != core.ErrKindMismatch {
		t.Fatalf("want ErrKindMismatch, got %v", err)
	}
}

func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	if _, err := g.UpsertFile("f1", core.FileAttrs{Path: "p"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"e1", "e2", "e3", "e4"} {
		if _, err := g.UpsertEntity(id, core.EntityAttrs{Code: id}); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range []string{"m1", "m2", "m3"} {
		if _, err := g.UpsertMapping(id, core.MappingAttrs{Code: id}); err != nil {
			t.Fatal(err)
		}
	}
	// M1: E1->E2, M2: E1->E3, M3: (E2,E3)->E4
	mustAddEdge(t, g, "e1", "m1", core.EdgeEntitySource, core.KindEntity)
	mustAddEdge(t, g, "m1", "e2", core.EdgeEntityTarget, core.KindMapping)
	mustAddEdge(t, g, "e1", "m2", core.EdgeEntitySource, core.KindEntity)
	mustAddEdge(t, g, "m2", "e3", core.EdgeEntityTarget, core.KindMapping)
	mustAddEdge(t, g, "e2", "m3", core.EdgeEntitySource, core.KindEntity)
	mustAddEdge(t, g, "e3", "m3", core.EdgeEntitySource, core.KindEntity)
	mustAddEdge(t, g, "m3", "e4", core.EdgeEntityTarget, core.KindMapping)

	return g
}

func mustAddEdge(t *testing.T, g *core.Graph, from, to string, kind core.EdgeKind, endpointKind core.VertexKind) {
	t.Helper()
	if _, err := g.AddEdge(from, to, kind, endpointKind, core.EdgeAttrs{}); err != nil {
		t.Fatalf("AddEdge(%s,%s): %v", from, to, err)
	}
}

func TestAddEdge_IdempotentOnReingest(t *testing.T) {
	g := buildDiamond(t)
	before := g.EdgeCount()
	mustAddEdge(t, g, "e1", "m1", core.EdgeEntitySource, core.KindEntity)
	if g.EdgeCount() != before {
		t.Fatalf("EdgeCount changed on duplicate AddEdge: before=%d after=%d", before, g.EdgeCount())
	}
}

func TestDescendants_ForwardIncludesSelf(t *testing.T) {
	g := buildDiamond(t)
	desc, err := g.Descendants("e1", core.DirOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"e1", "e2", "e3", "e4", "m1", "m2", "m3"}
	assertStringSet(t, desc, want)
}

func TestDescendants_UnknownVertex(t *testing.T) {
	g := buildDiamond(t)
	if _, err := g.Descendants("nope", core.DirOut); err != core.ErrVertexNotFound {
		t.Fatalf("want ErrVertexNotFound, got %v", err)
	}
}

func TestNeighborhood_RespectsHopLimit(t *testing.T) {
	g := buildDiamond(t)

	one, err := g.Neighborhood("m3", core.DirIn, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertStringSet(t, one, []string{"m3", "e2", "e3"})

	two, err := g.Neighborhood("m3", core.DirIn, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertStringSet(t, two, []string{"m3", "e2", "e3", "m1", "m2"})
}

func TestNeighborhood_NoLimitMatchesDescendants(t *testing.T) {
	g := buildDiamond(t)

	nbhd, err := g.Neighborhood("e1", core.DirOut, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	desc, err := g.Descendants("e1", core.DirOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertStringSet(t, nbhd, desc)
}

func TestNeighborhood_UnknownVertex(t *testing.T) {
	g := buildDiamond(t)
	if _, err := g.Neighborhood("nope", core.DirOut, 1); err != core.ErrVertexNotFound {
		t.Fatalf("want ErrVertexNotFound, got %v", err)
	}
}

func TestPredecessors_DirectOnly(t *testing.T) {
	g := buildDiamond(t)
	preds := g.Predecessors("m3")
	assertStringSet(t, preds, []string{"e2", "e3"})
}

func TestInducedSubgraph_DropsFileEdges(t *testing.T) {
	g := buildDiamond(t)
	mustAddEdge(t, g, "f1", "m1", core.EdgeFileMapping, core.KindFile)
	mustAddEdge(t, g, "f1", "e1", core.EdgeFileEntity, core.KindFile)

	keep := map[string]bool{}
	for _, id := range g.Select(func(v *core.Vertex) bool {
		return v.Kind == core.KindEntity || v.Kind == core.KindMapping
	}) {
		keep[id] = true
	}

	proj := core.InducedSubgraph(g, keep)
	if proj.HasVertex("f1") {
		t.Fatalf("projection should exclude File vertices")
	}
	for _, e := range proj.Edges() {
		if e.Kind == core.EdgeFileEntity || e.Kind == core.EdgeFileMapping {
			t.Fatalf("projection retained a file edge: %+v", e)
		}
	}
}

func TestFindCycle_AcyclicDiamond(t *testing.T) {
	g := buildDiamond(t)
	cycle, err := g.FindCycle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycle != nil {
		t.Fatalf("want no cycle, got %v", cycle)
	}
}

func TestFindCycle_DetectsCycle(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"e1", "e2"} {
		if _, err := g.UpsertEntity(id, core.EntityAttrs{Code: id}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.UpsertMapping("m1", core.MappingAttrs{Code: "m1"}); err != nil {
		t.Fatal(err)
	}
	mustAddEdge(t, g, "e1", "m1", core.EdgeEntitySource, core.KindEntity)
	mustAddEdge(t, g, "m1", "e2", core.EdgeEntityTarget, core.KindMapping)
	// Close the loop: e2 feeds back into m1.
	mustAddEdge(t, g, "e2", "m1", core.EdgeEntitySource, core.KindEntity)

	cycle, err := g.FindCycle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cycle) == 0 {
		t.Fatalf("want a cycle to be detected")
	}
}

func assertStringSet(t *testing.T, got []string, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	set := make(map[string]bool, len(got))
	for _, s := range got {
		set[s] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Fatalf("missing %q in %v", w, got)
		}
	}
}
