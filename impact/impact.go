// Package impact implements the failure-impact analyzer (component C4):
// given a set of failed node ids, it computes the forward-reachable
// closure on the ETL projection and partitions it into failed/affected
// buckets per vertex kind.
package impact

import (
	"fmt"
	"sort"

	"github.com/mark-me/mapping-dependencies/core"
	"github.com/mark-me/mapping-dependencies/diagnostics"
)

// Bucket partitions one vertex kind's reachable set into the ids that were
// declared failed versus those merely downstream of a failure.
type Bucket struct {
	Failed   []string
	Affected []string
}

// Report is the full impact analysis result.
type Report struct {
	Mappings Bucket
	Entities Bucket
}

// Analyzer computes impact reports over a core.Graph.
type Analyzer struct{}

// NewAnalyzer returns a ready-to-use Analyzer. It is stateless.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes affected = (union of forward-reachable sets from each
// id in failed) on the ETL projection (mappings+entities joined by
// EntitySource/EntityTarget edges), and classifies every reached vertex as
// Failed (id ∈ failed) or Affected (otherwise). An id in failed that is
// not present in the graph raises an UnknownFailedNodeId diagnostic and
// contributes nothing to the result; it does not abort the analysis.
func (a *Analyzer) Analyze(g *core.Graph, failed []string) (*Report, []diagnostics.Diagnostic) {
	var diags []diagnostics.Diagnostic

	keep := make(map[string]bool)
	for _, id := range g.Select(func(v *core.Vertex) bool {
		return v.Kind == core.KindEntity || v.Kind == core.KindMapping
	}) {
		keep[id] = true
	}
	proj := core.InducedSubgraph(g, keep)

	failedSet := make(map[string]bool, len(failed))
	reached := make(map[string]bool)
	for _, f := range failed {
		if !proj.HasVertex(f) {
			diags = append(diags, diagnostics.Diagnostic{
				Severity:  diagnostics.Warning,
				Code:      diagnostics.UnknownFailedNodeId,
				Component: "impact",
				Message:   fmt.Sprintf("failed node id %q not present in graph", f),
			})
			continue
		}
		failedSet[f] = true
		desc, err := proj.Descendants(f, core.DirOut)
		if err != nil {
			continue
		}
		for _, d := range desc {
			reached[d] = true
		}
	}

	report := &Report{}
	for id := range reached {
		v, err := proj.Vertex(id)
		if err != nil {
			continue
		}
		bucket := &report.Entities
		if v.Kind == core.KindMapping {
			bucket = &report.Mappings
		}
		if failedSet[id] {
			bucket.Failed = append(bucket.Failed, id)
		} else {
			bucket.Affected = append(bucket.Affected, id)
		}
	}
	sort.Strings(report.Mappings.Failed)
	sort.Strings(report.Mappings.Affected)
	sort.Strings(report.Entities.Failed)
	sort.Strings(report.Entities.Affected)

	return report, diags
}
