// Package runplan implements the run-plan builder (component C3): it
// derives, for every mapping in the ETL projection, a (RunLevel,
// RunLevelStage) pair so that mappings sharing a (level, stage) may run in
// parallel without source contention, and emits them sorted by
// (RunLevel, RunLevelStage, Id).
package runplan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mark-me/mapping-dependencies/core"
)

// ErrNoFlow is returned when no mappings remain once isolated entities are
// pruned from the ETL projection.
var ErrNoFlow = errors.New("runplan: no mappings to run (NoFlow)")

// CyclicError is returned when the ETL projection violates acyclicity
// (acyclicity); Cycle carries the offending vertex ids in cycle order.
type CyclicError struct {
	Cycle []string
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("runplan: cyclic ETL projection: %v", e.Cycle)
}

// MappingRecord is one row of the emitted run plan: a mapping's identity
// and attributes, flattened alongside its derived RunLevel/RunLevelStage
// (never stored on the core.Vertex itself) so JSON serialization matches
// the external "all mapping attributes plus RunLevel/RunLevelStage"
// array shape.
type MappingRecord struct {
	Id string `json:"Id"`
	core.MappingAttrs
	RunLevel      int `json:"RunLevel"`
	RunLevelStage int `json:"RunLevelStage"`
}

// Plan is the full, ordered run plan.
type Plan struct {
	Mappings []MappingRecord
}

// MappingOrder returns the plan's mapping records, already sorted by
// (RunLevel, RunLevelStage, Id); this is the externally documented
// array a caller serializes directly to JSON.
func (p *Plan) MappingOrder() []MappingRecord {
	return p.Mappings
}

// Builder derives a Plan from a core.Graph.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder. It is stateless; a single
// value may be reused across graphs.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build derives the run plan for g. Returns ErrNoFlow if no mappings
// remain after isolated-entity pruning, or a *CyclicError if the ETL
// projection is cyclic.
func (b *Builder) Build(g *core.Graph) (*Plan, error) {
	proj, err := buildProjection(g)
	if err != nil {
		return nil, err
	}

	if cycle, err := proj.FindCycle(); err != nil {
		return nil, err
	} else if cycle != nil {
		return nil, &CyclicError{Cycle: cycle}
	}

	levels, err := computeRunLevels(proj)
	if err != nil {
		return nil, err
	}

	stages := computeRunLevelStages(proj, levels)

	records := make([]MappingRecord, 0, len(levels))
	for id, level := range levels {
		v, err := proj.Vertex(id)
		if err != nil {
			continue
		}
		records = append(records, MappingRecord{
			Id:            id,
			MappingAttrs:  *v.Mapping,
			RunLevel:      level,
			RunLevelStage: stages[id],
		})
	}

	sort.Slice(records, func(i, j int) bool {
		a, c := records[i], records[j]
		if a.RunLevel != c.RunLevel {
			return a.RunLevel < c.RunLevel
		}
		if a.RunLevelStage != c.RunLevelStage {
			return a.RunLevelStage < c.RunLevelStage
		}
		return a.Id < c.Id
	})

	return &Plan{Mappings: records}, nil
}
