// Package mapping_dependencies derives run plans and impact reports from
// RETW extracts: a logical data model plus the mappings that transform
// its entities.
//
// The pipeline is four layered components, each its own package:
//
//	ingest/   — reads RETW JSON files and populates the dependency graph
//	core/     — the typed vertex/edge store (FileRETW, Entity, Mapping)
//	runplan/  — derives run_level/run_level_stage execution order
//	impact/   — computes the downstream fallout of a set of failed nodes
//
// filedeps/ derives a files-only dependency view from the same graph,
// config/ loads the orchestrator's YAML configuration, and
// cmd/mapping-dependencies wires all of the above into a CLI.
//
//	go get github.com/mark-me/mapping-dependencies
package mapping_dependencies
