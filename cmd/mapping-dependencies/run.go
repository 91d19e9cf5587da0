package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark-me/mapping-dependencies/config"
	"github.com/mark-me/mapping-dependencies/core"
	"github.com/mark-me/mapping-dependencies/diagnostics"
	"github.com/mark-me/mapping-dependencies/filedeps"
	"github.com/mark-me/mapping-dependencies/ingest"
	"github.com/mark-me/mapping-dependencies/runplan"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest configured RETW files and derive a run plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runRun(configPath, dryRun)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the orchestrator configuration file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "ingest and validate without writing run-plan/file-dependency artifacts")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// runRun drives the extract -> build run plan -> report diagnostics
// pipeline. It returns a non-nil error for a structural failure (exit 1
// at the call site); otherwise exit code 0 for a clean run or 2 for a
// valid plan with accumulated ERROR-severity diagnostics.
func runRun(configPath string, dryRun bool) (int, error) {
	log := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return 0, fmt.Errorf("%w: loading config: %v", errStructuralFailure, err)
	}

	mem := diagnostics.NewMemorySink()
	sink := diagnostics.NewMultiSink(diagnostics.NewZerologSink(log), mem)

	paths := make([]string, 0, len(cfg.PowerDesigner.Files))
	for _, f := range cfg.PowerDesigner.Files {
		paths = append(paths, filepath.Join(cfg.FolderIntermediateRoot, cfg.Extractor.Folder, f))
	}

	g := core.NewGraph()
	ingest.New(g, sink).Ingest(context.Background(), paths)

	plan, err := runplan.NewBuilder().Build(g)
	if err != nil {
		var cyclic *runplan.CyclicError
		switch {
		case errors.As(err, &cyclic):
			sink.Raise(diagnostics.Diagnostic{
				Severity: diagnostics.Error, Code: diagnostics.CyclicGraph, Component: "runplan",
				Message: fmt.Sprintf("cyclic ETL projection: %v", cyclic.Cycle),
			})
		case errors.Is(err, runplan.ErrNoFlow):
			sink.Raise(diagnostics.Diagnostic{
				Severity: diagnostics.Error, Code: diagnostics.NoFlow, Component: "runplan",
				Message: err.Error(),
			})
		}
		return 0, fmt.Errorf("%w: %v", errStructuralFailure, err)
	}

	deps := filedeps.Build(g)

	if !dryRun {
		versionRoot := filepath.Join(cfg.FolderIntermediateRoot, cfg.Title)
		version, err := config.NextIntermediateVersion(versionRoot)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errStructuralFailure, err)
		}
		outDir := filepath.Join(versionRoot, version)
		if err := writeArtifacts(outDir, plan, deps); err != nil {
			return 0, fmt.Errorf("%w: %v", errStructuralFailure, err)
		}
		log.Info().Str("dir", outDir).Msg("wrote run-plan artifacts")
	}

	log.Info().Int("mappings", len(plan.Mappings)).Int("diagnostics", len(mem.All())).Msg("run complete")

	if mem.HasErrors() {
		return 2, nil
	}

	return 0, nil
}

func writeArtifacts(dir string, plan *runplan.Plan, deps *core.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	planData, err := json.MarshalIndent(plan.MappingOrder(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "run_plan.json"), planData, 0o644); err != nil {
		return err
	}

	type fileDepEdge struct{ From, To string }
	edges := make([]fileDepEdge, 0, deps.EdgeCount())
	for _, e := range deps.Edges() {
		edges = append(edges, fileDepEdge{From: e.From, To: e.To})
	}
	depsData, err := json.MarshalIndent(edges, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "file_dependencies.json"), depsData, 0o644)
}
