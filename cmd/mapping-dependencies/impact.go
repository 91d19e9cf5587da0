package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark-me/mapping-dependencies/config"
	"github.com/mark-me/mapping-dependencies/core"
	"github.com/mark-me/mapping-dependencies/diagnostics"
	"github.com/mark-me/mapping-dependencies/impact"
	"github.com/mark-me/mapping-dependencies/ingest"
	"github.com/spf13/cobra"
)

func newImpactCmd() *cobra.Command {
	var (
		configPath string
		failedCSV  string
	)

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Report the downstream impact of a set of failed mapping or entity ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed []string
			for _, id := range strings.Split(failedCSV, ",") {
				if id = strings.TrimSpace(id); id != "" {
					failed = append(failed, id)
				}
			}
			code, err := runImpact(configPath, failed)
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
	cmd.Flags().StringVar(&failedCSV, "failed", "", "comma-separated ids of failed mappings or entities")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("failed")

	return cmd
}

// runImpact mirrors runRun's exit-code contract: a non-nil error is a
// structural failure (exit 1); otherwise the returned code is 0 or 2.
func runImpact(configPath string, failed []string) (int, error) {
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

	report, diags := impact.NewAnalyzer().Analyze(g, failed)
	for _, d := range diags {
		sink.Raise(d)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errStructuralFailure, err)
	}
	if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
		return 0, fmt.Errorf("%w: %v", errStructuralFailure, err)
	}

	if mem.HasErrors() {
		return 2, nil
	}
	return 0, nil
}
