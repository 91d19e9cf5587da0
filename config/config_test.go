package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark-me/mapping-dependencies/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MinimalValidDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
title: demo
folder_intermediate_root: /tmp/out
power_designer:
  folder: pd
  files:
    - model.ldm
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Title != "demo" {
		t.Fatalf("Title = %q, want demo", cfg.Title)
	}
	if cfg.Extractor.Folder != "RETW" {
		t.Fatalf("Extractor.Folder = %q, want default RETW", cfg.Extractor.Folder)
	}
	if len(cfg.PowerDesigner.Files) != 1 || cfg.PowerDesigner.Files[0] != "model.ldm" {
		t.Fatalf("PowerDesigner.Files = %v", cfg.PowerDesigner.Files)
	}
}

func TestLoad_MissingTitleFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
folder_intermediate_root: /tmp/out
power_designer:
  folder: pd
  files:
    - model.ldm
`)

	_, err := config.Load(path)
	if !errors.Is(err, config.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestLoad_MissingFolderIntermediateRootFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
title: demo
power_designer:
  folder: pd
  files:
    - model.ldm
`)

	_, err := config.Load(path)
	if !errors.Is(err, config.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestLoad_ExplicitExtractorFolderNotOverridden(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
title: demo
folder_intermediate_root: /tmp/out
power_designer:
  folder: pd
  files:
    - model.ldm
extractor:
  folder: custom
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extractor.Folder != "custom" {
		t.Fatalf("Extractor.Folder = %q, want custom", cfg.Extractor.Folder)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestNextIntermediateVersion_EmptyRoot(t *testing.T) {
	v, err := config.NextIntermediateVersion(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "v1.0.0" {
		t.Fatalf("version = %q, want v1.0.0", v)
	}
}

func TestNextIntermediateVersion_NonexistentRoot(t *testing.T) {
	v, err := config.NextIntermediateVersion(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "v1.0.0" {
		t.Fatalf("version = %q, want v1.0.0", v)
	}
}

func TestNextIntermediateVersion_IncrementsLatestPatch(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"v1.0.0", "v1.0.1", "v1.2.0", "not-a-version"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	v, err := config.NextIntermediateVersion(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "v1.2.1" {
		t.Fatalf("version = %q, want v1.2.1", v)
	}
}
