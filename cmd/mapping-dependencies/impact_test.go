package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunImpact_CleanFailureSetExitsZero(t *testing.T) {
	root := t.TempDir()
	retwDir := filepath.Join(root, "RETW")
	if err := os.MkdirAll(retwDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeRETWFile(t, retwDir, "a.json", docA)
	cfgPath := writeTestConfig(t, root, "RETW", "a.json")

	code, err := runImpact(cfgPath, []string{"m-does-not-exist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("code = %d, want 0 (unknown id is only a Warning)", code)
	}
}

func TestRunImpact_MissingConfigIsStructuralFailure(t *testing.T) {
	_, err := runImpact(filepath.Join(t.TempDir(), "nope.yaml"), []string{"x"})
	if err == nil {
		t.Fatal("want error for missing config")
	}
}
