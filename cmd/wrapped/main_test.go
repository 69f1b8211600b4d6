package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dataPath = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestOutlineEmbedded(t *testing.T) {
	out, err := execute(t, "outline")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[1], "12.5%") {
		t.Errorf("second line = %q, want 12.5%% progress", lines[1])
	}
	if !strings.HasSuffix(lines[15], "100.0%") {
		t.Errorf("last line = %q, want 100.0%% progress", lines[15])
	}
}

func TestValidateEmbedded(t *testing.T) {
	out, err := execute(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "embedded dataset: ok") {
		t.Errorf("output = %q", out)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("emotional_radar:\n  - name: Calma\n    score: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "validate", "--data", path)
	if err == nil {
		t.Fatal("expected error for a broken dataset")
	}
	if !strings.Contains(out, "emotional_radar[0].score") {
		t.Errorf("output does not name the radar score:\n%s", out)
	}
}
