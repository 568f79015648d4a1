package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsBatchFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ops.yaml", true},
		{"ops.YML", true},
		{"ops.json", true},
		{"ops.txt", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBatchFile(tt.name); got != tt.want {
				t.Errorf("isBatchFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyFileAppliesBatchToTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(target, []byte("# Title\n\nFirst.\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	batch := filepath.Join(dir, "ops.yaml")
	batchContent := `
- op: insert
  position: after
  selector:
    select_contains: First.
  content: |
    Second.
`
	if err := os.WriteFile(batch, []byte(batchContent), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	w := New(target, dir, nil)
	if err := w.applyFile(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if !strings.Contains(string(got), "Second.") {
		t.Fatalf("expected inserted content, got %q", got)
	}
}
