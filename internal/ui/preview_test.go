package ui

import "testing"

func TestPreviewRendersWithoutError(t *testing.T) {
	out, err := Preview("# Hello\n\nWorld.\n", 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}
