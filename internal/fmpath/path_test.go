package fmpath

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func parseRoot(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(src), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &root
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func TestParseSegments(t *testing.T) {
	cases := []struct {
		path string
		n    int
		err  bool
	}{
		{"a.b.c", 3, false},
		{"a[0].b", 3, false},
		{"a[0][1]", 3, false},
		{"a", 1, false},
		{"", 0, true},
		{".a", 0, true},
		{"a..b", 0, true},
		{"a[x]", 0, true},
		{"tags]", 0, true},
		{"a]b", 0, true},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			segs, err := Parse(c.path)
			if c.err {
				if err == nil {
					t.Fatalf("expected error for %q", c.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segs) != c.n {
				t.Fatalf("expected %d segments, got %d", c.n, len(segs))
			}
		})
	}
}

func TestGetNested(t *testing.T) {
	root := parseRoot(t, "a:\n  b:\n    - x\n    - y\n")
	got, err := Get(root, "a.b[1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != "y" {
		t.Fatalf("expected y, got %q", got.Value)
	}
}

func TestGetMissingKey(t *testing.T) {
	root := parseRoot(t, "a: 1\n")
	if _, err := Get(root, "b"); err == nil {
		t.Fatal("expected FrontmatterKeyNotFound error")
	}
}

func TestSetAutovivifiesMappings(t *testing.T) {
	root := parseRoot(t, "a: 1\n")
	if err := Set(root, "b.c.d", scalar("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Get(root, "b.c.d")
	if err != nil {
		t.Fatalf("unexpected error after set: %v", err)
	}
	if got.Value != "hi" {
		t.Fatalf("expected hi, got %q", got.Value)
	}
}

func TestSetNeverAutovivifiesSequences(t *testing.T) {
	root := parseRoot(t, "a: 1\n")
	err := Set(root, "list[0]", scalar("x"))
	if err == nil {
		t.Fatal("expected error indexing into a missing sequence, not autovivification")
	}
}

func TestSetOverwritesExisting(t *testing.T) {
	root := parseRoot(t, "a:\n  b: old\n")
	if err := Set(root, "a.b", scalar("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := Get(root, "a.b")
	if got.Value != "new" {
		t.Fatalf("expected new, got %q", got.Value)
	}
}

func TestDeletePrunesEmptyMapping(t *testing.T) {
	root := parseRoot(t, "a:\n  b: 1\n")
	if err := Delete(root, "a.b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(root, "a"); err == nil {
		t.Fatal("expected emptied mapping 'a' to have been pruned")
	}
}

func TestDeleteKeepsNonEmptyMapping(t *testing.T) {
	root := parseRoot(t, "a:\n  b: 1\n  c: 2\n")
	if err := Delete(root, "a.b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(root, "a.c"); err != nil {
		t.Fatalf("expected a.c to survive: %v", err)
	}
}

func TestDeletePrunesEmptySequence(t *testing.T) {
	root := parseRoot(t, "a:\n  - x\n")
	if err := Delete(root, "a[0]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Get(root, "a"); err == nil {
		t.Fatal("expected emptied sequence 'a' to have been pruned")
	}
}
