package transaction

import (
	"testing"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

func strp(s string) *string { return &s }

func para(s string) *mdast.Paragraph {
	return &mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: s}}}
}

func paraText(b mdast.Block) string {
	p, ok := b.(*mdast.Paragraph)
	if !ok || len(p.Inlines) == 0 {
		return ""
	}
	t, ok := p.Inlines[0].(*mdast.Text)
	if !ok {
		return ""
	}
	return t.Literal
}

func sampleDoc() *Document {
	return &Document{Blocks: []mdast.Block{
		&mdast.Heading{Level: 1},
		para("first paragraph"),
		para("second paragraph"),
		&mdast.Heading{Level: 2},
		para("third paragraph"),
	}}
}

func TestApplyInsertAfter(t *testing.T) {
	result, _, err := Apply(sampleDoc(), []Operation{
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("first")},
			Position: After,
			Content:  "INSERTED",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paraText(result.Blocks[2]) != "INSERTED" {
		t.Fatalf("expected inserted paragraph at index 2, got %q", paraText(result.Blocks[2]))
	}
	if paraText(result.Blocks[3]) != "second paragraph" {
		t.Fatalf("expected second paragraph shifted to index 3, got %q", paraText(result.Blocks[3]))
	}
}

func TestApplySectionDeleteWiredThroughDeleteOp(t *testing.T) {
	result, _, err := Apply(sampleDoc(), []Operation{
		{
			Op:       Delete,
			Selector: &SelectorDTO{Type: strp("h2")},
			Section:  true,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Blocks) != 3 {
		t.Fatalf("expected the h2 section drained (3 blocks left), got %d", len(result.Blocks))
	}
}

func TestApplyPlainDeleteWithoutSectionOnlyRemovesHeading(t *testing.T) {
	result, _, err := Apply(sampleDoc(), []Operation{
		{
			Op:       Delete,
			Selector: &SelectorDTO{Type: strp("h2")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Blocks) != 4 {
		t.Fatalf("expected only the heading removed (4 blocks left), got %d", len(result.Blocks))
	}
	if paraText(result.Blocks[3]) != "third paragraph" {
		t.Fatalf("expected the section body to survive a non-section delete, got %q", paraText(result.Blocks[3]))
	}
}

func TestApplyUntilIgnoresEarlierMatch(t *testing.T) {
	doc := &Document{Blocks: []mdast.Block{
		&mdast.Heading{Level: 2},  // 0: landmark BEFORE the anchor
		para("anchor paragraph"),  // 1
		para("middle paragraph"),  // 2
		&mdast.Heading{Level: 2},  // 3: landmark AFTER the anchor
		para("trailing paragraph"), // 4
	}}

	result, _, err := Apply(doc, []Operation{
		{
			Op:       Delete,
			Selector: &SelectorDTO{Contains: strp("anchor")},
			Until:    &SelectorDTO{Type: strp("h2")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The range runs from the anchor up to, not including, the h2 after it:
	// the h2 before the anchor must not be treated as the range end, and the
	// until landmark itself survives.
	if len(result.Blocks) != 3 {
		t.Fatalf("expected 3 blocks to survive, got %d: %+v", len(result.Blocks), result.Blocks)
	}
	if _, ok := result.Blocks[0].(*mdast.Heading); !ok {
		t.Fatalf("expected the leading heading to survive, got %+v", result.Blocks[0])
	}
	if _, ok := result.Blocks[1].(*mdast.Heading); !ok {
		t.Fatalf("expected the until landmark heading to survive, got %+v", result.Blocks[1])
	}
	if paraText(result.Blocks[2]) != "trailing paragraph" {
		t.Fatalf("expected trailing paragraph to survive, got %q", paraText(result.Blocks[2]))
	}
}

func TestApplyAliasAndRefAcrossOperations(t *testing.T) {
	doc := &Document{Blocks: []mdast.Block{
		&mdast.Heading{Level: 1},
		para("anchor paragraph"),
		para("target paragraph"),
	}}

	result, _, err := Apply(doc, []Operation{
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("anchor"), Alias: "anchor"},
			Position: After,
			Content:  "unused marker",
		},
		{
			Op: Insert,
			Selector: &SelectorDTO{
				Contains: strp("target"),
				After:    &SelectorDTO{SelectorRef: "anchor"},
			},
			Position: After,
			Content:  "AFTER-REF-INSERTED",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, b := range result.Blocks {
		if paraText(b) == "AFTER-REF-INSERTED" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a block inserted via selector_ref, got %+v", result.Blocks)
	}
}

func TestApplyUnknownAliasRefErrors(t *testing.T) {
	_, _, err := Apply(sampleDoc(), []Operation{
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("first"), After: &SelectorDTO{SelectorRef: "never-defined"}},
			Position: After,
			Content:  "x",
		},
	})
	if err == nil {
		t.Fatal("expected SelectorAliasNotDefined error")
	}
}

func TestApplyAmbiguityAccumulatesAcrossOperations(t *testing.T) {
	doc := &Document{Blocks: []mdast.Block{
		&mdast.Heading{Level: 1},
		para("repeat"),
		para("repeat"),
		para("unique"),
	}}

	_, ambiguous, err := Apply(doc, []Operation{
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("unique")},
			Position: After,
			Content:  "fine, unambiguous",
		},
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("repeat")},
			Position: After,
			Content:  "matches twice",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ambiguous {
		t.Fatal("expected ambiguous=true once any operation in the batch matched ambiguously")
	}
}

func TestApplyRollsBackEntireBatchOnFailure(t *testing.T) {
	doc := sampleDoc()
	original := len(doc.Blocks)

	_, _, err := Apply(doc, []Operation{
		{
			Op:       Insert,
			Selector: &SelectorDTO{Contains: strp("first")},
			Position: After,
			Content:  "this one succeeds",
		},
		{
			Op:       Delete,
			Selector: &SelectorDTO{Contains: strp("does-not-exist")},
		},
	})
	if err == nil {
		t.Fatal("expected the second operation's NodeNotFound to fail the whole batch")
	}
	if len(doc.Blocks) != original {
		t.Fatalf("expected the caller's document untouched after a failed batch, got %d blocks, want %d", len(doc.Blocks), original)
	}
}
