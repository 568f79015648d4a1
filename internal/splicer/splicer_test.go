package splicer

import (
	"testing"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

func para(s string) *mdast.Paragraph {
	return &mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: s}}}
}

func paraText(b mdast.Block) (string, bool) {
	p, ok := b.(*mdast.Paragraph)
	if !ok || len(p.Inlines) == 0 {
		return "", false
	}
	t, ok := p.Inlines[0].(*mdast.Text)
	if !ok {
		return "", false
	}
	return t.Literal, true
}

func TestReplaceBlockReplacesParagraph(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1},
		para("first"),
		para("second"),
	}
	newContent := []mdast.Block{para("REPLACED one"), para("REPLACED two")}

	out := ReplaceBlock(blocks, 2, newContent)

	if len(out) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(out))
	}
	if text, _ := paraText(out[2]); text != "REPLACED one" {
		t.Fatalf("expected REPLACED one at index 2, got %q", text)
	}
	if text, _ := paraText(out[3]); text != "REPLACED two" {
		t.Fatalf("expected REPLACED two at index 3, got %q", text)
	}
}

func TestInsertBlockBefore(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1},
		para("first"),
		para("second"),
	}
	out, err := InsertBlock(blocks, 2, []mdast.Block{para("INSERTED")}, Before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(out))
	}
	if text, _ := paraText(out[2]); text != "INSERTED" {
		t.Fatalf("expected INSERTED at index 2, got %q", text)
	}
	if text, _ := paraText(out[3]); text != "second" {
		t.Fatalf("expected second paragraph shifted to index 3, got %q", text)
	}
}

func TestInsertBlockAfter(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1},
		para("first"),
		para("second"),
	}
	out, err := InsertBlock(blocks, 2, []mdast.Block{para("INSERTED")}, After)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := paraText(out[2]); text != "second" {
		t.Fatalf("expected second paragraph to stay at index 2, got %q", text)
	}
	if text, _ := paraText(out[3]); text != "INSERTED" {
		t.Fatalf("expected INSERTED at index 3, got %q", text)
	}
}

func TestInsertChildPrependIntoBlockQuote(t *testing.T) {
	bq := &mdast.BlockQuote{Blocks: []mdast.Block{para("original line"), para("second line")}}
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, bq}

	out, err := InsertBlock(blocks, 1, []mdast.Block{para("prepended")}, PrependChild)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out[1].(*mdast.BlockQuote)
	if len(got.Blocks) != 3 {
		t.Fatalf("expected 3 blocks inside blockquote, got %d", len(got.Blocks))
	}
	if text, _ := paraText(got.Blocks[0]); text != "prepended" {
		t.Fatalf("expected prepended line first, got %q", text)
	}
}

func TestInsertChildAppendIntoBlockQuote(t *testing.T) {
	bq := &mdast.BlockQuote{Blocks: []mdast.Block{para("original line"), para("second line")}}
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, bq}

	out, err := InsertBlock(blocks, 1, []mdast.Block{para("appended")}, AppendChild)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out[1].(*mdast.BlockQuote)
	if len(got.Blocks) != 3 {
		t.Fatalf("expected 3 blocks inside blockquote, got %d", len(got.Blocks))
	}
	if text, _ := paraText(got.Blocks[2]); text != "appended" {
		t.Fatalf("expected appended line last, got %q", text)
	}
}

func TestInsertChildIntoHeadingSection(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1},
		para("level 1 content"),
		&mdast.Heading{Level: 2},
		para("level 2 content"),
		&mdast.Heading{Level: 1},
		para("final content"),
	}

	out, err := InsertBlock(blocks, 2, []mdast.Block{para("appended to section")}, AppendChild)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("expected 7 blocks, got %d", len(out))
	}
	if text, _ := paraText(out[4]); text != "appended to section" {
		t.Fatalf("expected new content appended at end of h2 section, got %q", text)
	}
	if h, ok := out[5].(*mdast.Heading); !ok || h.Level != 1 {
		t.Fatalf("expected trailing h1 shifted to index 5, got %+v", out[5])
	}
}

func TestInsertChildOnParagraphIsInvalid(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, para("plain paragraph")}
	_, err := InsertBlock(blocks, 1, []mdast.Block{para("should fail")}, PrependChild)
	if err == nil {
		t.Fatal("expected InvalidChildInsertion error for a paragraph target")
	}
}

func listOf(texts ...string) *mdast.List {
	items := make([]*mdast.ListItem, len(texts))
	for i, s := range texts {
		items[i] = &mdast.ListItem{Blocks: []mdast.Block{para(s)}}
	}
	return &mdast.List{Items: items}
}

func itemText(t *testing.T, item *mdast.ListItem) string {
	t.Helper()
	text, ok := paraText(item.Blocks[0])
	if !ok {
		t.Fatalf("list item has no paragraph text: %+v", item)
	}
	return text
}

func TestReplaceListItemWithOne(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("first item", "second item", "third item")}
	newContent := []mdast.Block{listOf("Replaced item")}

	if err := ReplaceListItem(blocks, 1, 1, newContent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := blocks[1].(*mdast.List)
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	if got := itemText(t, list.Items[1]); got != "Replaced item" {
		t.Fatalf("expected replaced item text, got %q", got)
	}
}

func TestReplaceOneListItemWithMany(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("first item", "second item", "third item")}
	newContent := []mdast.Block{listOf("Replaced item 1", "Replaced item 2")}

	if err := ReplaceListItem(blocks, 1, 1, newContent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := blocks[1].(*mdast.List)
	if len(list.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(list.Items))
	}
	if got := itemText(t, list.Items[1]); got != "Replaced item 1" {
		t.Fatalf("expected 'Replaced item 1', got %q", got)
	}
	if got := itemText(t, list.Items[2]); got != "Replaced item 2" {
		t.Fatalf("expected 'Replaced item 2', got %q", got)
	}
	if got := itemText(t, list.Items[3]); got != "third item" {
		t.Fatalf("expected trailing item unchanged, got %q", got)
	}
}

func TestInsertListItemBeforeAndAfter(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("first item", "second item", "third item")}

	if err := InsertListItem(blocks, 1, 1, []mdast.Block{listOf("Inserted item")}, Before); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := blocks[1].(*mdast.List)
	if len(list.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(list.Items))
	}
	if got := itemText(t, list.Items[1]); got != "Inserted item" {
		t.Fatalf("expected inserted item before second, got %q", got)
	}
	if got := itemText(t, list.Items[2]); got != "second item" {
		t.Fatalf("expected second item shifted, got %q", got)
	}
}

func TestInsertListItemAppendChild(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("first item", "second item")}

	if err := InsertListItem(blocks, 1, 0, []mdast.Block{para("nested under first")}, AppendChild); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := blocks[1].(*mdast.List)
	if len(list.Items[0].Blocks) != 2 {
		t.Fatalf("expected 2 blocks nested under first item, got %d", len(list.Items[0].Blocks))
	}
	if got, _ := paraText(list.Items[0].Blocks[1]); got != "nested under first" {
		t.Fatalf("expected nested paragraph appended, got %q", got)
	}
}

func TestDeleteListItemEmptiesList(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("only item")}
	emptied, err := DeleteListItem(blocks, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !emptied {
		t.Fatal("expected list to report emptied after deleting its only item")
	}
}

func TestReplaceListItemWithNonListContentFails(t *testing.T) {
	blocks := []mdast.Block{&mdast.Heading{Level: 1}, listOf("first item")}
	err := ReplaceListItem(blocks, 1, 0, []mdast.Block{para("not a list")})
	if err == nil {
		t.Fatal("expected InvalidListItemContent error when replacement isn't a single list")
	}
}

func TestDeleteSectionRequiresHeading(t *testing.T) {
	blocks := []mdast.Block{para("not a heading")}
	_, err := DeleteSection(blocks, 0)
	if err == nil {
		t.Fatal("expected SectionRequiresHeading error")
	}
}

func TestDeleteSectionDrainsNestedSubsections(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1},
		para("level 1 content"),
		&mdast.Heading{Level: 2},
		para("level 2 content"),
		&mdast.Heading{Level: 3},
		para("level 3 content"),
		&mdast.Heading{Level: 1},
		para("final content"),
	}
	out, err := DeleteSection(blocks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 remaining blocks, got %d", len(out))
	}
	if h, ok := out[2].(*mdast.Heading); !ok || h.Level != 1 {
		t.Fatalf("expected trailing h1 to survive at index 2, got %+v", out[2])
	}
}
