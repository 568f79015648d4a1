package mdprinter

import (
	"strings"
	"testing"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

func TestPrintParagraphAndHeading(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Heading{Level: 1, Inlines: []mdast.Inline{&mdast.Text{Literal: "Title"}}},
		&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: "Hello world"}}},
	}
	got := Print(blocks)
	want := "# Title\n\nHello world\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintList(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.List{Items: []*mdast.ListItem{
			{Blocks: []mdast.Block{&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: "first"}}}}},
			{Blocks: []mdast.Block{&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: "second"}}}}, Task: mdast.Complete},
		}},
	}
	got := Print(blocks)
	if !strings.Contains(got, "- first") {
		t.Fatalf("expected plain item marker, got %q", got)
	}
	if !strings.Contains(got, "- [x] second") {
		t.Fatalf("expected task marker, got %q", got)
	}
}

func TestPrintBlockQuote(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.BlockQuote{Blocks: []mdast.Block{
			&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: "quoted"}}},
		}},
	}
	got := Print(blocks)
	want := "> quoted\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintGitHubAlert(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.GitHubAlert{Kind: mdast.AlertWarning, Blocks: []mdast.Block{
			&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: "careful"}}},
		}},
	}
	got := Print(blocks)
	if !strings.Contains(got, "[!WARNING]") {
		t.Fatalf("expected alert marker, got %q", got)
	}
	if !strings.Contains(got, "> careful") {
		t.Fatalf("expected alert body, got %q", got)
	}
}

func TestPrintCodeBlock(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.CodeBlock{Language: "go", Literal: "fmt.Println(1)\n"},
	}
	got := Print(blocks)
	want := "```go\nfmt.Println(1)\n```\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintCodeBlockWidensFenceAroundEmbeddedBackticks(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.CodeBlock{Language: "md", Literal: "outer\n```\ninner fenced block\n```\n"},
	}
	got := Print(blocks)
	want := "````md\nouter\n```\ninner fenced block\n```\n````\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintTable(t *testing.T) {
	blocks := []mdast.Block{
		&mdast.Table{
			Header:     []mdast.TableCell{{Inlines: []mdast.Inline{&mdast.Text{Literal: "A"}}}, {Inlines: []mdast.Inline{&mdast.Text{Literal: "B"}}}},
			Alignments: []mdast.TableAlignment{mdast.AlignLeft, mdast.AlignNone},
			Rows: [][]mdast.TableCell{
				{{Inlines: []mdast.Inline{&mdast.Text{Literal: "1"}}}, {Inlines: []mdast.Inline{&mdast.Text{Literal: "2"}}}},
			},
		},
	}
	got := Print(blocks)
	if !strings.Contains(got, "| A | B |") {
		t.Fatalf("expected header row, got %q", got)
	}
	if !strings.Contains(got, ":--- |") {
		t.Fatalf("expected left-aligned separator, got %q", got)
	}
}
