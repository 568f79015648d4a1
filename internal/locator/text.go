// Package locator resolves a selector against a parsed block tree: deriving
// matchable text, recognizing block-type tokens, reducing scope modifiers
// to a concrete window, and enumerating/choosing matches.
package locator

import (
	"strings"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// BlockText derives the plain-text surface of a block used for
// select_contains/select_regex matching.
func BlockText(b mdast.Block) string {
	switch v := b.(type) {
	case *mdast.Paragraph:
		return inlinesText(v.Inlines)
	case *mdast.Heading:
		return inlinesText(v.Inlines)
	case *mdast.BlockQuote:
		return joinBlockTexts(v.Blocks)
	case *mdast.List:
		texts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			texts = append(texts, ListItemText(item))
		}
		return strings.Join(texts, "\n")
	case *mdast.CodeBlock:
		return v.Literal
	case *mdast.HtmlBlock:
		return ""
	case *mdast.Definition:
		return ""
	case *mdast.Table:
		return tableText(v)
	case *mdast.FootnoteDefinition:
		return joinBlockTexts(v.Blocks)
	case *mdast.GitHubAlert:
		return joinBlockTexts(v.Blocks)
	case *mdast.ThematicBreak:
		return ""
	case *mdast.Empty:
		return ""
	default:
		return ""
	}
}

func joinBlockTexts(blocks []mdast.Block) string {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		texts = append(texts, BlockText(b))
	}
	return strings.Join(texts, "\n")
}

func tableText(t *mdast.Table) string {
	rowText := func(cells []mdast.TableCell) string {
		parts := make([]string, 0, len(cells))
		for _, c := range cells {
			parts = append(parts, inlinesText(c.Inlines))
		}
		return strings.Join(parts, "\t")
	}

	rows := make([]string, 0, 1+len(t.Rows))
	rows = append(rows, rowText(t.Header))
	for _, row := range t.Rows {
		rows = append(rows, rowText(row))
	}
	return strings.Join(rows, "\n")
}

// ListItemText derives the plain-text surface of a list item: its block
// texts joined by "\n", prefixed by "[ ] "/"[x] " for task items, or the
// bare checkbox marker when the body is empty.
func ListItemText(item *mdast.ListItem) string {
	body := joinBlockTexts(item.Blocks)

	var prefix string
	switch item.Task {
	case mdast.Incomplete:
		prefix = "[ ] "
	case mdast.Complete:
		prefix = "[x] "
	default:
		return body
	}

	if body == "" {
		return strings.TrimSuffix(prefix, " ")
	}
	return prefix + body
}

func inlinesText(inlines []mdast.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		b.WriteString(inlineText(in))
	}
	return b.String()
}

func inlineText(in mdast.Inline) string {
	switch v := in.(type) {
	case *mdast.Text:
		return v.Literal
	case *mdast.Emphasis:
		return inlinesText(v.Children)
	case *mdast.Strong:
		return inlinesText(v.Children)
	case *mdast.Strikethrough:
		return inlinesText(v.Children)
	case *mdast.Link:
		return inlinesText(v.Children)
	case *mdast.LinkReference:
		return inlinesText(v.Children)
	case *mdast.Image:
		return inlinesText(v.Children)
	case *mdast.Code:
		return v.Literal
	case *mdast.LineBreak:
		return ""
	case *mdast.HTML:
		return ""
	case *mdast.Autolink:
		return ""
	case *mdast.FootnoteReference:
		return ""
	default:
		return ""
	}
}
