// Package mdprinter renders an internal/mdast tree back to Markdown
// source. No library in the retrieved pack renders an arbitrary AST to
// Markdown text (goldmark itself is parse-and-render-to-HTML only), so
// this is hand-written, grounded on original_source/md-splice-lib/src's
// printer conventions: ATX headings, zero-indent list markers, and fenced
// code blocks throughout.
package mdprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// Print renders blocks to Markdown source, one blank line between
// top-level blocks.
func Print(blocks []mdast.Block) string {
	var sb strings.Builder
	printBlocks(&sb, blocks, "")
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func printBlocks(sb *strings.Builder, blocks []mdast.Block, indent string) {
	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		printBlock(sb, b, indent)
	}
}

func printBlock(sb *strings.Builder, b mdast.Block, indent string) {
	switch v := b.(type) {
	case *mdast.Empty:
		return
	case *mdast.Paragraph:
		writeIndented(sb, printInlines(v.Inlines), indent)
		sb.WriteString("\n")
	case *mdast.Heading:
		marker := strings.Repeat("#", v.Level)
		writeIndented(sb, marker+" "+printInlines(v.Inlines), indent)
		sb.WriteString("\n")
	case *mdast.ThematicBreak:
		writeIndented(sb, "---", indent)
		sb.WriteString("\n")
	case *mdast.BlockQuote:
		printContainer(sb, v.Blocks, indent)
	case *mdast.GitHubAlert:
		marker := "[!" + strings.ToUpper(v.Kind.String()) + "]"
		withMarker := append([]mdast.Block{&mdast.Paragraph{Inlines: []mdast.Inline{&mdast.Text{Literal: marker}}}}, v.Blocks...)
		printContainer(sb, withMarker, indent)
	case *mdast.List:
		printList(sb, v, indent)
	case *mdast.CodeBlock:
		printCodeBlock(sb, v, indent)
	case *mdast.HtmlBlock:
		writeIndented(sb, strings.TrimRight(v.Literal, "\n"), indent)
		sb.WriteString("\n")
	case *mdast.Definition:
		line := fmt.Sprintf("[%s]: %s", v.Label, v.URL)
		if v.Title != "" {
			line += fmt.Sprintf(" %q", v.Title)
		}
		writeIndented(sb, line, indent)
		sb.WriteString("\n")
	case *mdast.Table:
		printTable(sb, v, indent)
	case *mdast.FootnoteDefinition:
		printFootnoteDefinition(sb, v, indent)
	}
}

func writeIndented(sb *strings.Builder, text, indent string) {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString(l)
	}
}

// printContainer renders blocks, then prefixes every resulting line with
// "> " (BlockQuote and GitHubAlert share this rendering).
func printContainer(sb *strings.Builder, blocks []mdast.Block, indent string) {
	var inner strings.Builder
	printBlocks(&inner, blocks, "")
	printQuotedLines(sb, inner.String(), indent)
}

func printQuotedLines(sb *strings.Builder, rendered, indent string) {
	rendered = strings.TrimRight(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		sb.WriteString(indent)
		if l == "" {
			sb.WriteString(">")
		} else {
			sb.WriteString("> ")
			sb.WriteString(l)
		}
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}

func printCodeBlock(sb *strings.Builder, v *mdast.CodeBlock, indent string) {
	literal := strings.TrimSuffix(v.Literal, "\n")
	fence := strings.Repeat("`", longestBacktickRun(literal)+1)
	if len(fence) < 3 {
		fence = "```"
	}

	writeIndented(sb, fence+v.Language, indent)
	sb.WriteString("\n")
	if literal != "" {
		for _, l := range strings.Split(literal, "\n") {
			sb.WriteString(indent)
			sb.WriteString(l)
			sb.WriteString("\n")
		}
	}
	writeIndented(sb, fence, indent)
	sb.WriteString("\n")
}

// longestBacktickRun returns the length of the longest run of consecutive
// backticks in s, so the fence wrapping it can be sized one longer and
// never collide with the literal's own content.
func longestBacktickRun(s string) int {
	longest, cur := 0, 0
	for _, r := range s {
		if r == '`' {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

func printList(sb *strings.Builder, l *mdast.List, indent string) {
	for i, item := range l.Items {
		marker := "-"
		if l.Ordered {
			marker = strconv.Itoa(l.Start+i) + "."
		}
		prefix := marker + " "

		taskPrefix := ""
		switch item.Task {
		case mdast.Incomplete:
			taskPrefix = "[ ] "
		case mdast.Complete:
			taskPrefix = "[x] "
		}

		var body strings.Builder
		printBlocks(&body, item.Blocks, "")
		rendered := strings.TrimRight(body.String(), "\n")
		lines := strings.Split(rendered, "\n")

		childIndent := indent + strings.Repeat(" ", len(prefix))
		for li, line := range lines {
			if li == 0 {
				sb.WriteString(indent)
				sb.WriteString(prefix)
				sb.WriteString(taskPrefix)
				sb.WriteString(line)
			} else {
				sb.WriteString(childIndent)
				sb.WriteString(line)
			}
			sb.WriteString("\n")
		}
	}
}

func printTable(sb *strings.Builder, t *mdast.Table, indent string) {
	writeRow := func(cells []mdast.TableCell) {
		sb.WriteString(indent)
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(printInlines(c.Inlines))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Header)

	sb.WriteString(indent)
	sb.WriteString("|")
	for i := range t.Header {
		align := mdast.AlignNone
		if i < len(t.Alignments) {
			align = t.Alignments[i]
		}
		switch align {
		case mdast.AlignLeft:
			sb.WriteString(" :--- |")
		case mdast.AlignRight:
			sb.WriteString(" ---: |")
		case mdast.AlignCenter:
			sb.WriteString(" :---: |")
		default:
			sb.WriteString(" --- |")
		}
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row)
	}
}

func printFootnoteDefinition(sb *strings.Builder, v *mdast.FootnoteDefinition, indent string) {
	marker := fmt.Sprintf("[^%s]:", v.Label)
	var inner strings.Builder
	printBlocks(&inner, v.Blocks, "")
	rendered := strings.TrimRight(inner.String(), "\n")
	lines := strings.Split(rendered, "\n")

	childIndent := indent + strings.Repeat(" ", len(marker)+1)
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(indent)
			sb.WriteString(marker)
			sb.WriteString(" ")
			sb.WriteString(line)
		} else {
			sb.WriteString(childIndent)
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
}

func printInlines(inlines []mdast.Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		printInline(&sb, in)
	}
	return sb.String()
}

func printInline(sb *strings.Builder, in mdast.Inline) {
	switch v := in.(type) {
	case *mdast.Text:
		sb.WriteString(v.Literal)
	case *mdast.Emphasis:
		sb.WriteString("*")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("*")
	case *mdast.Strong:
		sb.WriteString("**")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("**")
	case *mdast.Strikethrough:
		sb.WriteString("~~")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("~~")
	case *mdast.Code:
		sb.WriteString("`")
		sb.WriteString(v.Literal)
		sb.WriteString("`")
	case *mdast.Link:
		sb.WriteString("[")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("](")
		sb.WriteString(v.Destination)
		if v.Title != "" {
			sb.WriteString(fmt.Sprintf(" %q", v.Title))
		}
		sb.WriteString(")")
	case *mdast.LinkReference:
		sb.WriteString("[")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("][")
		sb.WriteString(v.Label)
		sb.WriteString("]")
	case *mdast.Image:
		sb.WriteString("![")
		sb.WriteString(printInlines(v.Children))
		sb.WriteString("](")
		sb.WriteString(v.Destination)
		if v.Title != "" {
			sb.WriteString(fmt.Sprintf(" %q", v.Title))
		}
		sb.WriteString(")")
	case *mdast.LineBreak:
		if v.Hard {
			sb.WriteString("  \n")
		} else {
			sb.WriteString("\n")
		}
	case *mdast.HTML:
		sb.WriteString(v.Literal)
	case *mdast.Autolink:
		sb.WriteString("<")
		sb.WriteString(v.Destination)
		sb.WriteString(">")
	case *mdast.FootnoteReference:
		sb.WriteString("[^")
		sb.WriteString(v.Label)
		sb.WriteString("]")
	}
}
