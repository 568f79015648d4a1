// Package mdparser converts Markdown source into the internal/mdast tree,
// built atop goldmark's block/inline parser with the GFM and footnote
// extensions enabled; definition lists are not parsed as such.
package mdparser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// md intentionally omits extension.DefinitionList: HTML definition lists
// have no representation in the block model (§3), so parsing them would
// silently drop content rather than round-trip it.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

type extractedDefinition struct {
	line int
	def  *mdast.Definition
}

// Parse converts Markdown source into a slice of top-level mdast.Blocks.
func Parse(source string) []mdast.Block {
	modified, defs := extractLinkDefinitions(source)
	src := []byte(modified)

	doc := md.Parser().Parse(text.NewReader(src))

	type lineBlock struct {
		line  int
		block mdast.Block
	}
	var ordered []lineBlock

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if fl, ok := n.(*east.FootnoteList); ok {
			for fc := fl.FirstChild(); fc != nil; fc = fc.NextSibling() {
				fn, ok := fc.(*east.Footnote)
				if !ok {
					continue
				}
				b := convertFootnoteDefinition(fn, src)
				line := 0
				if off, ok := firstOffset(fc); ok {
					line = bytes.Count(src[:off], []byte("\n"))
				}
				ordered = append(ordered, lineBlock{line, b})
			}
			continue
		}

		b := convertBlock(n, src)
		if b == nil {
			continue
		}
		line := 0
		if off, ok := firstOffset(n); ok {
			line = bytes.Count(src[:off], []byte("\n"))
		}
		ordered = append(ordered, lineBlock{line, b})
	}

	for _, d := range defs {
		ordered = append(ordered, lineBlock{d.line, d.def})
	}

	// stable sort by line, preserving relative order of goldmark blocks
	// against each other and placing definitions by their source line.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].line < ordered[j-1].line; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	blocks := make([]mdast.Block, 0, len(ordered))
	for _, ob := range ordered {
		blocks = append(blocks, ob.block)
	}
	if len(blocks) == 0 {
		return []mdast.Block{&mdast.Empty{}}
	}
	return blocks
}

func firstOffset(n ast.Node) (int, bool) {
	if lc, ok := n.(interface{ Lines() *text.Segments }); ok {
		lines := lc.Lines()
		if lines.Len() > 0 {
			return lines.At(0).Start, true
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := firstOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}

// convertBlock converts a single goldmark block node (and, for alert
// detection purposes, peeks at its would-be BlockQuote classification).
func convertBlock(n ast.Node, src []byte) mdast.Block {
	switch v := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return &mdast.Paragraph{Inlines: convertInlines(n, src)}
	case *ast.Heading:
		style := mdast.HeadingATX
		if lines := v.Lines(); lines.Len() > 0 {
			start := lines.At(0).Start
			lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
			if !bytes.Contains(src[lineStart:start], []byte("#")) {
				style = mdast.HeadingSetext
			}
		}
		return &mdast.Heading{Level: v.Level, Style: style, Inlines: convertInlines(n, src)}
	case *ast.ThematicBreak:
		return &mdast.ThematicBreak{}
	case *ast.Blockquote:
		return convertBlockQuoteOrAlert(v, src)
	case *ast.List:
		return convertList(v, src)
	case *ast.CodeBlock:
		return &mdast.CodeBlock{Literal: linesText(v.Lines(), src)}
	case *ast.FencedCodeBlock:
		lang := ""
		if v.Info != nil {
			fields := strings.Fields(string(v.Info.Segment.Value(src)))
			if len(fields) > 0 {
				lang = fields[0]
			}
		}
		return &mdast.CodeBlock{Language: lang, Literal: linesText(v.Lines(), src)}
	case *ast.HTMLBlock:
		var sb strings.Builder
		for i := 0; i < v.Lines().Len(); i++ {
			seg := v.Lines().At(i)
			sb.Write(seg.Value(src))
		}
		if v.HasClosure() {
			sb.Write(v.ClosureLine.Value(src))
		}
		return &mdast.HtmlBlock{Literal: sb.String()}
	case *east.Table:
		return convertTable(v, src)
	case *east.FootnoteList:
		return nil
	case *east.Footnote:
		return convertFootnoteDefinition(v, src)
	default:
		return nil
	}
}

func linesText(lines *text.Segments, src []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		sb.Write(lines.At(i).Value(src))
	}
	return sb.String()
}

var alertKinds = map[string]mdast.AlertKind{
	"[!note]":      mdast.AlertNote,
	"[!tip]":       mdast.AlertTip,
	"[!important]": mdast.AlertImportant,
	"[!warning]":   mdast.AlertWarning,
	"[!caution]":   mdast.AlertCaution,
}

// convertBlockQuoteOrAlert detects a GitHub alert: a blockquote whose first
// paragraph's first line is exactly one of the alert marker tokens.
func convertBlockQuoteOrAlert(bq *ast.Blockquote, src []byte) mdast.Block {
	blocks := convertChildren(bq, src)

	if len(blocks) > 0 {
		if p, ok := blocks[0].(*mdast.Paragraph); ok && len(p.Inlines) > 0 {
			first := firstLineOfInlines(p.Inlines)
			if kind, ok := alertKinds[strings.ToLower(strings.TrimSpace(first))]; ok {
				stripped := stripFirstLine(p.Inlines)
				rest := blocks[1:]
				if len(stripped) > 0 {
					newBlocks := make([]mdast.Block, 0, len(rest)+1)
					newBlocks = append(newBlocks, &mdast.Paragraph{Inlines: stripped})
					newBlocks = append(newBlocks, rest...)
					return &mdast.GitHubAlert{Kind: kind, Blocks: newBlocks}
				}
				return &mdast.GitHubAlert{Kind: kind, Blocks: rest}
			}
		}
	}

	return &mdast.BlockQuote{Blocks: blocks}
}

// firstLineOfInlines renders the text up to (not including) the first hard
// or soft line break, used only to test against the alert marker tokens.
func firstLineOfInlines(inlines []mdast.Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		if _, ok := in.(*mdast.LineBreak); ok {
			break
		}
		if t, ok := in.(*mdast.Text); ok {
			sb.WriteString(t.Literal)
			continue
		}
	}
	return sb.String()
}

// stripFirstLine removes the leading marker-line Text/LineBreak pair,
// leaving the rest of the paragraph's inlines, unchanged, as the alert's
// own lead paragraph.
func stripFirstLine(inlines []mdast.Inline) []mdast.Inline {
	for i, in := range inlines {
		if _, ok := in.(*mdast.LineBreak); ok {
			return inlines[i+1:]
		}
	}
	return nil
}

func convertChildren(n ast.Node, src []byte) []mdast.Block {
	var blocks []mdast.Block
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b := convertBlock(c, src)
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	if blocks == nil {
		return []mdast.Block{}
	}
	return blocks
}

func convertList(l *ast.List, src []byte) *mdast.List {
	items := make([]*mdast.ListItem, 0)
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, convertListItem(li, src))
	}
	return &mdast.List{Items: items, Ordered: l.IsOrdered(), Start: l.Start}
}

func convertListItem(li *ast.ListItem, src []byte) *mdast.ListItem {
	item := &mdast.ListItem{Blocks: convertChildren(li, src)}
	if len(item.Blocks) > 0 {
		if p, ok := item.Blocks[0].(*mdast.Paragraph); ok && len(p.Inlines) > 0 {
			if cb, ok := findTaskCheckbox(li); ok {
				if cb {
					item.Task = mdast.Complete
				} else {
					item.Task = mdast.Incomplete
				}
			}
		}
	}
	return item
}

func findTaskCheckbox(li *ast.ListItem) (bool, bool) {
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		for ic := c.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if cb, ok := ic.(*east.TaskCheckBox); ok {
				return cb.IsChecked, true
			}
		}
	}
	return false, false
}

func convertTable(t *east.Table, src []byte) *mdast.Table {
	tbl := &mdast.Table{}
	for _, a := range t.Alignments {
		switch a {
		case east.AlignLeft:
			tbl.Alignments = append(tbl.Alignments, mdast.AlignLeft)
		case east.AlignRight:
			tbl.Alignments = append(tbl.Alignments, mdast.AlignRight)
		case east.AlignCenter:
			tbl.Alignments = append(tbl.Alignments, mdast.AlignCenter)
		default:
			tbl.Alignments = append(tbl.Alignments, mdast.AlignNone)
		}
	}

	first := true
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		row, ok := c.(*east.TableRow)
		if !ok {
			if header, ok := c.(*east.TableHeader); ok {
				tbl.Header = convertTableCells(header, src)
				first = false
			}
			continue
		}
		cells := convertTableCells(row, src)
		if first {
			tbl.Header = cells
			first = false
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}

func convertTableCells(n ast.Node, src []byte) []mdast.TableCell {
	var cells []mdast.TableCell
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableCell); ok {
			cells = append(cells, mdast.TableCell{Inlines: convertInlines(c, src)})
		}
	}
	return cells
}

func convertFootnoteDefinition(f *east.Footnote, src []byte) *mdast.FootnoteDefinition {
	return &mdast.FootnoteDefinition{Label: strconv.Itoa(f.Index), Blocks: convertChildren(f, src)}
}
