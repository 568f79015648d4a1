package mdparser

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// convertInlines converts every inline child of a block node n.
func convertInlines(n ast.Node, src []byte) []mdast.Inline {
	var out []mdast.Inline
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertInline(c, src)...)
	}
	return out
}

// convertInline converts a single inline node, returning zero or more
// mdast.Inline values (a goldmark *ast.Text that ends in a line break
// yields both the text and the break as separate siblings).
func convertInline(n ast.Node, src []byte) []mdast.Inline {
	switch v := n.(type) {
	case *ast.Text:
		out := []mdast.Inline{&mdast.Text{Literal: string(v.Segment.Value(src))}}
		if v.SoftLineBreak() || v.HardLineBreak() {
			out = append(out, &mdast.LineBreak{Hard: v.HardLineBreak()})
		}
		return out
	case *ast.String:
		return []mdast.Inline{&mdast.Text{Literal: string(v.Value)}}
	case *ast.Emphasis:
		children := convertInlines(v, src)
		if v.Level >= 2 {
			return []mdast.Inline{&mdast.Strong{Children: children}}
		}
		return []mdast.Inline{&mdast.Emphasis{Children: children}}
	case *east.Strikethrough:
		return []mdast.Inline{&mdast.Strikethrough{Children: convertInlines(v, src)}}
	case *ast.CodeSpan:
		return []mdast.Inline{&mdast.Code{Literal: codeSpanText(v, src)}}
	case *ast.Link:
		return []mdast.Inline{&mdast.Link{Destination: string(v.Destination), Title: string(v.Title), Children: convertInlines(v, src)}}
	case *ast.Image:
		return []mdast.Inline{&mdast.Image{Destination: string(v.Destination), Title: string(v.Title), Children: convertInlines(v, src)}}
	case *ast.AutoLink:
		return []mdast.Inline{&mdast.Autolink{Destination: string(v.URL(src))}}
	case *ast.RawHTML:
		var sb []byte
		for i := 0; i < v.Segments.Len(); i++ {
			sb = append(sb, v.Segments.At(i).Value(src)...)
		}
		return []mdast.Inline{&mdast.HTML{Literal: string(sb)}}
	case *east.FootnoteLink:
		return []mdast.Inline{&mdast.FootnoteReference{Label: strconv.Itoa(v.Index)}}
	default:
		return nil
	}
}

func codeSpanText(v *ast.CodeSpan, src []byte) string {
	var sb []byte
	for c := v.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb = append(sb, t.Segment.Value(src)...)
		}
	}
	return string(sb)
}
