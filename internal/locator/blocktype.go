package locator

import (
	"strconv"
	"strings"

	"github.com/mdsplice/mdsplice/internal/mdast"
)

// IsListItemToken reports whether token requests list-item descent rather
// than a plain block match.
func IsListItemToken(token string) bool {
	switch strings.ToLower(token) {
	case "li", "item", "listitem":
		return true
	default:
		return false
	}
}

var alertKindNames = map[string]mdast.AlertKind{
	"note":      mdast.AlertNote,
	"tip":       mdast.AlertTip,
	"important": mdast.AlertImportant,
	"warning":   mdast.AlertWarning,
	"caution":   mdast.AlertCaution,
}

// BlockTypeMatches reports whether block matches the case-insensitive type
// token per §4.2's table.
func BlockTypeMatches(b mdast.Block, token string) bool {
	tok := strings.ToLower(token)

	switch tok {
	case "p", "paragraph":
		_, ok := b.(*mdast.Paragraph)
		return ok
	case "heading":
		_, ok := b.(*mdast.Heading)
		return ok
	case "h1", "h2", "h3", "h4", "h5", "h6":
		h, ok := b.(*mdast.Heading)
		if !ok {
			return false
		}
		level, _ := strconv.Atoi(tok[1:])
		return h.Level == level
	case "list":
		_, ok := b.(*mdast.List)
		return ok
	case "table":
		_, ok := b.(*mdast.Table)
		return ok
	case "blockquote":
		_, ok := b.(*mdast.BlockQuote)
		return ok
	case "code", "codeblock":
		_, ok := b.(*mdast.CodeBlock)
		return ok
	case "html", "htmlblock":
		_, ok := b.(*mdast.HtmlBlock)
		return ok
	case "thematicbreak":
		_, ok := b.(*mdast.ThematicBreak)
		return ok
	case "definition":
		_, ok := b.(*mdast.Definition)
		return ok
	case "footnotedefinition":
		_, ok := b.(*mdast.FootnoteDefinition)
		return ok
	case "empty":
		_, ok := b.(*mdast.Empty)
		return ok
	case "githubalert", "alert":
		_, ok := b.(*mdast.GitHubAlert)
		return ok
	default:
		return alertKindToken(b, tok)
	}
}

// alertKindToken matches bare alert-kind tokens ("note") and the
// "alert-<kind>" form against a GitHubAlert's Kind.
func alertKindToken(b mdast.Block, tok string) bool {
	alert, ok := b.(*mdast.GitHubAlert)
	if !ok {
		return false
	}

	kindName := tok
	if strings.HasPrefix(tok, "alert-") {
		kindName = strings.TrimPrefix(tok, "alert-")
	}

	kind, known := alertKindNames[kindName]
	return known && alert.Kind == kind
}

// BlockTypeName returns the printable type name used in error messages such
// as InvalidChildInsertion.
func BlockTypeName(b mdast.Block) string {
	switch v := b.(type) {
	case *mdast.Paragraph:
		return "paragraph"
	case *mdast.Heading:
		return "heading"
	case *mdast.ThematicBreak:
		return "thematicbreak"
	case *mdast.BlockQuote:
		return "blockquote"
	case *mdast.List:
		return "list"
	case *mdast.CodeBlock:
		return "codeblock"
	case *mdast.HtmlBlock:
		return "htmlblock"
	case *mdast.Definition:
		return "definition"
	case *mdast.Table:
		return "table"
	case *mdast.FootnoteDefinition:
		return "footnotedefinition"
	case *mdast.GitHubAlert:
		return "githubalert:" + v.Kind.String()
	case *mdast.Empty:
		return "empty"
	default:
		return "unknown"
	}
}
