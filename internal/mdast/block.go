// Package mdast defines the block/inline tree that the locator, splicer,
// and printer all operate on. It carries no parsing or rendering logic of
// its own — internal/mdparser builds these trees, internal/mdprinter
// consumes them.
package mdast

// Block is any top-level Markdown element. Concrete types are *Paragraph,
// *Heading, *ThematicBreak, *BlockQuote, *List, *CodeBlock, *HtmlBlock,
// *Definition, *Table, *FootnoteDefinition, *GitHubAlert, and *Empty.
type Block interface {
	blockNode()
}

// AlertKind enumerates the GitHub-flavored alert callout kinds.
type AlertKind int

const (
	AlertNote AlertKind = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

// String returns the canonical lowercase name of the alert kind.
func (k AlertKind) String() string {
	switch k {
	case AlertNote:
		return "note"
	case AlertTip:
		return "tip"
	case AlertImportant:
		return "important"
	case AlertWarning:
		return "warning"
	case AlertCaution:
		return "caution"
	default:
		return "note"
	}
}

// HeadingStyle records whether a heading was written as ATX (`#`) or
// Setext (underlined) in the source. mdprinter writes every heading in ATX
// form regardless, and Style never affects matching, which is keyed only on
// Level.
type HeadingStyle int

const (
	HeadingATX HeadingStyle = iota
	HeadingSetext
)

// Paragraph is a run of inline content.
type Paragraph struct {
	Inlines []Inline
}

func (*Paragraph) blockNode() {}

// Heading is a titled section boundary, level 1 through 6. Setext headings
// (underlined with `=`/`-`) fold to level 1/2 respectively.
type Heading struct {
	Level   int
	Style   HeadingStyle
	Inlines []Inline
}

func (*Heading) blockNode() {}

// ThematicBreak is a horizontal rule (`---`, `***`, `___`).
type ThematicBreak struct{}

func (*ThematicBreak) blockNode() {}

// BlockQuote is a `>`-prefixed container of blocks.
type BlockQuote struct {
	Blocks []Block
}

func (*BlockQuote) blockNode() {}

// TaskState is the checkbox state of a list item, if any.
type TaskState int

const (
	NoTask TaskState = iota
	Incomplete
	Complete
)

// ListItem is a child of a List, never addressable at the top level.
type ListItem struct {
	Blocks []Block
	Task   TaskState
}

// List is an ordered or unordered sequence of ListItems.
type List struct {
	Items    []*ListItem
	Ordered  bool
	Start    int // first ordinal, only meaningful when Ordered
}

func (*List) blockNode() {}

// CodeBlock is a fenced or indented code block with its language info
// string (empty if none) and literal text.
type CodeBlock struct {
	Language string
	Literal  string
}

func (*CodeBlock) blockNode() {}

// HtmlBlock is raw HTML passed through verbatim.
type HtmlBlock struct {
	Literal string
}

func (*HtmlBlock) blockNode() {}

// Definition is a link reference definition (`[label]: url "title"`).
type Definition struct {
	Label string
	URL   string
	Title string
}

func (*Definition) blockNode() {}

// TableCell is one cell of a Table row.
type TableCell struct {
	Inlines []Inline
}

// TableAlignment is the column alignment declared by a table's delimiter row.
type TableAlignment int

const (
	AlignNone TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table is a GFM table: a header row, its column alignments, and body rows.
type Table struct {
	Header     []TableCell
	Alignments []TableAlignment
	Rows       [][]TableCell
}

func (*Table) blockNode() {}

// FootnoteDefinition is the body referenced by a FootnoteReference inline.
type FootnoteDefinition struct {
	Label  string
	Blocks []Block
}

func (*FootnoteDefinition) blockNode() {}

// GitHubAlert is a blockquote whose first line is a `[!NOTE]`-style marker.
type GitHubAlert struct {
	Kind   AlertKind
	Blocks []Block
}

func (*GitHubAlert) blockNode() {}

// Empty is a placeholder block carrying no content, produced by mdparser
// for a document with no blocks and skipped by splicer rules that must
// ignore stray blanks (§4.5's "discarding Empty blocks" rule).
type Empty struct{}

func (*Empty) blockNode() {}
