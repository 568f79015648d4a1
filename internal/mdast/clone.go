package mdast

// CloneBlocks deep-copies a block slice so a failed batch can be
// discarded without mutating the caller's tree (§4.7's clone-work-commit
// rule).
func CloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = CloneBlock(b)
	}
	return out
}

func CloneBlock(b Block) Block {
	switch v := b.(type) {
	case *Paragraph:
		return &Paragraph{Inlines: CloneInlines(v.Inlines)}
	case *Heading:
		return &Heading{Level: v.Level, Style: v.Style, Inlines: CloneInlines(v.Inlines)}
	case *ThematicBreak:
		return &ThematicBreak{}
	case *BlockQuote:
		return &BlockQuote{Blocks: CloneBlocks(v.Blocks)}
	case *List:
		items := make([]*ListItem, len(v.Items))
		for i, item := range v.Items {
			items[i] = CloneListItem(item)
		}
		return &List{Items: items, Ordered: v.Ordered, Start: v.Start}
	case *CodeBlock:
		cp := *v
		return &cp
	case *HtmlBlock:
		cp := *v
		return &cp
	case *Definition:
		cp := *v
		return &cp
	case *Table:
		cp := *v
		cp.Header = cloneTableCells(v.Header)
		cp.Alignments = append([]TableAlignment(nil), v.Alignments...)
		cp.Rows = make([][]TableCell, len(v.Rows))
		for i, row := range v.Rows {
			cp.Rows[i] = cloneTableCells(row)
		}
		return &cp
	case *FootnoteDefinition:
		return &FootnoteDefinition{Label: v.Label, Blocks: CloneBlocks(v.Blocks)}
	case *GitHubAlert:
		return &GitHubAlert{Kind: v.Kind, Blocks: CloneBlocks(v.Blocks)}
	case *Empty:
		return &Empty{}
	default:
		return b
	}
}

func cloneTableCells(cells []TableCell) []TableCell {
	out := make([]TableCell, len(cells))
	for i, c := range cells {
		out[i] = TableCell{Inlines: CloneInlines(c.Inlines)}
	}
	return out
}

func CloneListItem(item *ListItem) *ListItem {
	return &ListItem{Blocks: CloneBlocks(item.Blocks), Task: item.Task}
}

func CloneInlines(inlines []Inline) []Inline {
	out := make([]Inline, len(inlines))
	for i, in := range inlines {
		out[i] = CloneInline(in)
	}
	return out
}

func CloneInline(in Inline) Inline {
	switch v := in.(type) {
	case *Text:
		cp := *v
		return &cp
	case *Emphasis:
		return &Emphasis{Children: CloneInlines(v.Children)}
	case *Strong:
		return &Strong{Children: CloneInlines(v.Children)}
	case *Strikethrough:
		return &Strikethrough{Children: CloneInlines(v.Children)}
	case *Link:
		return &Link{Destination: v.Destination, Title: v.Title, Children: CloneInlines(v.Children)}
	case *LinkReference:
		return &LinkReference{Label: v.Label, Children: CloneInlines(v.Children)}
	case *Image:
		return &Image{Destination: v.Destination, Title: v.Title, Children: CloneInlines(v.Children)}
	case *Code:
		cp := *v
		return &cp
	case *LineBreak:
		cp := *v
		return &cp
	case *HTML:
		cp := *v
		return &cp
	case *Autolink:
		cp := *v
		return &cp
	case *FootnoteReference:
		cp := *v
		return &cp
	default:
		return in
	}
}
