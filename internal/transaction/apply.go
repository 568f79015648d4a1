package transaction

import (
	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/fmpath"
	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/mdparser"
	"github.com/mdsplice/mdsplice/internal/splicer"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// Document is the mutable pair a batch operates on: the block tree and an
// optional frontmatter value (nil if the document has none).
type Document struct {
	Blocks       []mdast.Block
	Frontmatter  *yaml.Node
}

// Apply runs every operation in ops against a clone of doc, committing the
// clone back only if all operations succeed. The returned bool is true if
// any operation's target resolution was ambiguous.
func Apply(doc *Document, ops []Operation) (*Document, bool, error) {
	work := &Document{
		Blocks:      mdast.CloneBlocks(doc.Blocks),
		Frontmatter: fmpath.CloneNode(doc.Frontmatter),
	}

	table := newAliasTable()
	anyAmbiguous := false

	for _, op := range ops {
		ambiguous, err := applyOne(work, op, table)
		if err != nil {
			return nil, false, err
		}
		anyAmbiguous = anyAmbiguous || ambiguous
	}

	return work, anyAmbiguous, nil
}

func applyOne(doc *Document, op Operation, table aliasTable) (bool, error) {
	switch op.Op {
	case Insert, Replace, Delete:
		return applyBlockOp(doc, op, table)
	case SetFrontmatter, DeleteFrontmatter, ReplaceFrontmatter:
		return false, applyFrontmatterOp(doc, op)
	default:
		return false, spliceerr.Newf(spliceerr.OperationFailed, string(op.Op))
	}
}

func applyBlockOp(doc *Document, op Operation, table aliasTable) (bool, error) {
	sel, err := resolveSelector(op.Selector, table)
	if err != nil {
		return false, err
	}
	found, ambiguous, err := locator.Locate(doc.Blocks, sel)
	if err != nil {
		return false, err
	}

	var untilFound *locator.FoundNode
	if op.Until != nil || op.UntilRef != "" {
		untilSel, err := resolveLandmark(op.Until, op.UntilRef, table)
		if err != nil {
			return false, err
		}
		uf, uambig, err := locator.Locate(doc.Blocks[found.BlockIndex+1:], untilSel)
		if err != nil {
			if !spliceerr.Of(err, spliceerr.NodeNotFound) {
				return false, err
			}
			// No landmark: the range runs to the end of the document.
			uf = locator.FoundNode{BlockIndex: len(doc.Blocks) - found.BlockIndex - 1}
		}
		uf.BlockIndex += found.BlockIndex + 1
		ambiguous = ambiguous || uambig
		untilFound = &uf
	}

	var content []mdast.Block
	if op.Content != "" {
		content = mdparser.Parse(op.Content)
	}

	switch op.Op {
	case Insert:
		return ambiguous, doInsert(doc, found, content, op.Position)
	case Replace:
		return ambiguous, doReplace(doc, found, untilFound, content)
	case Delete:
		if op.Section {
			if _, isHeading := locator.HeadingLevel(doc.Blocks[found.BlockIndex]); found.IsListItem || !isHeading {
				return ambiguous, spliceerr.New(spliceerr.InvalidSectionDelete)
			}
			blocks, err := splicer.DeleteSection(doc.Blocks, found.BlockIndex)
			if err != nil {
				return ambiguous, err
			}
			doc.Blocks = blocks
			return ambiguous, nil
		}
		return ambiguous, doDelete(doc, found, untilFound)
	}
	return ambiguous, nil
}

func splicerPosition(p Position) splicer.Position {
	switch p {
	case After:
		return splicer.After
	case PrependChild:
		return splicer.PrependChild
	case AppendChild:
		return splicer.AppendChild
	default:
		return splicer.Before
	}
}

func doInsert(doc *Document, found locator.FoundNode, content []mdast.Block, pos Position) error {
	sp := splicerPosition(pos)
	if found.IsListItem {
		return splicer.InsertListItem(doc.Blocks, found.BlockIndex, found.ItemIndex, content, sp)
	}
	blocks, err := splicer.InsertBlock(doc.Blocks, found.BlockIndex, content, sp)
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

func doReplace(doc *Document, found locator.FoundNode, until *locator.FoundNode, content []mdast.Block) error {
	if until != nil {
		if found.IsListItem || until.IsListItem {
			return spliceerr.New(spliceerr.RangeRequiresBlock)
		}
		return replaceRange(doc, found.BlockIndex, until.BlockIndex, content)
	}
	if found.IsListItem {
		return splicer.ReplaceListItem(doc.Blocks, found.BlockIndex, found.ItemIndex, content)
	}
	doc.Blocks = splicer.ReplaceBlock(doc.Blocks, found.BlockIndex, content)
	return nil
}

// replaceRange substitutes the half-open block range [start, end) with
// content (or removes it entirely, for doDelete's until-range case, when
// content is nil); the until landmark at end is kept.
func replaceRange(doc *Document, start, end int, content []mdast.Block) error {
	out := make([]mdast.Block, 0, len(doc.Blocks)-(end-start)+len(content))
	out = append(out, doc.Blocks[:start]...)
	out = append(out, content...)
	out = append(out, doc.Blocks[end:]...)
	doc.Blocks = out
	return nil
}

func doDelete(doc *Document, found locator.FoundNode, until *locator.FoundNode) error {
	if until != nil {
		if found.IsListItem || until.IsListItem {
			return spliceerr.New(spliceerr.RangeRequiresBlock)
		}
		return replaceRange(doc, found.BlockIndex, until.BlockIndex, nil)
	}
	if found.IsListItem {
		emptied, err := splicer.DeleteListItem(doc.Blocks, found.BlockIndex, found.ItemIndex)
		if err != nil {
			return err
		}
		if emptied {
			doc.Blocks = splicer.DeleteBlock(doc.Blocks, found.BlockIndex)
		}
		return nil
	}
	doc.Blocks = splicer.DeleteBlock(doc.Blocks, found.BlockIndex)
	return nil
}

func applyFrontmatterOp(doc *Document, op Operation) error {
	if doc.Frontmatter == nil {
		if op.Op == SetFrontmatter || op.Op == ReplaceFrontmatter {
			doc.Frontmatter = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		} else {
			return spliceerr.New(spliceerr.FrontmatterMissing)
		}
	}

	switch op.Op {
	case SetFrontmatter:
		node := &yaml.Node{}
		if err := node.Encode(op.Value); err != nil {
			return spliceerr.Wrap(spliceerr.FrontmatterSerialize, err)
		}
		return fmpath.Set(doc.Frontmatter, op.Path, node)
	case DeleteFrontmatter:
		if err := fmpath.Delete(doc.Frontmatter, op.Path); err != nil {
			return err
		}
		if doc.Frontmatter.Kind == yaml.MappingNode && len(doc.Frontmatter.Content) == 0 {
			doc.Frontmatter = nil
		}
		return nil
	case ReplaceFrontmatter:
		if op.Value == nil {
			doc.Frontmatter = nil
			return nil
		}
		node := &yaml.Node{}
		if err := node.Encode(op.Value); err != nil {
			return spliceerr.Wrap(spliceerr.FrontmatterSerialize, err)
		}
		doc.Frontmatter = node
		return nil
	}
	return nil
}
