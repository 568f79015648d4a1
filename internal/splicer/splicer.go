// Package splicer performs block- and list-item-level Insert/Replace/Delete
// mutations against an mdast.Block slice, per §4.5.
package splicer

import (
	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// Position is where an Insert places its content relative to the target.
type Position int

const (
	Before Position = iota
	After
	PrependChild
	AppendChild
)

// ReplaceBlock substitutes the block at i with newBlocks, preserving the
// order of every other block.
func ReplaceBlock(blocks []mdast.Block, i int, newBlocks []mdast.Block) []mdast.Block {
	out := make([]mdast.Block, 0, len(blocks)-1+len(newBlocks))
	out = append(out, blocks[:i]...)
	out = append(out, newBlocks...)
	out = append(out, blocks[i+1:]...)
	return out
}

// DeleteBlock removes the block at i.
func DeleteBlock(blocks []mdast.Block, i int) []mdast.Block {
	out := make([]mdast.Block, 0, len(blocks)-1)
	out = append(out, blocks[:i]...)
	out = append(out, blocks[i+1:]...)
	return out
}

// DeleteSection requires blocks[i] to be a Heading and drains its section
// (§4.5, §4.3's section-end rule).
func DeleteSection(blocks []mdast.Block, i int) ([]mdast.Block, error) {
	level, ok := locator.HeadingLevel(blocks[i])
	if !ok {
		return nil, spliceerr.New(spliceerr.SectionRequiresHeading)
	}
	end := locator.SectionEnd(blocks, i, level)

	out := make([]mdast.Block, 0, len(blocks)-(end-i))
	out = append(out, blocks[:i]...)
	out = append(out, blocks[end:]...)
	return out, nil
}

// InsertBlock splices newBlocks relative to the block at i according to
// position.
func InsertBlock(blocks []mdast.Block, i int, newBlocks []mdast.Block, pos Position) ([]mdast.Block, error) {
	switch pos {
	case Before:
		return spliceAt(blocks, i, newBlocks), nil
	case After:
		return spliceAt(blocks, i+1, newBlocks), nil
	case PrependChild, AppendChild:
		return insertChild(blocks, i, newBlocks, pos)
	default:
		return nil, spliceerr.New(spliceerr.OperationFailed)
	}
}

func spliceAt(blocks []mdast.Block, at int, newBlocks []mdast.Block) []mdast.Block {
	out := make([]mdast.Block, 0, len(blocks)+len(newBlocks))
	out = append(out, blocks[:at]...)
	out = append(out, newBlocks...)
	out = append(out, blocks[at:]...)
	return out
}

func insertChild(blocks []mdast.Block, i int, newBlocks []mdast.Block, pos Position) ([]mdast.Block, error) {
	switch target := blocks[i].(type) {
	case *mdast.BlockQuote:
		target.Blocks = spliceInner(target.Blocks, newBlocks, pos)
		return blocks, nil
	case *mdast.FootnoteDefinition:
		target.Blocks = spliceInner(target.Blocks, newBlocks, pos)
		return blocks, nil
	case *mdast.Heading:
		if pos == PrependChild {
			return spliceAt(blocks, i+1, newBlocks), nil
		}
		end := locator.SectionEnd(blocks, i, target.Level)
		return spliceAt(blocks, end, newBlocks), nil
	default:
		return nil, spliceerr.Newf(spliceerr.InvalidChildInsertion, locator.BlockTypeName(blocks[i]))
	}
}

func spliceInner(inner []mdast.Block, newBlocks []mdast.Block, pos Position) []mdast.Block {
	if pos == PrependChild {
		out := make([]mdast.Block, 0, len(inner)+len(newBlocks))
		out = append(out, newBlocks...)
		out = append(out, inner...)
		return out
	}
	out := make([]mdast.Block, 0, len(inner)+len(newBlocks))
	out = append(out, inner...)
	out = append(out, newBlocks...)
	return out
}

// extractSingleList discards Empty blocks from newBlocks and requires
// exactly one remaining Block to be a *mdast.List, per §4.5's
// replace_list_item / insert_list_item content rule.
func extractSingleList(newBlocks []mdast.Block) (*mdast.List, error) {
	var remaining []mdast.Block
	for _, b := range newBlocks {
		if _, ok := b.(*mdast.Empty); ok {
			continue
		}
		remaining = append(remaining, b)
	}
	if len(remaining) != 1 {
		return nil, spliceerr.New(spliceerr.InvalidListItemContent)
	}
	list, ok := remaining[0].(*mdast.List)
	if !ok {
		return nil, spliceerr.New(spliceerr.InvalidListItemContent)
	}
	return list, nil
}

// ReplaceListItem replaces the single item at (b, k) with every item of the
// single List found in newBlocks.
func ReplaceListItem(blocks []mdast.Block, b, k int, newBlocks []mdast.Block) error {
	list, err := extractSingleList(newBlocks)
	if err != nil {
		return err
	}
	target, ok := blocks[b].(*mdast.List)
	if !ok {
		return spliceerr.New(spliceerr.NodeNotFound)
	}

	items := make([]*mdast.ListItem, 0, len(target.Items)-1+len(list.Items))
	items = append(items, target.Items[:k]...)
	items = append(items, list.Items...)
	items = append(items, target.Items[k+1:]...)
	target.Items = items
	return nil
}

// InsertListItem splices newBlocks' items into the list at b relative to
// item k, or (for child positions) appends newBlocks as raw blocks into
// item k's own body.
func InsertListItem(blocks []mdast.Block, b, k int, newBlocks []mdast.Block, pos Position) error {
	target, ok := blocks[b].(*mdast.List)
	if !ok {
		return spliceerr.New(spliceerr.NodeNotFound)
	}

	switch pos {
	case Before, After:
		list, err := extractSingleList(newBlocks)
		if err != nil {
			return err
		}
		at := k
		if pos == After {
			at = k + 1
		}
		items := make([]*mdast.ListItem, 0, len(target.Items)+len(list.Items))
		items = append(items, target.Items[:at]...)
		items = append(items, list.Items...)
		items = append(items, target.Items[at:]...)
		target.Items = items
		return nil
	case PrependChild, AppendChild:
		item := target.Items[k]
		item.Blocks = spliceInner(item.Blocks, newBlocks, pos)
		return nil
	default:
		return spliceerr.New(spliceerr.OperationFailed)
	}
}

// DeleteListItem removes the item at (b, k) and reports whether the list
// became empty as a result; callers are responsible for then deleting the
// list block itself if so.
func DeleteListItem(blocks []mdast.Block, b, k int) (bool, error) {
	target, ok := blocks[b].(*mdast.List)
	if !ok {
		return false, spliceerr.New(spliceerr.NodeNotFound)
	}
	items := make([]*mdast.ListItem, 0, len(target.Items)-1)
	items = append(items, target.Items[:k]...)
	items = append(items, target.Items[k+1:]...)
	target.Items = items
	return len(target.Items) == 0, nil
}
