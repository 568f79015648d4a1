package locator

import (
	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// ListRestriction narrows list-item enumeration to a single List block,
// optionally skipping items at or before StartItem within it.
type ListRestriction struct {
	BlockIndex int
	StartItem  *int // nil means "from the first item"
}

// Scope is the half-open block range (and optional list restriction) in
// which the locator enumerates candidates.
type Scope struct {
	BlockStart      int
	BlockEnd        int
	ListRestriction *ListRestriction
}

// HeadingLevel returns the level of b if it is a Heading, and ok=false
// otherwise.
func HeadingLevel(b mdast.Block) (int, bool) {
	h, ok := b.(*mdast.Heading)
	if !ok {
		return 0, false
	}
	return h.Level, true
}

// SectionEnd returns the index just past the section started by the
// heading at index i with level level: the index of the next heading with
// level <= level, or len(blocks) if none exists.
func SectionEnd(blocks []mdast.Block, i, level int) int {
	for j := i + 1; j < len(blocks); j++ {
		if l, ok := HeadingLevel(blocks[j]); ok && l <= level {
			return j
		}
	}
	return len(blocks)
}

// ResolveScope reduces sel's after/within modifiers to a concrete Scope.
// The returned bool reports whether resolving the landmark selector itself
// was ambiguous (OR-accumulated into the caller's ambiguity bit per the
// generalization recorded in SPEC_FULL.md §9).
func ResolveScope(blocks []mdast.Block, sel *Selector) (Scope, bool, error) {
	if sel.After != nil && sel.Within != nil {
		return Scope{}, false, spliceerr.New(spliceerr.ConflictingScopeModifiers)
	}

	if sel.After != nil {
		landmark, ambiguous, err := Locate(blocks, sel.After)
		if err != nil {
			return Scope{}, false, err
		}
		if landmark.IsListItem {
			start := landmark.ItemIndex
			return Scope{
				BlockStart: landmark.BlockIndex + 1,
				BlockEnd:   len(blocks),
				ListRestriction: &ListRestriction{
					BlockIndex: landmark.BlockIndex,
					StartItem:  &start,
				},
			}, ambiguous, nil
		}
		return Scope{BlockStart: landmark.BlockIndex + 1, BlockEnd: len(blocks)}, ambiguous, nil
	}

	if sel.Within != nil {
		landmark, ambiguous, err := Locate(blocks, sel.Within)
		if err != nil {
			return Scope{}, false, err
		}
		if landmark.IsListItem {
			return Scope{}, false, spliceerr.New(spliceerr.NodeNotFound)
		}

		block := blocks[landmark.BlockIndex]
		if level, ok := HeadingLevel(block); ok {
			end := SectionEnd(blocks, landmark.BlockIndex, level)
			return Scope{BlockStart: landmark.BlockIndex + 1, BlockEnd: end}, ambiguous, nil
		}
		if _, ok := block.(*mdast.List); ok {
			return Scope{
				BlockStart: landmark.BlockIndex,
				BlockEnd:   landmark.BlockIndex + 1,
				ListRestriction: &ListRestriction{
					BlockIndex: landmark.BlockIndex,
				},
			}, ambiguous, nil
		}
		return Scope{}, false, spliceerr.New(spliceerr.NodeNotFound)
	}

	return Scope{BlockStart: 0, BlockEnd: len(blocks)}, false, nil
}
