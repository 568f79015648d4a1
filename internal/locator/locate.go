package locator

import (
	"strings"

	"github.com/mdsplice/mdsplice/internal/mdast"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// LocateAll enumerates every match for sel within its resolved scope, in
// scope order. The returned bool is the ambiguity bit inherited from
// resolving sel's own after/within landmark (the caller OR-accumulates it
// with len(matches) > 1).
func LocateAll(blocks []mdast.Block, sel *Selector) ([]FoundNode, bool, error) {
	scope, scopeAmbiguous, err := ResolveScope(blocks, sel)
	if err != nil {
		return nil, false, err
	}

	if sel.Type != nil && IsListItemToken(*sel.Type) {
		return collectScopedListItems(blocks, scope, sel), scopeAmbiguous, nil
	}

	var matches []FoundNode
	for i := scope.BlockStart; i < scope.BlockEnd && i < len(blocks); i++ {
		if blockMatchesSelector(blocks[i], sel) {
			matches = append(matches, FoundNode{BlockIndex: i})
		}
	}
	return matches, scopeAmbiguous, nil
}

// Locate resolves sel to its (select_ordinal-1)th match, per §4.4. The
// returned ambiguity bit is true iff more than one candidate matched, OR'd
// with any ambiguity encountered while resolving sel's own scope landmark.
func Locate(blocks []mdast.Block, sel *Selector) (FoundNode, bool, error) {
	matches, scopeAmbiguous, err := LocateAll(blocks, sel)
	if err != nil {
		return FoundNode{}, false, err
	}

	ambiguous := scopeAmbiguous || len(matches) > 1
	idx := sel.NormalizeOrdinal() - 1
	if idx < 0 || idx >= len(matches) {
		return FoundNode{}, ambiguous, spliceerr.New(spliceerr.NodeNotFound)
	}
	return matches[idx], ambiguous, nil
}

func blockMatchesSelector(b mdast.Block, sel *Selector) bool {
	if sel.Type != nil && !BlockTypeMatches(b, *sel.Type) {
		return false
	}
	if sel.Contains != nil && !strings.Contains(BlockText(b), *sel.Contains) {
		return false
	}
	if sel.Regex != nil && !sel.Regex.MatchString(BlockText(b)) {
		return false
	}
	return true
}

func listItemMatchesFilters(item *mdast.ListItem, sel *Selector) bool {
	if sel.Contains != nil && !strings.Contains(ListItemText(item), *sel.Contains) {
		return false
	}
	if sel.Regex != nil && !sel.Regex.MatchString(ListItemText(item)) {
		return false
	}
	return true
}

// collectScopedListItems enumerates list-item candidates in scope order:
// first the restricted list's items after its start_item (if any), then
// every item of every other List block in [BlockStart, BlockEnd), skipping
// the restricted list to avoid double-counting it.
func collectScopedListItems(blocks []mdast.Block, scope Scope, sel *Selector) []FoundNode {
	var matches []FoundNode

	restrictedIndex := -1
	if scope.ListRestriction != nil {
		restrictedIndex = scope.ListRestriction.BlockIndex
		if list, ok := blocks[restrictedIndex].(*mdast.List); ok {
			start := 0
			if scope.ListRestriction.StartItem != nil {
				start = *scope.ListRestriction.StartItem + 1
			}
			for k := start; k < len(list.Items); k++ {
				if listItemMatchesFilters(list.Items[k], sel) {
					matches = append(matches, FoundNode{IsListItem: true, BlockIndex: restrictedIndex, ItemIndex: k})
				}
			}
		}
	}

	for i := scope.BlockStart; i < scope.BlockEnd && i < len(blocks); i++ {
		if i == restrictedIndex {
			continue
		}
		list, ok := blocks[i].(*mdast.List)
		if !ok {
			continue
		}
		for k, item := range list.Items {
			if listItemMatchesFilters(item, sel) {
				matches = append(matches, FoundNode{IsListItem: true, BlockIndex: i, ItemIndex: k})
			}
		}
	}

	return matches
}
