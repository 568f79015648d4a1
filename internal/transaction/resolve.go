package transaction

import (
	"regexp"

	"github.com/mdsplice/mdsplice/internal/locator"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
)

// aliasTable holds every selector named by an `alias` field so far in the
// current batch, scoped to that batch (§4.7).
type aliasTable map[string]*locator.Selector

func newAliasTable() aliasTable {
	return aliasTable{}
}

// ResolveSelector inlines a standalone SelectorDTO (one not part of a
// batch with prior aliases), for read-only callers like `locate`.
func ResolveSelector(dto *SelectorDTO) (*locator.Selector, error) {
	return resolveSelector(dto, newAliasTable())
}

// resolveSelector inlines dto into a *locator.Selector, following
// selector_ref/after_ref/within_ref indirection and recursively resolving
// nested after/within landmarks. If dto itself carries an alias, the
// resolved selector is registered in table (erroring if that alias was
// already used this batch).
func resolveSelector(dto *SelectorDTO, table aliasTable) (*locator.Selector, error) {
	if dto == nil {
		return nil, spliceerr.New(spliceerr.AmbiguousSelectorSource)
	}

	hasInline := dto.Type != nil || dto.Contains != nil || dto.Regex != nil || dto.After != nil || dto.Within != nil

	if dto.SelectorRef != "" {
		if hasInline {
			return nil, spliceerr.New(spliceerr.AmbiguousSelectorSource)
		}
		sel, ok := table[dto.SelectorRef]
		if !ok {
			return nil, spliceerr.Newf(spliceerr.SelectorAliasNotDefined, dto.SelectorRef)
		}
		return sel, nil
	}

	sel := &locator.Selector{
		Type:     dto.Type,
		Contains: dto.Contains,
		Ordinal:  dto.Ordinal,
	}
	if dto.Regex != nil {
		re, err := regexp.Compile(*dto.Regex)
		if err != nil {
			return nil, spliceerr.Wrap(spliceerr.OperationFailed, err)
		}
		sel.Regex = re
	}

	after, err := resolveLandmark(dto.After, dto.AfterRef, table)
	if err != nil {
		return nil, err
	}
	sel.After = after

	within, err := resolveLandmark(dto.Within, dto.WithinRef, table)
	if err != nil {
		return nil, err
	}
	sel.Within = within

	if dto.Alias != "" {
		if _, exists := table[dto.Alias]; exists {
			return nil, spliceerr.Newf(spliceerr.SelectorAliasAlreadyDefined, dto.Alias)
		}
		table[dto.Alias] = sel
	}

	return sel, nil
}

// resolveLandmark resolves a nested after/within/until selector, which may
// itself be given either inline or via its own *_ref.
func resolveLandmark(inline *SelectorDTO, ref string, table aliasTable) (*locator.Selector, error) {
	if ref != "" {
		if inline != nil {
			return nil, spliceerr.New(spliceerr.AmbiguousNestedSelectorSource)
		}
		sel, ok := table[ref]
		if !ok {
			return nil, spliceerr.Newf(spliceerr.SelectorAliasNotDefined, ref)
		}
		return sel, nil
	}
	if inline == nil {
		return nil, nil
	}
	return resolveSelector(inline, table)
}
