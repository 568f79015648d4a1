// Package spliceerr defines the typed error taxonomy every core component
// raises, matching the kinds an apply can fail with one-to-one. Callers
// should use errors.As against *spliceerr.Error and switch on Kind rather
// than matching error strings.
package spliceerr

import (
	"errors"
	"fmt"
)

// Kind enumerates the fatal error categories a core operation can raise.
type Kind int

const (
	NodeNotFound Kind = iota
	InvalidChildInsertion
	InvalidListItemContent
	InvalidSectionDelete
	SectionRequiresHeading
	ConflictingScopeModifiers
	RangeRequiresBlock
	SelectorAliasNotDefined
	SelectorAliasAlreadyDefined
	AmbiguousSelectorSource
	AmbiguousNestedSelectorSource
	FrontmatterMissing
	FrontmatterKeyNotFound
	FrontmatterParse
	FrontmatterSerialize
	MarkdownParse
	OperationParse
	OperationFailed
)

func (k Kind) String() string {
	switch k {
	case NodeNotFound:
		return "NodeNotFound"
	case InvalidChildInsertion:
		return "InvalidChildInsertion"
	case InvalidListItemContent:
		return "InvalidListItemContent"
	case InvalidSectionDelete:
		return "InvalidSectionDelete"
	case SectionRequiresHeading:
		return "SectionRequiresHeading"
	case ConflictingScopeModifiers:
		return "ConflictingScopeModifiers"
	case RangeRequiresBlock:
		return "RangeRequiresBlock"
	case SelectorAliasNotDefined:
		return "SelectorAliasNotDefined"
	case SelectorAliasAlreadyDefined:
		return "SelectorAliasAlreadyDefined"
	case AmbiguousSelectorSource:
		return "AmbiguousSelectorSource"
	case AmbiguousNestedSelectorSource:
		return "AmbiguousNestedSelectorSource"
	case FrontmatterMissing:
		return "FrontmatterMissing"
	case FrontmatterKeyNotFound:
		return "FrontmatterKeyNotFound"
	case FrontmatterParse:
		return "FrontmatterParse"
	case FrontmatterSerialize:
		return "FrontmatterSerialize"
	case MarkdownParse:
		return "MarkdownParse"
	case OperationParse:
		return "OperationParse"
	case OperationFailed:
		return "OperationFailed"
	default:
		return "Unknown"
	}
}

// Error is the concrete error value raised by the core. Payload carries the
// kind-specific detail named in §7 (a type name, alias name, or path), empty
// when the kind has none.
type Error struct {
	Kind    Kind
	Payload string
	Wrapped error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Payload != "" {
		msg = fmt.Sprintf("%s(%s)", msg, e.Payload)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Wrapped }

// New constructs an *Error with no payload.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Newf constructs an *Error carrying a payload string.
func Newf(kind Kind, payload string) *Error {
	return &Error{Kind: kind, Payload: payload}
}

// Wrap constructs an *Error that wraps a collaborator failure.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Wrapped: err}
}

// KindOf reports the Kind of err if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// Of reports whether err is (or wraps) a *Error of the given kind.
func Of(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
