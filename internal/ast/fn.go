package ast

import (
	"solscope/internal/source"
)

// FnKind distinguishes the function-like declaration forms.
type FnKind uint8

const (
	// FnFunction is a regular 'function'.
	FnFunction FnKind = iota
	// FnConstructor is a 'constructor'.
	FnConstructor
	// FnFallback is a 'fallback' function.
	FnFallback
	// FnReceive is a 'receive' function.
	FnReceive
	// FnModifier is a 'modifier'.
	FnModifier
)

// Visibility is a function or variable visibility attribute.
type Visibility uint8

const (
	// VisNone means no visibility keyword was present.
	VisNone Visibility = iota
	// VisPublic is 'public'.
	VisPublic
	// VisPrivate is 'private'.
	VisPrivate
	// VisInternal is 'internal'.
	VisInternal
	// VisExternal is 'external'.
	VisExternal
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisPrivate:
		return "private"
	case VisInternal:
		return "internal"
	case VisExternal:
		return "external"
	}
	return "none"
}

// Function is a parsed function-like declaration. Only the header matters
// to the checker; the body is skipped during parsing.
type Function struct {
	Kind       FnKind
	RawName    string // пустое для constructor/fallback/receive
	Visibility Visibility
	Span       source.Span
}

// Loc returns the function's source span.
func (f *Function) Loc() source.Span { return f.Span }

// Name returns the declared name, or the pseudo-name for constructor,
// fallback and receive declarations.
func (f *Function) Name() string {
	switch f.Kind {
	case FnConstructor:
		return "constructor"
	case FnFallback:
		return "fallback"
	case FnReceive:
		return "receive"
	default:
		return f.RawName
	}
}

// IsInternalOrPrivate reports whether the function carries an internal or
// private visibility keyword.
func (f *Function) IsInternalOrPrivate() bool {
	return f.Visibility == VisInternal || f.Visibility == VisPrivate
}

// IsPublicOrExternal reports whether the function carries a public or
// external visibility keyword.
func (f *Function) IsPublicOrExternal() bool {
	return f.Visibility == VisPublic || f.Visibility == VisExternal
}
