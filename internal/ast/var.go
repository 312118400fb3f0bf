package ast

import (
	"solscope/internal/source"
)

// Variable is a parsed state variable or file-level constant.
type Variable struct {
	Name       string
	Visibility Visibility
	Constant   bool
	Immutable  bool
	Span       source.Span // от начала объявления до имени
}

// Loc returns the variable's source span.
func (v *Variable) Loc() source.Span { return v.Span }

// IsConstantOrImmutable reports whether the variable carries the constant
// or immutable keyword.
func (v *Variable) IsConstantOrImmutable() bool {
	return v.Constant || v.Immutable
}
