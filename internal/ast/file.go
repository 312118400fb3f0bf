// Package ast holds the declaration-level parse tree of one Solidity
// file: contract headers, function signatures, and state variables.
// Expression and statement bodies are never materialized.
package ast

import (
	"solscope/internal/source"
)

// File is the parsed representation of a single source file.
//
// Free (file-level) functions and variables are legal Solidity, so they
// live directly on the file alongside contracts.
type File struct {
	Path      string
	Contracts []*Contract
	Functions []*Function
	Variables []*Variable
}

// AllFunctions yields every function in the file along with its enclosing
// contract (nil for free functions), in declaration order.
func (f *File) AllFunctions(fn func(c *Contract, fun *Function)) {
	for _, fun := range f.Functions {
		fn(nil, fun)
	}
	for _, c := range f.Contracts {
		for _, fun := range c.Functions {
			fn(c, fun)
		}
	}
}

// AllVariables yields every state variable in the file along with its
// enclosing contract (nil for file-level constants), in declaration order.
func (f *File) AllVariables(fn func(c *Contract, v *Variable)) {
	for _, v := range f.Variables {
		fn(nil, v)
	}
	for _, c := range f.Contracts {
		for _, v := range c.Variables {
			fn(c, v)
		}
	}
}

// Node is implemented by every declaration that carries a location.
type Node interface {
	Loc() source.Span
}
