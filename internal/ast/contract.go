package ast

import (
	"solscope/internal/source"
)

// ContractKind distinguishes the contract-like declaration forms.
type ContractKind uint8

const (
	// ContractPlain is a regular 'contract'.
	ContractPlain ContractKind = iota
	// ContractAbstract is an 'abstract contract'.
	ContractAbstract
	// ContractInterface is an 'interface'.
	ContractInterface
	// ContractLibrary is a 'library'.
	ContractLibrary
)

func (k ContractKind) String() string {
	switch k {
	case ContractPlain:
		return "contract"
	case ContractAbstract:
		return "abstract contract"
	case ContractInterface:
		return "interface"
	case ContractLibrary:
		return "library"
	}
	return "unknown"
}

// Contract is a parsed contract, interface, or library declaration.
type Contract struct {
	Kind      ContractKind
	Name      string
	Span      source.Span // от вводного ключевого слова до закрывающей скобки
	Functions []*Function
	Variables []*Variable
}

// Loc returns the contract's source span.
func (c *Contract) Loc() source.Span { return c.Span }

// IsLibrary reports whether the contract is a library.
func (c *Contract) IsLibrary() bool { return c.Kind == ContractLibrary }

// IsInterface reports whether the contract is an interface.
func (c *Contract) IsInterface() bool { return c.Kind == ContractInterface }
