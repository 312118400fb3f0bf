package token

// Kind represents the category of a source token.
//
// The checker only parses Solidity down to the declaration level, so the
// operator surface is collapsed: anything that is not structurally
// significant for declarations comes out as Op.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal (decimal or hex).
	Number
	// String represents a string literal, including hex/unicode strings.
	String

	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwContract represents the 'contract' keyword.
	KwContract // contract
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwLibrary represents the 'library' keyword.
	KwLibrary // library
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwConstructor represents the 'constructor' keyword.
	KwConstructor // constructor
	// KwFallback represents the 'fallback' keyword.
	KwFallback // fallback
	// KwReceive represents the 'receive' keyword.
	KwReceive // receive
	// KwModifier represents the 'modifier' keyword.
	KwModifier // modifier
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwEvent represents the 'event' keyword.
	KwEvent // event
	// KwError represents the 'error' keyword.
	KwError // error
	// KwMapping represents the 'mapping' keyword.
	KwMapping // mapping
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwReturns represents the 'returns' keyword.
	KwReturns // returns
	// KwPublic represents the 'public' visibility keyword.
	KwPublic // public
	// KwPrivate represents the 'private' visibility keyword.
	KwPrivate // private
	// KwInternal represents the 'internal' visibility keyword.
	KwInternal // internal
	// KwExternal represents the 'external' visibility keyword.
	KwExternal // external
	// KwConstant represents the 'constant' mutability keyword.
	KwConstant // constant
	// KwImmutable represents the 'immutable' mutability keyword.
	KwImmutable // immutable

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Assign represents a single '='.
	Assign
	// Op represents any other operator or punctuation byte sequence.
	Op
)

// IsVisibility reports whether the token kind is a visibility keyword.
func (k Kind) IsVisibility() bool {
	switch k {
	case KwPublic, KwPrivate, KwInternal, KwExternal:
		return true
	default:
		return false
	}
}

// IsContractIntro reports whether the token kind opens a contract-like
// declaration.
func (k Kind) IsContractIntro() bool {
	switch k {
	case KwContract, KwInterface, KwLibrary, KwAbstract:
		return true
	default:
		return false
	}
}

// IsFunctionIntro reports whether the token kind opens a function-like
// declaration.
func (k Kind) IsFunctionIntro() bool {
	switch k {
	case KwFunction, KwConstructor, KwFallback, KwReceive, KwModifier:
		return true
	default:
		return false
	}
}
