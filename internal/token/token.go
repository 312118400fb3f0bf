package token

import (
	"solscope/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a Solidity keyword the checker
// recognizes.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPragma && t.Kind <= KwImmutable
}

// CommentKind distinguishes the two Solidity comment forms.
type CommentKind uint8

const (
	// CommentLine is a '//' comment running to end of line.
	CommentLine CommentKind = iota
	// CommentBlock is a '/* ... */' comment.
	CommentBlock
)

// Comment is one comment collected by the lexer, in file order.
type Comment struct {
	Kind CommentKind
	Span source.Span
	Text string // raw text, including the comment markers
}
