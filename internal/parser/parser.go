// Package parser builds the declaration-level tree for one Solidity file.
//
// The grammar coverage is deliberately shallow: contract headers, function
// signatures and state variables are shaped, everything else (bodies,
// structs, events, expressions) is skipped by balanced-delimiter matching.
// A construct the parser cannot shape is skipped, never fatal; running out
// of input inside an open delimiter is a parse error for the whole file.
package parser

import (
	"fmt"

	"solscope/internal/ast"
	"solscope/internal/source"
	"solscope/internal/token"
)

// Parser consumes a token stream for a single file.
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
}

// New creates a parser over the given token stream.
func New(f *source.File, toks []token.Token) *Parser {
	return &Parser{file: f, toks: toks}
}

// Parse lexes nothing itself; it shapes the provided tokens into an
// ast.File.
func Parse(f *source.File, toks []token.Token) (*ast.File, error) {
	p := New(f, toks)
	return p.parseFile()
}

func (p *Parser) parseFile() (*ast.File, error) {
	out := &ast.File{Path: p.file.Path}

	for !p.atEOF() {
		tok := p.peek()
		switch {
		case tok.Kind == token.KwPragma || tok.Kind == token.KwImport || tok.Kind == token.KwUsing:
			if err := p.skipStatement(); err != nil {
				return nil, err
			}

		case tok.Kind.IsContractIntro():
			c, err := p.parseContract()
			if err != nil {
				return nil, err
			}
			if c != nil {
				out.Contracts = append(out.Contracts, c)
			}

		case tok.Kind.IsFunctionIntro():
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			if fn != nil {
				out.Functions = append(out.Functions, fn)
			}

		case tok.Kind == token.KwStruct || tok.Kind == token.KwEnum:
			if err := p.skipNamedBlock(); err != nil {
				return nil, err
			}

		case tok.Kind == token.KwEvent || tok.Kind == token.KwError:
			if err := p.skipStatement(); err != nil {
				return nil, err
			}

		case tok.Kind == token.Ident || tok.Kind == token.KwMapping:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			if v != nil {
				out.Variables = append(out.Variables, v)
			}

		default:
			// что-то незнакомое на верхнем уровне — пропускаем токен
			if tok.Kind == token.LBrace {
				if err := p.skipBraces(); err != nil {
					return nil, err
				}
			} else {
				p.bump()
			}
		}
	}
	return out, nil
}

// ---- token stream helpers ----

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) bump() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) eofError() error {
	return fmt.Errorf("%s: unexpected end of file (unbalanced declaration)", p.file.Path)
}

// skipStatement consumes tokens through the next top-depth semicolon.
// Delimiters are tracked so that `import {a, b} from "x";` and friends do
// not terminate early.
func (p *Parser) skipStatement() error {
	depth := 0
	for !p.atEOF() {
		tok := p.bump()
		switch tok.Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			depth--
		case token.Semicolon:
			if depth <= 0 {
				return nil
			}
		}
	}
	return p.eofError()
}

// skipBraces consumes a balanced { ... } block. The current token must be
// the opening brace.
func (p *Parser) skipBraces() error {
	if p.peek().Kind != token.LBrace {
		return nil
	}
	depth := 0
	for !p.atEOF() {
		tok := p.bump()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return p.eofError()
}

// skipParens consumes a balanced ( ... ) group. The current token must be
// the opening paren.
func (p *Parser) skipParens() error {
	if p.peek().Kind != token.LParen {
		return nil
	}
	depth := 0
	for !p.atEOF() {
		tok := p.bump()
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return p.eofError()
}

// skipNamedBlock consumes 'struct Name { ... }' / 'enum Name { ... }'.
func (p *Parser) skipNamedBlock() error {
	p.bump() // вводное ключевое слово
	for !p.atEOF() && p.peek().Kind != token.LBrace {
		if p.peek().Kind == token.Semicolon {
			p.bump()
			return nil
		}
		p.bump()
	}
	return p.skipBraces()
}
