package parser

import (
	"solscope/internal/ast"
	"solscope/internal/token"
)

// parseVariable shapes a state variable declaration: type tokens,
// attribute keywords, name, optional initializer, semicolon. The name is
// the last depth-0 identifier before the initializer (or the semicolon),
// which holds for elementary, user-defined, array and mapping types.
// Returns nil (no error) when no plausible name is found.
func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.peek()

	v := &ast.Variable{Span: start.Span}
	var nameTok token.Token
	depth := 0
	sawAssign := false

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			return nil, p.eofError()

		case token.LParen, token.LBracket:
			depth++
			p.bump()

		case token.RParen, token.RBracket:
			depth--
			p.bump()

		case token.LBrace:
			// внезапное тело — это не переменная
			if err := p.skipBraces(); err != nil {
				return nil, err
			}
			return nil, nil

		case token.Semicolon:
			p.bump()
			if nameTok.Kind != token.Ident {
				return nil, nil
			}
			v.Name = nameTok.Text
			v.Span = v.Span.Cover(nameTok.Span)
			return v, nil

		case token.Assign:
			sawAssign = true
			p.bump()

		case token.KwConstant:
			if depth == 0 && !sawAssign {
				v.Constant = true
			}
			p.bump()

		case token.KwImmutable:
			if depth == 0 && !sawAssign {
				v.Immutable = true
			}
			p.bump()

		case token.KwPublic, token.KwPrivate, token.KwInternal:
			if depth == 0 && !sawAssign {
				switch tok.Kind {
				case token.KwPublic:
					v.Visibility = ast.VisPublic
				case token.KwPrivate:
					v.Visibility = ast.VisPrivate
				case token.KwInternal:
					v.Visibility = ast.VisInternal
				}
			}
			p.bump()

		case token.Ident:
			if depth == 0 && !sawAssign {
				nameTok = tok
			}
			p.bump()

		default:
			p.bump()
		}
	}
}
