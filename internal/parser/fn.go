package parser

import (
	"solscope/internal/ast"
	"solscope/internal/token"
)

// parseFunction shapes a function-like declaration: keyword, optional
// name, parameter list, attribute soup, then either a skipped body or a
// terminating semicolon. Returns nil (no error) for shapes it cannot
// classify.
func (p *Parser) parseFunction() (*ast.Function, error) {
	intro := p.bump()

	fn := &ast.Function{Span: intro.Span}
	switch intro.Kind {
	case token.KwConstructor:
		fn.Kind = ast.FnConstructor
	case token.KwFallback:
		fn.Kind = ast.FnFallback
	case token.KwReceive:
		fn.Kind = ast.FnReceive
	case token.KwModifier:
		fn.Kind = ast.FnModifier
	default:
		fn.Kind = ast.FnFunction
	}

	// имя обязательно для function/modifier, отсутствует у остальных
	if fn.Kind == ast.FnFunction || fn.Kind == ast.FnModifier {
		nameTok := p.peek()
		if nameTok.Kind != token.Ident {
			// function-typed variable or malformed declaration; let the
			// statement skipper resynchronize
			if err := p.skipFunctionTail(); err != nil {
				return nil, err
			}
			return nil, nil
		}
		p.bump()
		fn.RawName = nameTok.Text
		fn.Span = fn.Span.Cover(nameTok.Span)
	}

	if p.peek().Kind == token.LParen {
		if err := p.skipParens(); err != nil {
			return nil, err
		}
	}

	// attribute soup: visibility, mutability, virtual/override, modifier
	// invocations, returns clause
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			return nil, p.eofError()

		case tok.Kind.IsVisibility():
			p.bump()
			switch tok.Kind {
			case token.KwPublic:
				fn.Visibility = ast.VisPublic
			case token.KwPrivate:
				fn.Visibility = ast.VisPrivate
			case token.KwInternal:
				fn.Visibility = ast.VisInternal
			case token.KwExternal:
				fn.Visibility = ast.VisExternal
			}

		case tok.Kind == token.KwReturns:
			p.bump()
			if err := p.skipParens(); err != nil {
				return nil, err
			}

		case tok.Kind == token.Ident || tok.Kind == token.KwConstant:
			// state mutability, virtual/override, or a modifier invocation
			p.bump()
			if p.peek().Kind == token.LParen {
				if err := p.skipParens(); err != nil {
					return nil, err
				}
			}

		case tok.Kind == token.LBrace:
			if err := p.skipBraces(); err != nil {
				return nil, err
			}
			return fn, nil

		case tok.Kind == token.Semicolon:
			p.bump()
			return fn, nil

		default:
			// неожиданный токен в атрибутах — объявление не распознано
			if err := p.skipFunctionTail(); err != nil {
				return nil, err
			}
			return nil, nil
		}
	}
}

// skipFunctionTail consumes the rest of an unrecognizable function-like
// declaration: through a body if one opens, otherwise to the semicolon.
func (p *Parser) skipFunctionTail() error {
	for !p.atEOF() {
		switch p.peek().Kind {
		case token.LBrace:
			return p.skipBraces()
		case token.Semicolon:
			p.bump()
			return nil
		case token.LParen:
			if err := p.skipParens(); err != nil {
				return err
			}
		default:
			p.bump()
		}
	}
	return p.eofError()
}
