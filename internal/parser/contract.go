package parser

import (
	"solscope/internal/ast"
	"solscope/internal/token"
)

// parseContract shapes 'contract|interface|library|abstract contract
// Name is ... { parts }'. Returns nil (without error) when the header does
// not look like a contract after all.
func (p *Parser) parseContract() (*ast.Contract, error) {
	intro := p.bump()
	kind := ast.ContractPlain

	switch intro.Kind {
	case token.KwInterface:
		kind = ast.ContractInterface
	case token.KwLibrary:
		kind = ast.ContractLibrary
	case token.KwAbstract:
		if p.peek().Kind != token.KwContract {
			// 'abstract' не перед contract — не объявление контракта
			return nil, nil
		}
		p.bump()
		kind = ast.ContractAbstract
	}

	nameTok := p.peek()
	if nameTok.Kind != token.Ident {
		// malformed header: resynchronize past the body if there is one
		for !p.atEOF() && p.peek().Kind != token.LBrace && p.peek().Kind != token.Semicolon {
			p.bump()
		}
		if p.peek().Kind == token.LBrace {
			if err := p.skipBraces(); err != nil {
				return nil, err
			}
		} else {
			p.bump()
		}
		return nil, nil
	}
	p.bump()

	// inheritance list: до открывающей скобки, скобки аргументов
	// конструктора учитываем
	for !p.atEOF() && p.peek().Kind != token.LBrace {
		if p.peek().Kind == token.LParen {
			if err := p.skipParens(); err != nil {
				return nil, err
			}
			continue
		}
		if p.peek().Kind == token.Semicolon {
			// контракт без тела не бывает, но не падаем
			p.bump()
			return nil, nil
		}
		p.bump()
	}
	if p.atEOF() {
		return nil, p.eofError()
	}
	p.bump() // {

	c := &ast.Contract{
		Kind: kind,
		Name: nameTok.Text,
		Span: intro.Span.Cover(nameTok.Span),
	}

	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			return nil, p.eofError()

		case tok.Kind == token.RBrace:
			closing := p.bump()
			c.Span = c.Span.Cover(closing.Span)
			return c, nil

		case tok.Kind.IsFunctionIntro():
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			if fn != nil {
				c.Functions = append(c.Functions, fn)
			}

		case tok.Kind == token.KwStruct || tok.Kind == token.KwEnum:
			if err := p.skipNamedBlock(); err != nil {
				return nil, err
			}

		case tok.Kind == token.KwEvent || tok.Kind == token.KwError || tok.Kind == token.KwUsing:
			if err := p.skipStatement(); err != nil {
				return nil, err
			}

		case tok.Kind == token.Ident || tok.Kind == token.KwMapping:
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			if v != nil {
				c.Variables = append(c.Variables, v)
			}

		case tok.Kind == token.LBrace:
			if err := p.skipBraces(); err != nil {
				return nil, err
			}

		default:
			p.bump()
		}
	}
}
