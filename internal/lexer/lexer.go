// Package lexer scans Solidity source into the token stream and comment
// list the declaration parser and directive extractor consume.
//
// Only the lexical surface a declaration-level checker needs is covered:
// identifiers, keywords, literals, structural punctuation. Everything else
// is emitted as an opaque Op token. Comments are not trivia on tokens but
// a separate ordered list, because the suppression directives live there.
package lexer

import (
	"fmt"

	"solscope/internal/source"
	"solscope/internal/token"
)

// Lexer scans one file into tokens and comments.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	tokens   []token.Token
	comments []token.Comment
}

// New creates a lexer for the provided file.
func New(f *source.File) *Lexer {
	return &Lexer{
		file:   f,
		cursor: NewCursor(f),
	}
}

// Lex scans the whole file. An unterminated string or block comment is a
// lexical error; the caller treats it as a parse failure for the file.
func Lex(f *source.File) ([]token.Token, []token.Comment, error) {
	lx := New(f)
	if err := lx.run(); err != nil {
		return nil, nil, err
	}
	return lx.tokens, lx.comments, nil
}

func (lx *Lexer) run() error {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		// пробелы и переводы строк пропускаем
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			if handled, err := lx.scanComment(); err != nil {
				return err
			} else if handled {
				continue
			}
		}

		switch {
		case isIdentStart(b):
			lx.scanIdent()
		case b >= '0' && b <= '9':
			lx.scanNumber()
		case b == '"' || b == '\'':
			if err := lx.scanString(b); err != nil {
				return err
			}
		default:
			lx.scanPunct()
		}
	}
	lx.tokens = append(lx.tokens, token.Token{
		Kind: token.EOF,
		Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
	})
	return nil
}

// scanComment reports whether a comment was consumed. Returns false when
// the '/' is an ordinary operator.
func (lx *Lexer) scanComment() (bool, error) {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false, nil
	}

	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.comments = append(lx.comments, token.Comment{
			Kind: token.CommentLine,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true, nil

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			return false, fmt.Errorf("%s: unterminated block comment at offset %d", lx.file.Path, sp.Start)
		}
		lx.comments = append(lx.comments, token.Comment{
			Kind: token.CommentBlock,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true, nil

	default:
		return false, nil
	}
}

func (lx *Lexer) scanIdent() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentPart(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	lx.tokens = append(lx.tokens, token.Token{Kind: kind, Span: sp, Text: text})
}

func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()
	// 0x префикс
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (isHexDigit(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
	} else {
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if (b >= '0' && b <= '9') || b == '.' || b == '_' || b == 'e' || b == 'E' {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.tokens = append(lx.tokens, token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanString(quote byte) error {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump() // экранированный символ
			continue
		}
		if b == quote {
			sp := lx.cursor.SpanFrom(start)
			lx.tokens = append(lx.tokens, token.Token{
				Kind: token.String,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			return nil
		}
		if b == '\n' {
			break
		}
	}
	return fmt.Errorf("%s: unterminated string literal at offset %d", lx.file.Path, uint32(start))
}

func (lx *Lexer) scanPunct() {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '=':
		// '==' и '=>' это операторы, одиночный '=' — инициализатор
		if lx.cursor.Peek() == '=' || lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			kind = token.Op
		} else {
			kind = token.Assign
		}
	default:
		kind = token.Op
	}

	sp := lx.cursor.SpanFrom(start)
	lx.tokens = append(lx.tokens, token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
