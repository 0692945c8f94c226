package parser

import (
	"fmt"

	"github.com/mlcore/smlcore/compiler/internal/ast"
	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/term"
)

// Error is the structured record parse failures surface:
// a short header, the source position, what went wrong, and an
// optional elaboration.
type Error struct {
	Header   string
	Line     int
	Col      int
	What     string
	Explain  string
	UnexpEOF bool // true when What describes running out of tokens
}

func (e *Error) Error() string {
	if e.Explain != "" {
		return fmt.Sprintf("%s at %d:%d: %s (%s)", e.Header, e.Line, e.Col, e.What, e.Explain)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Header, e.Line, e.Col, e.What)
}

// CatalogKey returns the internal/diag catalog key for this error, for
// tools that want a stable code and help text alongside the message.
func (e *Error) CatalogKey() string {
	if e.UnexpEOF {
		return "unexpected-eof"
	}
	return "expected-token"
}

// Parser consumes a comment-filtered token slice by index. It never
// rewinds past the lexer boundary: once built, the token slice is
// immutable and pos only moves forward.
type Parser struct {
	toks []lexer.Token
	pos  int
}

// New builds a Parser over an already comment-filtered token slice.
func New(toks []lexer.Token) *Parser { return &Parser{toks: toks} }

// Parse is the top-level entry point: it lexes src, drops
// comments, parses the remaining tokens as a File, and reports parse
// progress to stdout.
func Parse(src *lexer.Source) (*ast.File, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	filtered := make([]lexer.Token, 0, len(toks))
	for _, t := range toks {
		if !t.IsComment() {
			filtered = append(filtered, t)
		}
	}
	p := New(filtered)
	f, perr := p.ParseFile()
	term.Printf("Successfully parsed %d out of %d tokens\n", p.pos, len(filtered))
	if perr != nil {
		return f, perr
	}
	return f, nil
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return lexer.Token{Class: lexer.KindEOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atTag(tag lexer.ReservedTag) bool {
	t := p.cur()
	return t.Class == lexer.KindReserved && t.Tag == tag
}

func (p *Parser) atClass(k lexer.Kind) bool { return p.cur().Class == k }

func (p *Parser) expectTag(tag lexer.ReservedTag, what string) (lexer.Token, *Error) {
	if !p.atTag(tag) {
		return lexer.Token{}, p.unexpected(what)
	}
	return p.advance(), nil
}

func (p *Parser) expectClass(k lexer.Kind, what string) (lexer.Token, *Error) {
	if !p.atClass(k) {
		return lexer.Token{}, p.unexpected(what)
	}
	return p.advance(), nil
}

func (p *Parser) unexpected(what string) *Error {
	t := p.cur()
	line, col := t.Line, t.Col
	if t.Class == lexer.KindEOF {
		return &Error{Header: "parse error", Line: line, Col: col, What: "unexpected end of input", Explain: what, UnexpEOF: true}
	}
	return &Error{Header: "parse error", Line: line, Col: col, What: fmt.Sprintf("unexpected %s %q", t.Class, t.Text()), Explain: what}
}

// ParseFile parses a sequence of top-level `val` bindings.
func (p *Parser) ParseFile() (*ast.File, *Error) {
	f := &ast.File{}
	for !p.atClass(lexer.KindEOF) {
		vb, err := p.parseValBind()
		if err != nil {
			return f, err
		}
		f.Binds = append(f.Binds, vb)
	}
	return f, nil
}

func (p *Parser) parseValBind() (*ast.ValBind, *Error) {
	valTok, err := p.expectTag(lexer.TagVal, "expected 'val' to begin a binding")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectClass(lexer.KindIdentifier, "expected the bound identifier")
	if err != nil {
		return nil, err
	}
	eqTok, err := p.expectTag(lexer.TagEqual, "expected '=' after binding name")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semiTok, err := p.expectTag(lexer.TagSemicolon, "expected ';' to terminate the binding")
	if err != nil {
		return nil, err
	}
	return &ast.ValBind{ValTok: valTok, NameTok: nameTok, EqTok: eqTok, Value: value, SemiTok: semiTok}, nil
}

// parseExpr parses left-associative juxtaposition: one atom, followed
// by zero or more further atoms folded in as applications.
func (p *Parser) parseExpr() (ast.Expr, *Error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &ast.AppExpr{Fn: fn, Arg: arg}
	}
	return fn, nil
}

func (p *Parser) startsAtom() bool {
	t := p.cur()
	switch t.Class {
	case lexer.KindIdentifier, lexer.KindQualifier,
		lexer.KindIntegerConstant, lexer.KindWordConstant,
		lexer.KindRealConstant, lexer.KindStringConstant:
		return true
	case lexer.KindReserved:
		return t.Tag == lexer.TagLParen
	default:
		return false
	}
}

func (p *Parser) parseAtom() (ast.Expr, *Error) {
	t := p.cur()
	switch {
	case t.Class == lexer.KindIdentifier || t.Class == lexer.KindQualifier:
		return p.parseIdentExpr()
	case t.IsConstant():
		p.advance()
		return &ast.ConstExpr{Tok: t}, nil
	case p.atTag(lexer.TagLParen):
		return p.parseParenOrTuple()
	default:
		return nil, p.unexpected("expected an identifier, constant, or parenthesized expression")
	}
}

func (p *Parser) parseIdentExpr() (ast.Expr, *Error) {
	var quals []lexer.Token
	for p.atClass(lexer.KindQualifier) {
		quals = append(quals, p.advance())
	}
	name, err := p.expectClass(lexer.KindIdentifier, "expected an identifier after qualifier")
	if err != nil {
		return nil, err
	}
	return &ast.IdentExpr{Qualifiers: quals, NameTok: name}, nil
}

func (p *Parser) parseParenOrTuple() (ast.Expr, *Error) {
	lparen, err := p.expectTag(lexer.TagLParen, "expected '('")
	if err != nil {
		return nil, err
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atTag(lexer.TagComma) {
		rparen, err := p.expectTag(lexer.TagRParen, "expected ')' to close parenthesized expression")
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{LParen: lparen, Inner: first, RParen: rparen}, nil
	}
	elems := []ast.Expr{first}
	var commas []lexer.Token
	for p.atTag(lexer.TagComma) {
		commas = append(commas, p.advance())
		el, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
	rparen, err := p.expectTag(lexer.TagRParen, "expected ')' to close tuple expression")
	if err != nil {
		return nil, err
	}
	return &ast.TupleExpr{LParen: lparen, Elems: elems, Commas: commas, RParen: rparen}, nil
}
