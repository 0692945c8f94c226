package ast

import (
	"strings"

	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/term"
)

/*** NODES ***/

// Node is implemented by every AST node. Each node retains the literal
// delimiter tokens it was built from (parens, commas, keywords, the
// identifier or constant itself) so that source positions and lexemes
// survive parsing untouched.
type Node interface{ node() }

// File is the root of a parsed compilation unit: a sequence of
// top-level value bindings.
type File struct {
	Binds []*ValBind
}

func (*File) node() {}

// ValBind is `val <ident> = <expr> ;`.
type ValBind struct {
	ValTok  lexer.Token // the 'val' keyword
	NameTok lexer.Token // the bound identifier
	EqTok   lexer.Token // '='
	Value   Expr
	SemiTok lexer.Token // ';'
}

func (*ValBind) node() {}

/*** EXPRESSIONS ***/

// Expr is implemented by every expression node.
type Expr interface {
	Node
	expr()
}

// IdentExpr is a bare or qualified identifier: one final Identifier
// token, preceded by zero or more Qualifier tokens.
type IdentExpr struct {
	Qualifiers []lexer.Token // KindQualifier tokens, in order
	NameTok    lexer.Token   // KindIdentifier
}

func (*IdentExpr) node() {}
func (*IdentExpr) expr() {}

// Text returns the identifier's full dotted spelling, e.g. "Foo.bar".
func (e *IdentExpr) Text() string {
	var b strings.Builder
	for _, q := range e.Qualifiers {
		b.WriteString(q.Text())
		b.WriteByte('.')
	}
	b.WriteString(e.NameTok.Text())
	return b.String()
}

// ConstExpr wraps any of the four constant token kinds.
type ConstExpr struct {
	Tok lexer.Token
}

func (*ConstExpr) node() {}
func (*ConstExpr) expr() {}

// ParenExpr is `( e )`, retaining both parens.
type ParenExpr struct {
	LParen lexer.Token
	Inner  Expr
	RParen lexer.Token
}

func (*ParenExpr) node() {}
func (*ParenExpr) expr() {}

// TupleExpr is `( e1 , e2 , ... , en )` with n >= 2, retaining every
// comma alongside the surrounding parens.
type TupleExpr struct {
	LParen lexer.Token
	Elems  []Expr
	Commas []lexer.Token // len(Commas) == len(Elems)-1
	RParen lexer.Token
}

func (*TupleExpr) node() {}
func (*TupleExpr) expr() {}

// AppExpr is left-associative juxtaposition: `f a b` parses as
// `(f a) b`. Fn and Arg are atomic expressions (identifier, constant,
// parenthesized, or tuple) or a nested AppExpr.
type AppExpr struct {
	Fn  Expr
	Arg Expr
}

func (*AppExpr) node() {}
func (*AppExpr) expr() {}

/*** DUMP (pretty outline for CLI) ***/

// DumpFile renders a File as a flat, readable outline of its bindings.
func DumpFile(f *File) string {
	var b strings.Builder
	for _, vb := range f.Binds {
		term.Bprintf(&b, "val %s = %s\n", vb.NameTok.Text(), exprString(vb.Value))
	}
	return b.String()
}

func exprString(e Expr) string {
	switch v := e.(type) {
	case *IdentExpr:
		return v.Text()
	case *ConstExpr:
		return v.Tok.Text()
	case *ParenExpr:
		return "(" + exprString(v.Inner) + ")"
	case *TupleExpr:
		parts := make([]string, len(v.Elems))
		for i, el := range v.Elems {
			parts[i] = exprString(el)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *AppExpr:
		return exprString(v.Fn) + " " + exprString(v.Arg)
	default:
		return "<expr>"
	}
}
