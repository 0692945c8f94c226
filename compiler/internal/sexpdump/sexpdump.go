// Package sexpdump renders tokens and ASTs as canonical S-expressions
// (github.com/alttpo/sexp), for the "--format=sexp" output mode of the
// lex and parse CLI subcommands.
package sexpdump

import (
	"github.com/alttpo/sexp"

	"github.com/mlcore/smlcore/compiler/internal/ast"
	"github.com/mlcore/smlcore/compiler/internal/lexer"
)

// atom encodes s as a token node when its characters are all valid
// sexp token characters, and falls back to a hexadecimal node
// otherwise — string constants and comments routinely carry quotes,
// spaces, and escapes that a bare token cannot hold.
func atom(s string) *sexp.Node {
	if n, err := sexp.LimitedProducer.Token(s); err == nil {
		return n
	}
	return sexp.MustHexadecimal([]byte(s))
}

func list(children ...*sexp.Node) *sexp.Node {
	return sexp.MustList(children...)
}

func tokenClassTag(k lexer.Kind) string {
	switch k {
	case lexer.KindReserved:
		return "reserved"
	case lexer.KindIdentifier:
		return "ident"
	case lexer.KindQualifier:
		return "qualifier"
	case lexer.KindIntegerConstant:
		return "int"
	case lexer.KindWordConstant:
		return "word"
	case lexer.KindRealConstant:
		return "real"
	case lexer.KindStringConstant:
		return "string"
	case lexer.KindComment:
		return "comment"
	default:
		return "eof"
	}
}

// Token renders a single token as `(tok <class> <text>)`.
func Token(t lexer.Token) *sexp.Node {
	return list(atom("tok"), atom(tokenClassTag(t.Class)), atom(t.Text()))
}

// Tokens renders a token stream as `(tokens (tok ...) (tok ...) ...)`.
func Tokens(toks []lexer.Token) *sexp.Node {
	children := make([]*sexp.Node, len(toks))
	for i, t := range toks {
		children[i] = Token(t)
	}
	return list(append([]*sexp.Node{atom("tokens")}, children...)...)
}

// File renders a parsed File as `(file (val-decl ...) ...)`.
func File(f *ast.File) *sexp.Node {
	children := make([]*sexp.Node, len(f.Binds))
	for i, vb := range f.Binds {
		children[i] = valBind(vb)
	}
	return list(append([]*sexp.Node{atom("file")}, children...)...)
}

func valBind(vb *ast.ValBind) *sexp.Node {
	return list(atom("val-decl"), atom(vb.NameTok.Text()), expr(vb.Value))
}

func expr(e ast.Expr) *sexp.Node {
	switch v := e.(type) {
	case *ast.IdentExpr:
		return list(atom("ident"), atom(v.Text()))
	case *ast.ConstExpr:
		return list(atom(tokenClassTag(v.Tok.Class)), atom(v.Tok.Text()))
	case *ast.ParenExpr:
		return list(atom("paren"), expr(v.Inner))
	case *ast.TupleExpr:
		children := make([]*sexp.Node, len(v.Elems))
		for i, el := range v.Elems {
			children[i] = expr(el)
		}
		return list(append([]*sexp.Node{atom("tuple")}, children...)...)
	case *ast.AppExpr:
		return list(atom("app"), expr(v.Fn), expr(v.Arg))
	default:
		return atom("?")
	}
}
