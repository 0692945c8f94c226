package parser

import (
	"testing"

	"github.com/mlcore/smlcore/compiler/internal/ast"
	"github.com/mlcore/smlcore/compiler/internal/lexer"
)

func parseSrc(t *testing.T, text string) (*ast.File, error) {
	t.Helper()
	return Parse(lexer.NewSource(text, "test"))
}

func TestParseSimpleValBind(t *testing.T) {
	f, err := parseSrc(t, "val x = 0;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(f.Binds) != 1 {
		t.Fatalf("expected 1 bind, got %d", len(f.Binds))
	}
	vb := f.Binds[0]
	if vb.NameTok.Text() != "x" {
		t.Fatalf("unexpected name: %q", vb.NameTok.Text())
	}
	c, ok := vb.Value.(*ast.ConstExpr)
	if !ok || c.Tok.Text() != "0" {
		t.Fatalf("unexpected value: %#v", vb.Value)
	}
}

func TestParseQualifiedIdentApplication(t *testing.T) {
	f, err := parseSrc(t, "val y = Foo.bar x 1;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	app, ok := f.Binds[0].Value.(*ast.AppExpr)
	if !ok {
		t.Fatalf("expected AppExpr, got %#v", f.Binds[0].Value)
	}
	inner, ok := app.Fn.(*ast.AppExpr)
	if !ok {
		t.Fatalf("expected nested AppExpr, got %#v", app.Fn)
	}
	callee, ok := inner.Fn.(*ast.IdentExpr)
	if !ok || callee.Text() != "Foo.bar" {
		t.Fatalf("unexpected callee: %#v", inner.Fn)
	}
	arg1, ok := inner.Arg.(*ast.IdentExpr)
	if !ok || arg1.Text() != "x" {
		t.Fatalf("unexpected first arg: %#v", inner.Arg)
	}
	arg2, ok := app.Arg.(*ast.ConstExpr)
	if !ok || arg2.Tok.Text() != "1" {
		t.Fatalf("unexpected second arg: %#v", app.Arg)
	}
}

func TestParseTupleExpr(t *testing.T) {
	f, err := parseSrc(t, "val p = (1, 2, 3);")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	tup, ok := f.Binds[0].Value.(*ast.TupleExpr)
	if !ok {
		t.Fatalf("expected TupleExpr, got %#v", f.Binds[0].Value)
	}
	if len(tup.Elems) != 3 || len(tup.Commas) != 2 {
		t.Fatalf("unexpected tuple shape: %d elems, %d commas", len(tup.Elems), len(tup.Commas))
	}
}

func TestParseParenExprIsNotATuple(t *testing.T) {
	f, err := parseSrc(t, "val p = (x);")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, ok := f.Binds[0].Value.(*ast.ParenExpr); !ok {
		t.Fatalf("expected ParenExpr, got %#v", f.Binds[0].Value)
	}
}

func TestParseMultipleBindings(t *testing.T) {
	f, err := parseSrc(t, "val a = 1; val b = a;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(f.Binds) != 2 {
		t.Fatalf("expected 2 binds, got %d", len(f.Binds))
	}
}

func TestParseMissingSemicolonFails(t *testing.T) {
	_, err := parseSrc(t, "val x = 0")
	if err == nil {
		t.Fatalf("expected an error for the missing ';'")
	}
}

func TestParseCommentsAreFiltered(t *testing.T) {
	f, err := parseSrc(t, "(* a comment *) val x = 0;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(f.Binds) != 1 {
		t.Fatalf("expected 1 bind, got %d", len(f.Binds))
	}
}
