package sexpdump

import (
	"strings"
	"testing"

	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/parser"
)

func TestTokensRendersEachToken(t *testing.T) {
	toks, err := lexer.Lex(lexer.NewSource("val x = 0;", "test"))
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	out := Tokens(toks).String()
	if !strings.HasPrefix(out, "(tokens ") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "(tok reserved val)") {
		t.Fatalf("missing reserved val token: %q", out)
	}
	if !strings.Contains(out, "(tok ident x)") {
		t.Fatalf("missing ident token: %q", out)
	}
}

func TestFileRendersValBind(t *testing.T) {
	f, err := parser.Parse(lexer.NewSource("val x = f y;", "test"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := File(f).String()
	if !strings.Contains(out, "(val-decl x (app (ident f) (ident y)))") {
		t.Fatalf("unexpected output: %q", out)
	}
}
