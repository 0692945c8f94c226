package lexer

import "testing"

func lexAll(t *testing.T, src string) ([]Token, error) {
	t.Helper()
	return Lex(NewSource(src, "test"))
}

func texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text()
	}
	return out
}

func classes(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Class
	}
	return out
}

func TestEmptyInput(t *testing.T) {
	toks, err := lexAll(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

func TestValBinding(t *testing.T) {
	toks, err := lexAll(t, "val x = 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantClasses := []Kind{KindReserved, KindIdentifier, KindReserved, KindIntegerConstant}
	wantText := []string{"val", "x", "=", "0"}
	if got := classes(toks); !equalKinds(got, wantClasses) {
		t.Fatalf("classes = %v, want %v", got, wantClasses)
	}
	if got := texts(toks); !equalStrings(got, wantText) {
		t.Fatalf("texts = %v, want %v", got, wantText)
	}
	if toks[0].Tag != TagVal || toks[2].Tag != TagEqual {
		t.Fatalf("unexpected tags: %v %v", toks[0].Tag, toks[2].Tag)
	}
}

func TestHexWordConstant(t *testing.T) {
	toks, err := lexAll(t, "0wx1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Class != KindWordConstant || toks[0].Text() != "0wx1A" {
		t.Fatalf("got %v", toks)
	}
}

func TestNegativeHexInt(t *testing.T) {
	toks, err := lexAll(t, "~0x10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Class != KindIntegerConstant || toks[0].Text() != "~0x10" {
		t.Fatalf("got %v", toks)
	}
}

func TestZeroWNoDigitFallsBackToIdentifier(t *testing.T) {
	toks, err := lexAll(t, "0w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantClasses := []Kind{KindIntegerConstant, KindIdentifier}
	wantText := []string{"0", "w"}
	if got := classes(toks); !equalKinds(got, wantClasses) {
		t.Fatalf("classes = %v, want %v", got, wantClasses)
	}
	if got := texts(toks); !equalStrings(got, wantText) {
		t.Fatalf("texts = %v, want %v", got, wantText)
	}
}

func TestQualifiedIdentifier(t *testing.T) {
	toks, err := lexAll(t, "Foo.bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantClasses := []Kind{KindQualifier, KindIdentifier}
	wantText := []string{"Foo", "bar"}
	if got := classes(toks); !equalKinds(got, wantClasses) {
		t.Fatalf("classes = %v, want %v", got, wantClasses)
	}
	if got := texts(toks); !equalStrings(got, wantText) {
		t.Fatalf("texts = %v, want %v", got, wantText)
	}
}

func TestStringWithEscapes(t *testing.T) {
	src := `"a\t\065ÿz"`
	toks, err := lexAll(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Class != KindStringConstant || toks[0].Text() != src {
		t.Fatalf("got %v", toks)
	}
}

func TestNestedComment(t *testing.T) {
	toks, err := lexAll(t, "(* outer (* inner *) still outer *) 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", toks)
	}
	if toks[0].Class != KindComment || toks[0].Text() != "(* outer (* inner *) still outer *)" {
		t.Fatalf("unexpected comment token: %+v", toks[0])
	}
	if toks[1].Class != KindIntegerConstant || toks[1].Text() != "1" {
		t.Fatalf("unexpected trailing token: %+v", toks[1])
	}
}

func TestRealExponentUnsupported(t *testing.T) {
	toks, err := lexAll(t, "1.0E2")
	if err == nil {
		t.Fatalf("expected error, got none (tokens=%v)", toks)
	}
	if err.Error() != "real constants with exponents not supported yet" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(toks) != 0 {
		t.Fatalf("expected no partial tokens, got %v", toks)
	}
}

func TestReservedPrefacedByQualifierFails(t *testing.T) {
	toks, err := lexAll(t, "Foo.val")
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if err.Error() != "reserved word 'val' prefaced by qualifiers" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(toks) != 1 || toks[0].Class != KindQualifier || toks[0].Text() != "Foo" {
		t.Fatalf("unexpected partial tokens: %v", toks)
	}
}

func TestUnclosedString(t *testing.T) {
	toks, err := lexAll(t, `"abc`)
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if err.Error() != "unclosed string starting at 0" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(toks) != 0 {
		t.Fatalf("expected no partial tokens, got %v", toks)
	}
}

func TestDotDotDot(t *testing.T) {
	toks, err := lexAll(t, "...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Tag != TagDotDotDot || toks[0].Text() != "..." {
		t.Fatalf("got %v", toks)
	}
}

func TestLoneDotFails(t *testing.T) {
	_, err := lexAll(t, ". x")
	if err == nil || err.Error() != "unexpected '.'" {
		t.Fatalf("expected dot error, got %v", err)
	}
}

func TestStarCloseParenOutsideCommentIsTwoTokens(t *testing.T) {
	toks, err := lexAll(t, "*)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantClasses := []Kind{KindReserved, KindReserved}
	if got := classes(toks); !equalKinds(got, wantClasses) {
		t.Fatalf("classes = %v, want %v", got, wantClasses)
	}
	if toks[0].Tag != TagStar || toks[1].Tag != TagRParen {
		t.Fatalf("unexpected tags: %v %v", toks[0].Tag, toks[1].Tag)
	}
}

func TestSliceDisjointness(t *testing.T) {
	toks, err := lexAll(t, "val x = ~0wx1A + Foo.bar (* note *) \"s\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Slice.End > toks[i+1].Slice.Start {
			t.Fatalf("tokens %d and %d overlap: %+v %+v", i, i+1, toks[i], toks[i+1])
		}
	}
}

func TestIdempotentSlicing(t *testing.T) {
	src := NewSource("val x = 0", "test")
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range toks {
		if src.Subseq(tok.Slice.Start, tok.Slice.Len()).Text() != tok.Text() {
			t.Fatalf("slice round-trip mismatch for %+v", tok)
		}
	}
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
