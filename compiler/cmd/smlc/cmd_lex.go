package main

import (
	"os"
	"strings"

	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/sexpdump"
	"github.com/mlcore/smlcore/compiler/internal/term"
)

/* ---------- lex ---------- */

func cmdLex(args []string) int {
	format := "raw"
	var file string
	for _, a := range args {
		switch {
		case a == "--format=raw":
			format = "raw"
		case a == "--format=sexp":
			format = "sexp"
		case !strings.HasPrefix(a, "-") && file == "":
			file = a
		default:
			term.Eprintln("usage: smlc lex [--format=raw|sexp] <file>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: smlc lex [--format=raw|sexp] <file>")
		return 2
	}

	data, err := os.ReadFile(file)
	if err != nil {
		term.Eprintf("read %s: %v\n", file, err)
		return 1
	}

	src := lexer.NewSource(string(data), file)
	toks, lerr := lexer.Lex(src)
	printTokens(toks, format)
	if lerr != nil {
		reportLexError(file, string(data), src, lerr.(*lexer.Error))
		return 1
	}
	return 0
}

func printTokens(toks []lexer.Token, format string) {
	if format == "sexp" {
		term.Printf("%s\n", sexpdump.Tokens(toks).String())
		return
	}
	for _, t := range toks {
		lex := t.Text()
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		term.Printf("%d:%d  %-16s  %q\n", t.Line, t.Col, t.Class, lex)
	}
}
