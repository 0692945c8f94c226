package main

import (
	"os"
	"strings"

	"github.com/mlcore/smlcore/compiler/internal/ast"
	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/parser"
	"github.com/mlcore/smlcore/compiler/internal/sexpdump"
	"github.com/mlcore/smlcore/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(args []string) int {
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
			term.Eprintln("usage: smlc parse [--format=raw|sexp] <file>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: smlc parse [--format=raw|sexp] <file>")
		return 2
	}

	data, err := os.ReadFile(file)
	if err != nil {
		term.Eprintf("read %s: %v\n", file, err)
		return 1
	}

	src := lexer.NewSource(string(data), file)
	f, perr := parser.Parse(src)
	if f != nil {
		printFile(f, format)
	}
	if perr != nil {
		switch e := perr.(type) {
		case *lexer.Error:
			reportLexError(file, string(data), src, e)
		case *parser.Error:
			reportParseError(file, string(data), e)
		default:
			term.Eprintf("%s: %v\n", file, perr)
		}
		return 1
	}
	return 0
}

func printFile(f *ast.File, format string) {
	if format == "sexp" {
		term.Printf("%s\n", sexpdump.File(f).String())
		return
	}
	term.Printf("%s", ast.DumpFile(f))
}
