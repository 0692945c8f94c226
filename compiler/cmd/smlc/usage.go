package main

import "github.com/mlcore/smlcore/compiler/internal/term"

func usage() {
	term.Eprintln("smlc — Standard-ML-family lexer/parser core (Stage-1)")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  smlc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                               Print version")
	term.Eprintln("  help                                   Show this help")
	term.Eprintln("  lex [--format=raw|sexp] <file>        Lex a file and print its token stream")
	term.Eprintln("  parse [--format=raw|sexp] <file>      Parse a file and print its AST outline")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - On a lex or parse failure, whatever was produced before the error is")
	term.Eprintln("    printed first, followed by the error and its source position.")
}
