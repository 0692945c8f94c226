package main

import (
	"flag"
	"os"

	"github.com/mlcore/smlcore/compiler/internal/term"
	"github.com/mlcore/smlcore/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
