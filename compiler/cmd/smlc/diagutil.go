package main

import (
	"github.com/mlcore/smlcore/compiler/internal/diag"
	"github.com/mlcore/smlcore/compiler/internal/lexer"
	"github.com/mlcore/smlcore/compiler/internal/parser"
	"github.com/mlcore/smlcore/compiler/internal/term"
)

// reportLexError renders a lexer failure as a catalog-coded,
// source-annotated diagnostic.
func reportLexError(file, source string, src *lexer.Source, lerr *lexer.Error) {
	line, col := src.LineCol(lerr.Pos)
	entry := diag.MustLookup("lexer", lerr.CatalogKey(), "SML-L000", "lex error")
	d := diag.Diagnostic{
		Code:    entry.ID,
		File:    file,
		Message: lerr.Error(),
		Span:    diag.Span{Start: diag.Pos{Line: line, Col: col}},
		Help:    entry.Help,
	}
	term.Eprintf("%s", diag.Render(d, source))
}

// reportParseError renders a parser failure the same way.
func reportParseError(file, source string, perr *parser.Error) {
	entry := diag.MustLookup("parser", perr.CatalogKey(), "SML-P000", "parse error")
	d := diag.Diagnostic{
		Code:    entry.ID,
		File:    file,
		Message: perr.Error(),
		Span:    diag.Span{Start: diag.Pos{Line: perr.Line, Col: perr.Col}},
		Help:    entry.Help,
	}
	term.Eprintf("%s", diag.Render(d, source))
}
