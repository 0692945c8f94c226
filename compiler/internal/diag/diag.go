package diag

import (
	"fmt"
	"strings"

	"github.com/mlcore/smlcore/compiler/internal/term"
)

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Diagnostic is a compiler message anchored at a span, carrying enough
// to render both a short one-liner and a source-annotated block.
type Diagnostic struct {
	Code    string // e.g. "SML-L003"; empty is allowed
	File    string
	Message string
	Span    Span
	Notes   []string
	Help    string
}

func (d Diagnostic) Error() string {
	if d.Span.Start.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, d.Message)
}

// Render produces a caret-and-squiggle annotated rendering of d against
// source, in the style popularized by rustc: a location header, the
// offending source line, and an underline spanning the diagnostic's
// column range.
func Render(d Diagnostic, source string) string {
	var b strings.Builder
	if d.Code != "" {
		term.Wprintf(&b, "error[%s]: %s\n", d.Code, d.Message)
	} else {
		term.Wprintf(&b, "error: %s\n", d.Message)
	}
	if d.File != "" && d.Span.Start.Line > 0 {
		term.Wprintf(&b, " --> %s:%d:%d\n", d.File, d.Span.Start.Line, d.Span.Start.Col)
	}
	writeSourceLine(&b, source, d.Span)
	for _, n := range d.Notes {
		if strings.TrimSpace(n) != "" {
			term.Wprintf(&b, "note: %s\n", n)
		}
	}
	if strings.TrimSpace(d.Help) != "" {
		term.Wprintf(&b, "help: %s\n", d.Help)
	}
	return b.String()
}

func writeSourceLine(b *strings.Builder, source string, sp Span) {
	if sp.Start.Line <= 0 {
		return
	}
	lineText := nthLine(source, sp.Start.Line)
	lnStr := fmt.Sprintf("%d", sp.Start.Line)
	linePrefix := " " + lnStr + " | "
	underPrefix := " " + strings.Repeat(" ", len(lnStr)) + " | "

	term.Wprintf(b, "%s%s\n", linePrefix, lineText)
	b.WriteString(underPrefix)
	writeUnderline(b, lineText, sp.Start.Col, endCol(sp))
	b.WriteByte('\n')
}

func endCol(sp Span) int {
	if sp.End.Line == sp.Start.Line && sp.End.Col > sp.Start.Col {
		return sp.End.Col
	}
	return 0
}

func writeUnderline(b *strings.Builder, line string, col, endColumn int) {
	runes := []rune(line)
	start := clamp(col-1, 0, len(runes))
	end := start + 1
	if endColumn > col {
		end = clamp(endColumn-1, start+1, len(runes))
	}
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	if end-start > 1 {
		b.WriteString(strings.Repeat("~", end-start-1))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nthLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
