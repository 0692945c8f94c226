package term

import (
	"fmt"
	"os"
)

// Printf, Println, Eprintf and Eprintln are the sole stdout/stderr write
// points the CLI goes through; every diagnostic and status line in
// cmd/smlc funnels through here rather than calling fmt directly.
func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Println(a ...any)                { _, _ = fmt.Println(a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }
