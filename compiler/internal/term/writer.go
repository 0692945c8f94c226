package term

import (
	"fmt"
	"io"
)

// Wprintf writes formatted text to an arbitrary io.Writer. Diagnostic
// rendering (internal/diag) uses this rather than calling fmt.Fprintf
// directly, so every writer-targeted renderer shares one call site.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
