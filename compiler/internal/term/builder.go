package term

import (
	"fmt"
	"strings"
)

// Bprintf writes formatted text into a strings.Builder. AST dump uses
// this instead of fmt.Fprintf directly so every builder-based renderer
// shares one call site.
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
