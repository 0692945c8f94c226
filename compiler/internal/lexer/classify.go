package lexer

// Character classifier: pure predicates over a single rune, used by the
// state machine in lexer.go to decide transitions.

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// symbolicChars is the operator alphabet a symbolic identifier or
// reserved symbol is built from.
const symbolicChars = "!%&$#+-/:<=>?@\\~`^|*"

func isSymbolic(r rune) bool {
	for _, c := range symbolicChars {
		if r == c {
			return true
		}
	}
	return false
}

func isAlphaNumPrimeOrUnderscore(r rune) bool {
	return isLetter(r) || isDecDigit(r) || r == '\'' || r == '_'
}

func isValidSingleEscapeChar(r rune) bool {
	switch r {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '"':
		return true
	}
	return false
}

// isValidControlEscapeChar covers the 32 ASCII control-naming characters
// '@' through '_' used in \^c control escapes.
func isValidControlEscapeChar(r rune) bool { return r >= '@' && r <= '_' }

// isValidFormatEscapeChar is the set of characters permitted between the
// two backslashes of a multi-line format escape.
func isValidFormatEscapeChar(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isPrint reports whether r is a printable, non-control character.
// Space and above (excluding DEL) are printable for our purposes; this
// mirrors the host language's notion used to reject raw control bytes
// inside string literals.
func isPrint(r rune) bool {
	return r >= 0x20 && r != 0x7f
}
