package lexer

// Lexer is the state machine driving the scan: a single-pass, zero-copy
// scanner over a Source. States are implemented as methods rather than
// as deeply mutually-recursive calls — each method consumes zero or
// more characters and either enqueues token(s) and returns, or fails.
// The accumulator (pending) is the only mutable state visible across
// state transitions, together with the cursor pos.
type Lexer struct {
	src     *Source
	pos     int
	pending []Token
	failed  *Error
}

// New returns a Lexer positioned at the start of src.
func New(src *Source) *Lexer { return &Lexer{src: src} }

// Lex runs the lexer to completion. On success it returns every token
// produced, in input order. On failure it returns the partial prefix of
// tokens produced before the error, alongside the error — the idiomatic
// Go rendering of a Success(tokens) | Failure{partial, error}
// envelope.
func Lex(src *Source) ([]Token, error) {
	lx := New(src)
	var toks []Token
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token. ok is false with a nil error at end of
// input; it is false with a non-nil error once every token enqueued
// before the failing dispatch has been drained, in which case the
// Lexer must not be called again.
func (lx *Lexer) Next() (Token, bool, *Error) {
	for len(lx.pending) == 0 && lx.failed == nil {
		ok, err := lx.scanOne()
		if err != nil {
			// A failing dispatch may have already enqueued a token
			// (e.g. a Qualifier before the segment that fails); stash
			// the error and drain pending before surfacing it.
			lx.failed = err
			break
		}
		if !ok {
			return Token{}, false, nil
		}
	}
	if len(lx.pending) > 0 {
		t := lx.pending[0]
		lx.pending = lx.pending[1:]
		return t, true, nil
	}
	return Token{}, false, lx.failed
}

func (lx *Lexer) enqueue(t Token) { lx.pending = append(lx.pending, t) }

func (lx *Lexer) at(i int) (rune, bool) { return lx.src.TryAt(i) }

func (lx *Lexer) makeTok(class Kind, tag ReservedTag, start, end int) Token {
	line, col := lx.src.LineCol(start)
	return Token{Class: class, Tag: tag, Slice: lx.src.SliceRange(start, end), Line: line, Col: col}
}

// emitIdentOrReserved applies the "reserved word never lexes as a plain
// identifier" rule to the segment [start, end).
// isQualified marks whether this segment was reached through a
// qualifier prefix (a.b.c), which turns a reserved word into an error
// instead of a silently-accepted reserved token.
func (lx *Lexer) emitIdentOrReserved(start, end int, isQualified bool) *Error {
	text := lx.src.SliceRange(start, end).Text()
	if tag, isReserved := checkReserved(text); isReserved {
		if isQualified {
			return errReservedPrefacedByQualifier(start, text)
		}
		lx.enqueue(lx.makeTok(KindReserved, tag, start, end))
		return nil
	}
	lx.enqueue(lx.makeTok(KindIdentifier, TagNone, start, end))
	return nil
}

// scanOne performs one round of dispatch from the top level (S0),
// skipping characters outside the grammar as whitespace, and returns
// once it has enqueued at least one token (ok=true), reached end of
// input (ok=false, err=nil), or failed (err != nil).
func (lx *Lexer) scanOne() (bool, *Error) {
	for {
		r, ok := lx.at(lx.pos)
		if !ok {
			return false, nil
		}
		switch {
		case r == '(':
			return lx.lexOpenParenOrComment()
		case r == ')':
			return lx.emit1(TagRParen)
		case r == '[':
			return lx.emit1(TagLBrack)
		case r == ']':
			return lx.emit1(TagRBrack)
		case r == '{':
			return lx.emit1(TagLBrace)
		case r == '}':
			return lx.emit1(TagRBrace)
		case r == ',':
			return lx.emit1(TagComma)
		case r == ';':
			return lx.emit1(TagSemicolon)
		case r == '_':
			return lx.emit1(TagUnderscore)
		case r == '"':
			return lx.lexString()
		case r == '~':
			return lx.lexAfterTilde()
		case r == '\'':
			return lx.lexAlphanumId(lx.pos, true, false)
		case r == '0':
			return lx.lexAfterZero()
		case r == '.':
			return lx.lexAfterDot()
		case isDecDigit(r):
			lx.pos++
			return lx.lexDecInt(lx.pos - 1)
		case isSymbolic(r):
			return lx.lexSymbolicId(lx.pos, false)
		case isLetter(r):
			return lx.lexAlphanumId(lx.pos, false, false)
		default:
			lx.pos++ // not in the grammar: treat as whitespace
			continue
		}
	}
}

func (lx *Lexer) emit1(tag ReservedTag) (bool, *Error) {
	start := lx.pos
	lx.pos++
	lx.enqueue(lx.makeTok(KindReserved, tag, start, lx.pos))
	return true, nil
}

// S-after-dot(s): cursor s sits right after the first '.'.
func (lx *Lexer) lexAfterDot() (bool, *Error) {
	dotPos := lx.pos
	s := dotPos + 1
	r1, ok1 := lx.at(s)
	r2, ok2 := lx.at(s + 1)
	if ok1 && r1 == '.' && ok2 && r2 == '.' {
		lx.pos = s + 2
		lx.enqueue(lx.makeTok(KindReserved, TagDotDotDot, dotPos, lx.pos))
		return true, nil
	}
	return false, errUnexpectedDot(dotPos)
}

// S-symbolicId(s, idStart, isQualified): absorbs symbolic characters
// starting at s, then resolves the segment as identifier/reserved, or
// (if isQualified) errors out a reserved segment.
func (lx *Lexer) lexSymbolicId(idStart int, isQualified bool) (bool, *Error) {
	s := idStart
	for {
		r, ok := lx.at(s)
		if !ok || !isSymbolic(r) {
			break
		}
		s++
	}
	lx.pos = s
	if err := lx.emitIdentOrReserved(idStart, s, isQualified); err != nil {
		return false, err
	}
	return true, nil
}

// S-alphanumId(s, idStart, startsPrime, isQualified): absorbs
// alphanumeric/prime/underscore characters, then either continues into
// a long identifier (on '.') or resolves the segment.
func (lx *Lexer) lexAlphanumId(idStart int, startsPrime, isQualified bool) (bool, *Error) {
	s := idStart + 1 // the character at idStart (letter or prime) is already accounted for
	for {
		r, ok := lx.at(s)
		if !ok || !isAlphaNumPrimeOrUnderscore(r) {
			break
		}
		s++
	}
	if r, ok := lx.at(s); ok && r == '.' {
		if startsPrime {
			return false, errPrimeStartsQualifier(idStart)
		}
		text := lx.src.SliceRange(idStart, s).Text()
		if _, isReserved := checkReserved(text); isReserved {
			return false, errReservedAsQualifier(idStart, text)
		}
		lx.enqueue(lx.makeTok(KindQualifier, TagNone, idStart, s))
		lx.pos = s + 1
		return lx.continueLongIdent()
	}
	lx.pos = s
	if err := lx.emitIdentOrReserved(idStart, s, isQualified); err != nil {
		return false, err
	}
	return true, nil
}

// S-continueLongId(s): expects the next segment of a long identifier.
func (lx *Lexer) continueLongIdent() (bool, *Error) {
	s := lx.pos
	r, ok := lx.at(s)
	if !ok {
		return false, errUnexpectedEndOfQualifiedIdent(s)
	}
	switch {
	case isSymbolic(r):
		return lx.lexSymbolicId(s, true)
	case isLetter(r) || r == '\'':
		return lx.lexAlphanumId(s, r == '\'', true)
	default:
		return false, errUnexpectedEndOfQualifiedIdent(s)
	}
}

// S-after-tilde(s): cursor s sits right after the '~'.
func (lx *Lexer) lexAfterTilde() (bool, *Error) {
	tildePos := lx.pos
	s := tildePos + 1
	r, ok := lx.at(s)
	switch {
	case ok && r == '0':
		lx.pos = s + 1
		return lx.lexAfterTildeZero(tildePos)
	case ok && isDecDigit(r):
		lx.pos = s + 1
		return lx.lexDecInt(tildePos)
	case ok && isSymbolic(r):
		return lx.lexSymbolicId(tildePos, false)
	default:
		lx.pos = s
		lx.enqueue(lx.makeTok(KindIdentifier, TagNone, tildePos, s))
		return true, nil
	}
}

// S-after-tilde-zero(s): cursor s sits right after "~0".
func (lx *Lexer) lexAfterTildeZero(constStart int) (bool, *Error) {
	s := lx.pos
	r, ok := lx.at(s)
	r1, ok1 := lx.at(s + 1)
	switch {
	case ok && r == 'x' && ok1 && isHexDigit(r1):
		lx.pos = s + 2
		return lx.lexHexInt(constStart)
	case ok && r == '.':
		lx.pos = s + 1
		return lx.lexRealAfterDot(constStart)
	case ok && isDecDigit(r):
		lx.pos = s + 1
		return lx.lexDecInt(constStart)
	default:
		lx.enqueue(lx.makeTok(KindIntegerConstant, TagNone, constStart, s))
		return true, nil
	}
}

// S-after-zero(s): cursor s sits right after a leading '0' (no tilde).
func (lx *Lexer) lexAfterZero() (bool, *Error) {
	constStart := lx.pos
	s := constStart + 1
	r, ok := lx.at(s)
	r1, ok1 := lx.at(s + 1)
	switch {
	case ok && r == 'x' && ok1 && isHexDigit(r1):
		lx.pos = s + 2
		return lx.lexHexInt(constStart)
	case ok && r == 'w':
		lx.pos = s + 1
		return lx.lexAfterZeroW(constStart)
	case ok && r == '.':
		lx.pos = s + 1
		return lx.lexRealAfterDot(constStart)
	case ok && isDecDigit(r):
		lx.pos = s + 1
		return lx.lexDecInt(constStart)
	default:
		lx.pos = s
		lx.enqueue(lx.makeTok(KindIntegerConstant, TagNone, constStart, s))
		return true, nil
	}
}

// S-after-zero-w(s): cursor s sits right after "0w".
func (lx *Lexer) lexAfterZeroW(constStart int) (bool, *Error) {
	s := lx.pos
	r, ok := lx.at(s)
	r1, ok1 := lx.at(s + 1)
	switch {
	case ok && r == 'x' && ok1 && isHexDigit(r1):
		lx.pos = s + 2
		return lx.lexHexWord(constStart)
	case ok && isDecDigit(r):
		lx.pos = s + 1
		return lx.lexDecWord(constStart)
	default:
		// The '0' alone is an IntegerConstant; the 'w' (and a possible
		// stray 'x') falls back into an ordinary alphanumeric identifier.
		zeroEnd := constStart + 1
		lx.enqueue(lx.makeTok(KindIntegerConstant, TagNone, constStart, zeroEnd))
		lx.pos = zeroEnd
		return lx.lexAlphanumId(zeroEnd, false, false)
	}
}

func (lx *Lexer) lexDecInt(constStart int) (bool, *Error) {
	s := lx.pos
	for {
		r, ok := lx.at(s)
		if !ok || !isDecDigit(r) {
			break
		}
		s++
	}
	if r, ok := lx.at(s); ok && r == '.' {
		lx.pos = s + 1
		return lx.lexRealAfterDot(constStart)
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindIntegerConstant, TagNone, constStart, s))
	return true, nil
}

func (lx *Lexer) lexHexInt(constStart int) (bool, *Error) {
	s := lx.pos
	for {
		r, ok := lx.at(s)
		if !ok || !isHexDigit(r) {
			break
		}
		s++
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindIntegerConstant, TagNone, constStart, s))
	return true, nil
}

func (lx *Lexer) lexDecWord(constStart int) (bool, *Error) {
	s := lx.pos
	for {
		r, ok := lx.at(s)
		if !ok || !isDecDigit(r) {
			break
		}
		s++
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindWordConstant, TagNone, constStart, s))
	return true, nil
}

func (lx *Lexer) lexHexWord(constStart int) (bool, *Error) {
	s := lx.pos
	for {
		r, ok := lx.at(s)
		if !ok || !isHexDigit(r) {
			break
		}
		s++
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindWordConstant, TagNone, constStart, s))
	return true, nil
}

// S-realAfterDot(s, constStart): must see at least one decimal digit.
func (lx *Lexer) lexRealAfterDot(constStart int) (bool, *Error) {
	s := lx.pos
	r, ok := lx.at(s)
	if !ok || !isDecDigit(r) {
		return false, errUnexpectedEndOfReal(s)
	}
	lx.pos = s + 1
	return lx.lexReal(constStart)
}

// S-real(s, constStart)
func (lx *Lexer) lexReal(constStart int) (bool, *Error) {
	s := lx.pos
	for {
		r, ok := lx.at(s)
		if !ok || !isDecDigit(r) {
			break
		}
		s++
	}
	if r, ok := lx.at(s); ok && (r == 'E' || r == 'e') {
		return false, errRealExponentUnsupported(s)
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindRealConstant, TagNone, constStart, s))
	return true, nil
}

// S-open-paren(s): cursor s sits right after '('.
func (lx *Lexer) lexOpenParenOrComment() (bool, *Error) {
	parenPos := lx.pos
	s := parenPos + 1
	if r, ok := lx.at(s); ok && r == '*' {
		lx.pos = s + 1
		return lx.lexComment(parenPos, 1)
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindReserved, TagLParen, parenPos, s))
	return true, nil
}

// S-comment(s, commentStart, nesting)
func (lx *Lexer) lexComment(commentStart, nesting int) (bool, *Error) {
	s := lx.pos
	for nesting > 0 {
		r, ok := lx.at(s)
		if !ok {
			return false, errUnclosedComment(commentStart)
		}
		r1, ok1 := lx.at(s + 1)
		switch {
		case r == '(' && ok1 && r1 == '*':
			nesting++
			s += 2
		case r == '*' && ok1 && r1 == ')':
			nesting--
			s += 2
		default:
			s++
		}
	}
	lx.pos = s
	lx.enqueue(lx.makeTok(KindComment, TagNone, commentStart, s))
	return true, nil
}

// S-string(s, stringStart): cursor s sits right after the opening '"'.
func (lx *Lexer) lexString() (bool, *Error) {
	stringStart := lx.pos
	s := stringStart + 1
	for {
		r, ok := lx.at(s)
		if !ok {
			return false, errUnclosedString(stringStart)
		}
		switch {
		case r == '\\':
			next, err := lx.lexStringEscape(stringStart, s+1)
			if err != nil {
				return false, err
			}
			s = next
		case r == '"':
			s++
			lx.pos = s
			lx.enqueue(lx.makeTok(KindStringConstant, TagNone, stringStart, s))
			return true, nil
		default:
			if !isPrint(r) {
				return false, errNonPrintableChar(s)
			}
			s++
		}
	}
}

// S-string-esc(s, stringStart): cursor s sits right after the '\'.
// Returns the cursor position to resume plain string scanning from.
func (lx *Lexer) lexStringEscape(stringStart, s int) (int, *Error) {
	r, ok := lx.at(s)
	if !ok {
		return 0, errUnclosedString(stringStart)
	}
	switch {
	case isValidSingleEscapeChar(r):
		return s + 1, nil
	case isValidFormatEscapeChar(r):
		return lx.lexStringFormatEscape(s + 1)
	case r == '^':
		return lx.lexStringCtrlEscape(stringStart, s+1)
	case r == 'u':
		return lx.lexStringU4Escape(s + 1)
	case isDecDigit(r):
		return lx.lexStringD3Escape(s)
	default:
		// Not a recognized escape introducer: the cursor does not
		// advance past it. The plain-body loop in lexString will
		// re-examine this character next.
		return s, nil
	}
}

// S-string-ctrl(s, stringStart)
func (lx *Lexer) lexStringCtrlEscape(stringStart, s int) (int, *Error) {
	r, ok := lx.at(s)
	if !ok {
		return 0, errIncompleteControlEscape(s)
	}
	if !isValidControlEscapeChar(r) {
		return 0, errInvalidControlEscape(s)
	}
	return lx.lexStringEscape(stringStart, s+1)
}

// S-string-u4(s, stringStart): next four characters must be hex digits.
func (lx *Lexer) lexStringU4Escape(s int) (int, *Error) {
	for i := 0; i < 4; i++ {
		r, ok := lx.at(s + i)
		if !ok || !isHexDigit(r) {
			end := s + i
			if !ok {
				end = lx.src.Len()
			}
			return 0, errStringHexEscape(s-1, lx.src.SliceRange(s, end).Text())
		}
	}
	return s + 4, nil
}

// S-string-d3(s, stringStart): three characters starting at s (not s+1)
// must be decimal digits.
func (lx *Lexer) lexStringD3Escape(s int) (int, *Error) {
	for i := 0; i < 3; i++ {
		r, ok := lx.at(s + i)
		if !ok || !isDecDigit(r) {
			end := s + i
			if !ok {
				end = lx.src.Len()
			}
			return 0, errStringDecEscape(s-1, lx.src.SliceRange(s, end).Text())
		}
	}
	return s + 3, nil
}

// S-string-fmt(s, stringStart): format chars until the closing '\'.
func (lx *Lexer) lexStringFormatEscape(s int) (int, *Error) {
	for {
		r, ok := lx.at(s)
		if !ok {
			return 0, errIncompleteFormatEscape(s)
		}
		if r == '\\' {
			return s + 1, nil
		}
		if !isValidFormatEscapeChar(r) {
			return 0, errInvalidFormatEscape(s)
		}
		s++
	}
}
