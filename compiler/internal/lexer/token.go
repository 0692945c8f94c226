package lexer

// Kind enumerates the token classes a lex can produce.
type Kind int

const (
	KindEOF Kind = iota
	KindReserved
	KindIdentifier
	KindQualifier
	KindIntegerConstant
	KindWordConstant
	KindRealConstant
	KindStringConstant
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindReserved:
		return "Reserved"
	case KindIdentifier:
		return "Identifier"
	case KindQualifier:
		return "Qualifier"
	case KindIntegerConstant:
		return "IntegerConstant"
	case KindWordConstant:
		return "WordConstant"
	case KindRealConstant:
		return "RealConstant"
	case KindStringConstant:
		return "StringConstant"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Token pairs a source slice with its class and (for reserved tokens)
// which reserved word it is.
type Token struct {
	Class Kind
	Tag   ReservedTag // only meaningful when Class == KindReserved
	Slice Slice
	Line  int
	Col   int
}

// Text returns the token's lexeme.
func (t Token) Text() string { return t.Slice.Text() }

// GetSource returns the token's source slice.
func (t Token) GetSource() Slice { return t.Slice }

// GetClass returns the token's class.
func (t Token) GetClass() Kind { return t.Class }

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool { return t.Class == KindComment }

// IsConstant reports whether the token is any of the four constant
// kinds (integer, word, real, string).
func (t Token) IsConstant() bool {
	switch t.Class {
	case KindIntegerConstant, KindWordConstant, KindRealConstant, KindStringConstant:
		return true
	default:
		return false
	}
}

// IsPatternConstant reports whether the token may appear as a constant
// in a pattern. Real constants are excluded: matching on floating point
// equality is unsound, so the host language family forbids it there
// even though reals are ordinary expression constants.
func (t Token) IsPatternConstant() bool {
	switch t.Class {
	case KindIntegerConstant, KindWordConstant, KindStringConstant:
		return true
	default:
		return false
	}
}

// IsMaybeLongIdentifier reports whether the token could be one segment
// of a (possibly qualified) long identifier.
func (t Token) IsMaybeLongIdentifier() bool {
	return t.Class == KindIdentifier || t.Class == KindQualifier
}

// IsTyVar reports whether the token is an identifier written with a
// leading prime, e.g. 'a.
func (t Token) IsTyVar() bool {
	if t.Class != KindIdentifier {
		return false
	}
	text := t.Text()
	return len(text) > 0 && text[0] == '\''
}

// IsDecStartToken reports whether the token is a reserved word that can
// begin a declaration.
func (t Token) IsDecStartToken() bool {
	if t.Class != KindReserved {
		return false
	}
	switch t.Tag {
	case TagVal, TagFun, TagType, TagDatatype, TagStructure, TagSignature,
		TagFunctor, TagException, TagOpen, TagLocal, TagInfix, TagInfixr,
		TagNonfix, TagAbstype:
		return true
	default:
		return false
	}
}
