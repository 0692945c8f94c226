package lexer

// ReservedTag enumerates the fixed, finite set of reserved words and
// punctuation the token model recognizes.
type ReservedTag int

const (
	TagNone ReservedTag = iota

	// Punctuation
	TagLParen
	TagRParen
	TagLBrack
	TagRBrack
	TagLBrace
	TagRBrace
	TagComma
	TagSemicolon
	TagUnderscore
	TagDotDotDot

	// Structural symbols (symbolic-class characters, but reserved)
	TagColon
	TagColonGt
	TagArrow
	TagDArrow
	TagBar
	TagHash
	TagStar
	TagEqual

	// Keywords
	TagVal
	TagFun
	TagFn
	TagLet
	TagIn
	TagEnd
	TagIf
	TagThen
	TagElse
	TagCase
	TagOf
	TagRec
	TagAnd
	TagDatatype
	TagType
	TagStructure
	TagSignature
	TagFunctor
	TagSig
	TagStruct
	TagOpen
	TagLocal
	TagInfix
	TagInfixr
	TagNonfix
	TagOp
	TagAs
	TagWith
	TagWithtype
	TagWhile
	TagDo
	TagRaise
	TagHandle
	TagException
	TagAbstype
	TagOrelse
	TagAndalso
)

// reservedWords maps a lexeme's exact text to its reserved tag.
// checkReserved(text) consults this table; everything else lexes as an
// ordinary (symbolic or alphanumeric) identifier.
var reservedWords = map[string]ReservedTag{
	"(":   TagLParen,
	")":   TagRParen,
	"[":   TagLBrack,
	"]":   TagRBrack,
	"{":   TagLBrace,
	"}":   TagRBrace,
	",":   TagComma,
	";":   TagSemicolon,
	"_":   TagUnderscore,
	"...": TagDotDotDot,

	":":  TagColon,
	":>": TagColonGt,
	"->": TagArrow,
	"=>": TagDArrow,
	"|":  TagBar,
	"#":  TagHash,
	"*":  TagStar,
	"=":  TagEqual,

	"val":       TagVal,
	"fun":       TagFun,
	"fn":        TagFn,
	"let":       TagLet,
	"in":        TagIn,
	"end":       TagEnd,
	"if":        TagIf,
	"then":      TagThen,
	"else":      TagElse,
	"case":      TagCase,
	"of":        TagOf,
	"rec":       TagRec,
	"and":       TagAnd,
	"datatype":  TagDatatype,
	"type":      TagType,
	"structure": TagStructure,
	"signature": TagSignature,
	"functor":   TagFunctor,
	"sig":       TagSig,
	"struct":    TagStruct,
	"open":      TagOpen,
	"local":     TagLocal,
	"infix":     TagInfix,
	"infixr":    TagInfixr,
	"nonfix":    TagNonfix,
	"op":        TagOp,
	"as":        TagAs,
	"with":      TagWith,
	"withtype":  TagWithtype,
	"while":     TagWhile,
	"do":        TagDo,
	"raise":     TagRaise,
	"handle":    TagHandle,
	"exception": TagException,
	"abstype":   TagAbstype,
	"orelse":    TagOrelse,
	"andalso":   TagAndalso,
}

// checkReserved looks up text in the reserved-word table. It returns
// (tag, true) if text names a reserved word, or (TagNone, false)
// otherwise.
func checkReserved(text string) (ReservedTag, bool) {
	tag, ok := reservedWords[text]
	return tag, ok
}
