package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "SML-L003"
	Title string `json:"title"` // short human title, e.g. "unclosed string"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format: one section per subsystem.
type Registry struct {
	Lexer  map[string]CodeEntry `json:"lexer"`
	Parser map[string]CodeEntry `json:"parser"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key). Domain is "lexer" or
// "parser".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	switch domain {
	case "lexer":
		if reg.Lexer == nil {
			return CodeEntry{}, false
		}
		ce, ok := reg.Lexer[key]
		return ce, ok
	case "parser":
		if reg.Parser == nil {
			return CodeEntry{}, false
		}
		ce, ok := reg.Parser[key]
		return ce, ok
	default:
		return CodeEntry{}, false
	}
}

// MustLookup returns an entry if found; otherwise it synthesizes a
// placeholder from the given defaults, so codes stay stable even if the
// catalog is missing a key.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// LookupLexer is a convenience for the "lexer" domain.
func LookupLexer(key string) (CodeEntry, bool) { return Lookup("lexer", key) }

// LookupParser is a convenience for the "parser" domain.
func LookupParser(key string) (CodeEntry, bool) { return Lookup("parser", key) }
