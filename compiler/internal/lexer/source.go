package lexer

// Source is an immutable, indexable view over a program's characters.
// It lends cheap sub-slices: a Slice shares the backing rune array with
// its parent Source rather than copying.
type Source struct {
	runes      []rune
	name       string
	lineStarts []int // character index each line begins at; lineStarts[0] == 0
}

// NewSource builds a Source over the given text. name is an optional
// label (typically a file path) used only for diagnostics.
func NewSource(text string, name string) *Source {
	runes := []rune(text)
	lineStarts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{runes: runes, name: name, lineStarts: lineStarts}
}

// LineCol returns the 1-based line and column of character index i.
func (s *Source) LineCol(i int) (line, col int) {
	// binary search for the last line start <= i
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= i {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, i - s.lineStarts[lo] + 1
}

// Len returns the number of characters in the source.
func (s *Source) Len() int { return len(s.runes) }

// At returns the character at i. The caller must ensure 0 <= i < Len().
func (s *Source) At(i int) rune { return s.runes[i] }

// TryAt is the bounds-checked form of At, for call sites at the edge of
// the source where i may be out of range.
func (s *Source) TryAt(i int) (rune, bool) {
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

// Subseq returns the half-open view [i, i+n). It does not copy.
func (s *Source) Subseq(i, n int) Slice {
	return s.SliceRange(i, i+n)
}

// SliceRange returns the half-open view [start, end). It does not copy.
func (s *Source) SliceRange(start, end int) Slice {
	return Slice{src: s, Start: start, End: end}
}

// String returns the full source text.
func (s *Source) String() string { return string(s.runes) }

// Name returns the label the source was constructed with.
func (s *Source) Name() string { return s.name }

// Slice is a lightweight, value-like view into a Source: a (base, offset,
// length) triple sharing the parent's backing array. Two slices of the
// same Source never copy character data between them.
type Slice struct {
	src   *Source
	Start int // inclusive, in characters
	End   int // exclusive, in characters
}

// Text materializes the slice's characters as a string.
func (sl Slice) Text() string {
	if sl.src == nil {
		return ""
	}
	return string(sl.src.runes[sl.Start:sl.End])
}

// Len returns the number of characters the slice spans.
func (sl Slice) Len() int { return sl.End - sl.Start }

// Empty reports whether the slice spans zero characters.
func (sl Slice) Empty() bool { return sl.Start >= sl.End }
