// Package prefilter provides fast candidate filtering for rex search using
// extracted literal sequences.
//
// A prefilter quickly skips positions in the haystack where no match can
// start. Instead of restarting the automaton at every rune offset, the
// search jumps straight to the next occurrence of one of the pattern's
// prefix literals and verifies only there.
//
// The builder selects a prefilter based on the extracted literals:
//   - Single byte → memchr (bytes.IndexByte)
//   - Single substring → memmem (bytes.Index)
//   - Several single runes → rune set (bytes.IndexAny)
//   - Several substrings → Aho-Corasick automaton
//
// Example usage:
//
//	root, _ := syntax.Parse("hello|world")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(root)
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//
//	haystack := []byte("foo hello bar world baz")
//	pos := pf.Find(haystack, 0)
//	// pos == 4 (position of "hello")
package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/rex/literal"
)

// Prefilter is used to quickly find candidate match positions before running
// the automaton.
//
// Candidates are byte offsets at which one of the prefix literals occurs.
// Every candidate lies on a rune boundary of the haystack, and no match can
// start between two consecutive candidates.
type Prefilter interface {
	// Find returns the byte index of the first candidate at or after start,
	// or -1 if no candidate exists.
	//
	// A candidate does NOT guarantee a match; the caller must verify it
	// with the automaton unless IsComplete() is true.
	//
	// Example:
	//
	//	pos := pf.Find(haystack, 0)
	//	for pos != -1 {
	//	    if matchesAt(haystack, pos) {
	//	        return pos
	//	    }
	//	    pos = pf.Find(haystack, pos+1)
	//	}
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate is always a match, so
	// verification can be skipped. This holds when every literal is a whole
	// match of the pattern, e.g. for /foo|bar/.
	IsComplete() bool

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter. Simple prefilters report the size of their needle.
	HeapBytes() int

	// String names the prefilter kind for diagnostics.
	String() string
}

// Builder constructs the most suitable prefilter from extracted literals.
//
// Selection strategy (in order of preference):
//  1. No finite, non-empty literal set → nil (no prefilter)
//  2. Single byte literal → memchr
//  3. Single substring literal → memmem
//  4. Only single-rune literals → rune set
//  5. Otherwise → Aho-Corasick
//
// Example:
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	}
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a new prefilter builder from a prefix literal sequence.
// A nil or infinite sequence yields no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the prefilter for the builder's literals.
//
// Returns nil if no prefilter can be built. That is the case when the
// literal set is unknown or empty, contains the empty literal (every offset
// would be a candidate), or contains U+FFFD, which invalid input bytes also
// decode to and which a byte search would therefore miss.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if !seq.IsFinite() || seq.IsEmpty() {
		return nil
	}

	seq = seq.Clone()
	seq.Minimize()
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		if lit.Len() == 0 || containsRuneError(lit.Bytes) {
			return nil
		}
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	if seq.MaxLen() <= utf8.UTFMax && allSingleRune(seq) {
		return newRuneSetPrefilter(seq)
	}

	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}

func containsRuneError(b []byte) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError {
			return true
		}
		b = b[size:]
	}
	return false
}

func allSingleRune(seq *literal.Seq) bool {
	for i := 0; i < seq.Len(); i++ {
		if utf8.RuneCount(seq.Get(i).Bytes) != 1 {
			return false
		}
	}
	return true
}
