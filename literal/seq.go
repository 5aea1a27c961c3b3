// Package literal provides types and operations for representing and manipulating
// literal byte sequences extracted from rex patterns.
//
// The primary use case is prefilter optimization: if every match of a pattern
// must start with one of a small set of literal strings, the haystack can be
// scanned for those strings with fast substring search before running the
// automaton at the candidate positions.
//
// Key concepts:
//   - A Literal is a concrete byte sequence a match may start with
//   - A Seq is a set of alternative literals, or the unknown (infinite) set
//   - Minimize and LongestCommonPrefix help choose a prefilter
package literal

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether the literal is an entire match (true)
// or only a prefix of potential matches (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello\d/ → Literal{[]byte("hello"), false} (prefix only)
type Literal struct {
	// Bytes contains the UTF-8 encoded literal.
	Bytes []byte

	// Complete indicates whether finding this literal is sufficient for a
	// match (no automaton verification needed).
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals that can start a match.
//
// A Seq is either finite, listing every literal a match may start with, or
// infinite, meaning no useful literal set is known (e.g. for /[^a]b/). An
// empty finite Seq describes a pattern that can never match, such as /[]/.
type Seq struct {
	literals []Literal
	infinite bool
}

// NewSeq creates a new finite sequence from the given literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("world"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// NewInfiniteSeq returns the sequence representing an unknown literal set.
func NewInfiniteSeq() *Seq {
	return &Seq{infinite: true}
}

// Len returns the number of literals in the sequence.
// An infinite sequence has length 0.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// IsFinite returns true if the sequence lists every possible match prefix.
func (s *Seq) IsFinite() bool {
	return s != nil && !s.infinite
}

// AllComplete returns true if the sequence is finite, non-empty and every
// literal is a complete match.
func (s *Seq) AllComplete() bool {
	if !s.IsFinite() || s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MaxLen returns the length of the longest literal in bytes.
func (s *Seq) MaxLen() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if l := s.literals[i].Len(); l > n {
			n = l
		}
	}
	return n
}

// MinLen returns the length of the shortest literal in bytes,
// or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < n {
			n = lit.Len()
		}
	}
	return n
}

// Clone returns a deep copy of the sequence.
// All literals and their byte slices are duplicated.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		bytesCopy := make([]byte, len(lit.Bytes))
		copy(bytesCopy, lit.Bytes)
		cloned[i] = Literal{
			Bytes:    bytesCopy,
			Complete: lit.Complete,
		}
	}

	return &Seq{literals: cloned, infinite: s.infinite}
}

// makeInexact marks every literal as a prefix only.
func (s *Seq) makeInexact() *Seq {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
	return s
}

// dedup merges literals with identical bytes. A merged literal is complete
// if any of its duplicates was, since finding it then guarantees a match.
func (s *Seq) dedup() {
	kept := s.literals[:0]
	index := make(map[string]int, len(s.literals))
	for _, lit := range s.literals {
		if i, ok := index[string(lit.Bytes)]; ok {
			kept[i].Complete = kept[i].Complete || lit.Complete
			continue
		}
		index[string(lit.Bytes)] = len(kept)
		kept = append(kept, lit)
	}
	s.literals = kept
}

// Minimize removes literals made redundant by a shorter literal.
//
// For prefix matching, a literal L is redundant if a kept literal S is a
// prefix of L: every occurrence of L is also an occurrence of S, so S alone
// yields the same candidate positions. In ["foo", "foobar"] only "foo" remains.
//
// Time complexity: O(n² * m) where n = number of literals, m = average literal length
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.HasPrefix(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// LongestCommonPrefix returns the longest common prefix of all literals in the sequence.
// If the sequence is empty or has no common prefix, returns an empty slice.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("help"), true),
//	)
//	fmt.Println(string(seq.LongestCommonPrefix())) // Output: hel
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		n := 0
		for n < len(prefix) && n < len(lit.Bytes) && prefix[n] == lit.Bytes[n] {
			n++
		}
		prefix = prefix[:n]
		if n == 0 {
			break
		}
	}

	out := make([]byte, len(prefix))
	copy(out, prefix)
	return out
}

// String returns a debugging representation such as ["foo" "bar"*] where
// a trailing * marks complete literals.
func (s *Seq) String() string {
	if !s.IsFinite() {
		return "[inf]"
	}
	parts := make([]string, len(s.literals))
	for i, lit := range s.literals {
		parts[i] = strconv.Quote(string(lit.Bytes))
		if lit.Complete {
			parts[i] += "*"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
