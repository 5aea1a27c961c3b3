// Package rex provides a small regular-expression engine built on a
// Thompson NFA.
//
// The dialect is deliberately restricted: literal runes, concatenation,
// alternation with '|', bracket sets such as [abc] and [^abc], the wildcard
// '.', and the classes \d \D \s \S \l \L \u \U. There are no quantifiers,
// groups, or anchors.
//
// A pattern matches at an offset if some prefix of the input starting there
// is accepted; the rest of the input is ignored. Search reports the leftmost
// such offset, counted in runes.
//
// Basic usage:
//
//	re, err := rex.Compile(`a|\d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, ok := re.SearchString("x73ax")
//	fmt.Println(pos, ok) // 1 true
//
// Advanced usage:
//
//	// Disable literal prefiltering
//	config := rex.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := rex.CompileWithConfig("foo|bar", config)
//
// Performance characteristics:
//   - Patterns starting with known literals skip ahead with memchr, memmem
//     or Aho-Corasick and verify only candidate positions
//   - Other patterns restart the automaton at every offset
//   - No backtracking: each prefix check is linear in the input
package rex

import (
	"strings"

	"github.com/coregx/rex/meta"
	"github.com/coregx/rex/syntax"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := rex.MustCompile(`hello`)
//	if re.MatchString("say hello") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile parses pattern and builds its automaton.
//
// Returns a *syntax.Error if the pattern is invalid.
//
// Example:
//
//	re, err := rex.Compile(`[^bc]\d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var digit = rex.MustCompile(`\d`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.MaxClassSize = 26 // Prefilter on \l and \u too
//	re, err := rex.CompileWithConfig(`\l\d`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes every metacharacter of the
// dialect in s; the result is a pattern matching s literally.
//
// Example:
//
//	escaped := rex.QuoteMeta("a|b.c")
//	// escaped = `a\|b\.c`
func QuoteMeta(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if syntax.IsMeta(rune(s[i])) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + n)
	for i := 0; i < len(s); i++ {
		if syntax.IsMeta(rune(s[i])) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Search returns the leftmost rune offset in b at which a match starts.
// Returns (-1, false) if the pattern matches nowhere, including at the
// end of input.
//
// Offsets count runes, not bytes; each invalid UTF-8 byte counts as one rune.
//
// Example:
//
//	re := rex.MustCompile("abc")
//	pos, ok := re.Search([]byte("xabcx"))
//	// pos == 1, ok == true
func (r *Regex) Search(b []byte) (int, bool) {
	return r.engine.Search(b)
}

// SearchString is like Search but takes a string.
func (r *Regex) SearchString(s string) (int, bool) {
	return r.engine.Search([]byte(s))
}

// Match reports whether the pattern matches anywhere in b.
//
// Example:
//
//	re := rex.MustCompile(`\d`)
//	if re.Match([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the pattern matches anywhere in s.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// MatchesFromStart reports whether some prefix of b is accepted, i.e.
// whether a match starts at offset 0.
func (r *Regex) MatchesFromStart(b []byte) bool {
	return r.engine.MatchesAt(b, 0)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the search strategy selected for the pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}
