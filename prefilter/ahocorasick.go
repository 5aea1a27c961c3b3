package prefilter

import (
	"bytes"
	"strconv"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rex/literal"
)

// ahoCorasickPrefilter searches for any of several substring literals in a
// single pass with an Aho-Corasick automaton.
//
// The automaton stops at the occurrence that ends first, which is not
// necessarily the one that starts first: for ["b", "abc"] on "abc" it reports
// "b" at 1. Find therefore rescans the few bytes before each hit for a
// pattern starting earlier.
//
// Example patterns:
//
//	/foo|bar|baz/     → complete, no verification
//	/(get|put)\s[^x]/ → candidates for "get\t", "put ", ...
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	patterns int
	maxLen   int
	bytes    int
	complete bool
}

func newAhoCorasickPrefilter(seq *literal.Seq) (Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	size := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		size += lit.Len()
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		auto:     auto,
		patterns: seq.Len(),
		maxLen:   seq.MaxLen(),
		bytes:    size,
		complete: seq.AllComplete(),
	}, nil
}

// Find implements Prefilter.Find.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return p.leftmostStart(haystack, start, m)
}

// leftmostStart returns the smallest offset in [start, m.Start] at which a
// pattern occurs. No occurrence ends before m.End, so one that starts before
// m.Start must start within maxLen bytes of m.End.
func (p *ahoCorasickPrefilter) leftmostStart(haystack []byte, start int, m *ahocorasick.Match) int {
	lo := max(start, m.End-p.maxLen)
	for at := lo; at < m.Start; at++ {
		if p.occursAt(haystack, at) {
			return at
		}
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) occursAt(haystack []byte, at int) bool {
	rest := haystack[at:]
	for id := 0; id < p.auto.PatternCount(); id++ {
		if bytes.HasPrefix(rest, p.auto.Pattern(id)) {
			return true
		}
	}
	return false
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes. The automaton's tables are not
// counted; only the pattern bytes are.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.bytes
}

func (p *ahoCorasickPrefilter) String() string {
	return "ahocorasick(" + strconv.Itoa(p.patterns) + " patterns)"
}
