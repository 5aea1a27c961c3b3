package prefilter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/coregx/rex/literal"
)

// runeSetPrefilter searches for any rune of a small set, as produced by
// sets like [abc] or classes like \d. ASCII-only sets are scanned byte-wise
// by bytes.IndexAny without decoding.
type runeSetPrefilter struct {
	chars    string
	complete bool
}

func newRuneSetPrefilter(seq *literal.Seq) Prefilter {
	var sb strings.Builder
	for i := 0; i < seq.Len(); i++ {
		sb.Write(seq.Get(i).Bytes)
	}
	return &runeSetPrefilter{
		chars:    sb.String(),
		complete: seq.AllComplete(),
	}
}

// Find implements Prefilter.Find using bytes.IndexAny.
func (p *runeSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexAny(haystack[start:], p.chars)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *runeSetPrefilter) IsComplete() bool {
	return p.complete
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *runeSetPrefilter) HeapBytes() int {
	return len(p.chars)
}

func (p *runeSetPrefilter) String() string {
	return "runeset(" + strconv.Quote(p.chars) + ")"
}
