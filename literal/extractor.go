package literal

import (
	"unicode/utf8"

	"github.com/coregx/rex/syntax"
)

// maxDepth bounds how far extraction descends into the tree. Deeper
// sub-trees are treated as having unknown prefixes.
const maxDepth = 100

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like a|b|c|d|...
//   - MaxLiteralLen: stops growing prefixes through long concatenations
//   - MaxClassSize: prevents expanding large sets like \l
//
// Example:
//
//	config := literal.ExtractorConfig{
//	    MaxLiterals:   64,
//	    MaxLiteralLen: 64,
//	    MaxClassSize:  10,
//	}
//	extractor := literal.New(config)
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in a sequence. A union that
	// grows past it makes the sequence infinite. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each extracted literal.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of sets and classes to expand.
	// [abc] is expanded to "a", "b", "c"; \d (10 members) is expanded only
	// if MaxClassSize >= 10. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
//
// Defaults are tuned for typical patterns:
//   - MaxLiterals: 64 (handles most alternations without bloat)
//   - MaxLiteralLen: 64 (good cache locality for prefilters)
//   - MaxClassSize: 10 (small sets and \d only, avoids \l explosion)
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts prefix literal sequences from syntax trees.
//
// The extracted sequence is sound: every match of the pattern starts with
// one of its literals. A literal marked Complete is additionally a match on
// its own, so finding it needs no verification.
//
// Example:
//
//	root, _ := syntax.Parse("hello|world")
//	extractor := literal.New(literal.DefaultConfig())
//	prefixes := extractor.ExtractPrefixes(root)
//	// prefixes = ["hello"* "world"*]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new literal extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals every match of root must start with.
//
// Returns an infinite sequence when no bounded set is known, e.g. for
// patterns starting with [^...], \D or '.'. Rules by node:
//   - Char with a literal: the rune itself, complete
//   - Char with a small set or class: one complete literal per member
//   - Char with a negated set or class: infinite
//   - Concat: cross product of both sides; if it would exceed the limits
//     the left side's literals are kept as prefixes only
//   - Alternate: union of both sides; infinite if either side is
func (e *Extractor) ExtractPrefixes(root *syntax.Node) *Seq {
	if root == nil {
		return NewInfiniteSeq()
	}
	seq := e.prefixes(root, 0)
	if seq.IsFinite() {
		seq.dedup()
	}
	return seq
}

func (e *Extractor) prefixes(n *syntax.Node, depth int) *Seq {
	if depth > maxDepth {
		return NewInfiniteSeq()
	}

	switch n.Op {
	case syntax.OpChar:
		return e.charPrefixes(n.Cond)
	case syntax.OpConcat:
		return e.concatPrefixes(n, depth)
	case syntax.OpAlternate:
		return e.alternatePrefixes(n, depth)
	default:
		return NewInfiniteSeq()
	}
}

// charPrefixes expands a single condition into its member runes.
func (e *Extractor) charPrefixes(cond syntax.Condition) *Seq {
	var members []rune
	switch cond.Kind {
	case syntax.CondLiteral:
		members = []rune{cond.Rune}
	case syntax.CondInclude:
		members = cond.Set
	case syntax.CondIncludeClass:
		members = cond.Class.Members()
	case syntax.CondExcludeClass:
		members = cond.Class.Complement().Members()
	}
	if members == nil && cond.Kind != syntax.CondInclude {
		return NewInfiniteSeq()
	}
	if len(members) > 1 && len(members) > e.config.MaxClassSize {
		return NewInfiniteSeq()
	}

	lits := make([]Literal, 0, len(members))
	for _, r := range members {
		// Invalid input bytes decode to RuneError, so a literal spelling
		// U+FFFD would miss them.
		if r == utf8.RuneError || !utf8.ValidRune(r) {
			return NewInfiniteSeq()
		}
		lits = append(lits, NewLiteral(utf8.AppendRune(nil, r), true))
	}
	return NewSeq(lits...)
}

func (e *Extractor) concatPrefixes(n *syntax.Node, depth int) *Seq {
	left := e.prefixes(n.Left, depth+1)
	if !left.IsFinite() {
		return left
	}

	// Only complete literals can be extended; stop once they are long enough.
	extendable := false
	for _, lit := range left.literals {
		if lit.Complete {
			if lit.Len() >= e.config.MaxLiteralLen {
				return left.makeInexact()
			}
			extendable = true
		}
	}
	if !extendable {
		return left
	}

	right := e.prefixes(n.Right, depth+1)
	if !right.IsFinite() {
		return left.makeInexact()
	}

	size := 0
	for _, lit := range left.literals {
		if lit.Complete {
			size += right.Len()
		} else {
			size++
		}
	}
	if size > e.config.MaxLiterals {
		return left.makeInexact()
	}

	out := make([]Literal, 0, size)
	for _, l := range left.literals {
		if !l.Complete {
			out = append(out, l)
			continue
		}
		for _, r := range right.literals {
			b := make([]byte, 0, l.Len()+r.Len())
			b = append(append(b, l.Bytes...), r.Bytes...)
			if len(b) > e.config.MaxLiteralLen {
				return left.makeInexact()
			}
			out = append(out, NewLiteral(b, r.Complete))
		}
	}
	return NewSeq(out...)
}

func (e *Extractor) alternatePrefixes(n *syntax.Node, depth int) *Seq {
	left := e.prefixes(n.Left, depth+1)
	if !left.IsFinite() {
		return left
	}
	right := e.prefixes(n.Right, depth+1)
	if !right.IsFinite() {
		return right
	}
	if left.Len()+right.Len() > e.config.MaxLiterals {
		return NewInfiniteSeq()
	}
	return NewSeq(append(left.literals, right.literals...)...)
}
