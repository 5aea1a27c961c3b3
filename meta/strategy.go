package meta

import (
	"github.com/coregx/rex/prefilter"
)

// Strategy represents the execution strategy for a search.
//
// Every strategy reports the same offsets; they differ only in how many
// positions the automaton has to examine.
type Strategy int

const (
	// UseNFA runs the PikeVM at every rune offset.
	// Selected when no prefilter is available, e.g. for /[^a]b/ or /.x/,
	// or when EnablePrefilter is false.
	UseNFA Strategy = iota

	// UsePrefilter jumps between prefilter candidates and verifies each one
	// with the PikeVM.
	// Selected when every match starts with a known literal but finding the
	// literal does not prove a match, e.g. for /ab[^c]/.
	UsePrefilter

	// UseLiteral trusts the prefilter completely: the first candidate is
	// the answer.
	// Selected when every prefix literal is itself a whole match, e.g. for
	// /foo|bar/ or /a[bc]/.
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for the given prefilter, which may be nil.
func selectStrategy(pf prefilter.Prefilter) Strategy {
	switch {
	case pf == nil:
		return UseNFA
	case pf.IsComplete():
		return UseLiteral
	default:
		return UsePrefilter
	}
}
