package nfa

import (
	"unicode/utf8"

	"github.com/coregx/rex/internal/sparse"
)

// PikeVM simulates an NFA by tracking the set of all active states while
// consuming input one rune at a time.
//
// Matching is prefix-anchored: IsMatchPrefix succeeds as soon as the accept
// state becomes active, without requiring the rest of the input to be
// consumed. Search restarts that simulation at every rune offset and
// reports the leftmost offset that succeeds.
//
// Thread safety: the NFA is immutable, but a PikeVM owns scratch sets that
// every search mutates. Each goroutine must use its own PikeVM; meta.Engine
// pools them.
type PikeVM struct {
	nfa *NFA

	// curr and next hold the active states before and after a rune.
	curr *sparse.Set[StateID]
	next *sparse.Set[StateID]

	// stack is the work list for epsilon closure.
	stack []StateID
}

// NewPikeVM creates a new PikeVM for executing the given NFA
func NewPikeVM(nfa *NFA) *PikeVM {
	n := nfa.States()
	return &PikeVM{
		nfa:   nfa,
		curr:  sparse.NewSet[StateID](n),
		next:  sparse.NewSet[StateID](n),
		stack: make([]StateID, 0, n),
	}
}

// NFA returns the automaton this PikeVM simulates
func (p *PikeVM) NFA() *NFA {
	return p.nfa
}

// addClosure inserts id and every state reachable from it through epsilon
// edges into set. States already in set are not expanded again, which both
// bounds the work and guarantees termination if the graph has cycles.
func (p *PikeVM) addClosure(set *sparse.Set[StateID], id StateID) {
	if !set.Insert(id) {
		return
	}
	p.stack = append(p.stack[:0], id)
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		for _, e := range p.nfa.states[top].edges {
			if e.Epsilon && set.Insert(e.Next) {
				p.stack = append(p.stack, e.Next)
			}
		}
	}
}

// step computes into p.next every state reachable from the members of
// p.curr by consuming r, closed over epsilon edges.
func (p *PikeVM) step(r rune) {
	p.next.Clear()
	for _, id := range p.curr.Values() {
		for _, e := range p.nfa.states[id].edges {
			if e.Matches(r) {
				p.addClosure(p.next, e.Next)
			}
		}
	}
}

// EpsilonClosure returns every state reachable from id by following zero
// or more epsilon edges, including id itself, in discovery order.
// Returns nil if id is not a state of the NFA.
func (p *PikeVM) EpsilonClosure(id StateID) []StateID {
	if p.nfa.State(id) == nil {
		return nil
	}
	p.curr.Clear()
	p.addClosure(p.curr, id)
	return p.curr.AppendTo(nil)
}

// Step returns the states reachable from any member of states by consuming
// exactly the rune r, each followed by its epsilon closure.
// Invalid IDs in states are ignored.
func (p *PikeVM) Step(states []StateID, r rune) []StateID {
	p.curr.Clear()
	for _, id := range states {
		if p.nfa.State(id) != nil {
			p.curr.Insert(id)
		}
	}
	p.step(r)
	return p.next.AppendTo(nil)
}

// IsMatchPrefix reports whether some prefix of haystack (possibly empty)
// is accepted by the NFA.
//
// The active set starts as the epsilon closure of the start state. After
// each rune the set advances by one step; the search succeeds as soon as the
// accept state is active and fails early once no state is active.
// Invalid UTF-8 decodes to utf8.RuneError, one byte at a time.
func (p *PikeVM) IsMatchPrefix(haystack []byte) bool {
	p.curr.Clear()
	p.addClosure(p.curr, p.nfa.start)
	if p.curr.Contains(p.nfa.accept) {
		return true
	}

	for pos := 0; pos < len(haystack); {
		r, width := utf8.DecodeRune(haystack[pos:])
		pos += width

		p.step(r)
		if p.next.Contains(p.nfa.accept) {
			return true
		}
		if p.next.IsEmpty() {
			return false
		}
		p.curr, p.next = p.next, p.curr
	}
	return false
}

// Search returns the leftmost rune offset i such that the input starting
// at the i-th rune has a prefix accepted by the NFA. The end of input (the
// empty suffix) is the last offset tried.
//
// Offsets count decoded runes, not bytes. Returns (-1, false) if no offset
// matches.
func (p *PikeVM) Search(haystack []byte) (int, bool) {
	return p.SearchFrom(haystack, 0, 0)
}

// SearchFrom is like Search but begins at byte offset at, which must be a
// rune boundary; runeOffset is the rune offset corresponding to at and is
// added to the result.
func (p *PikeVM) SearchFrom(haystack []byte, at, runeOffset int) (int, bool) {
	for pos, i := at, runeOffset; ; i++ {
		if p.IsMatchPrefix(haystack[pos:]) {
			return i, true
		}
		if pos >= len(haystack) {
			return -1, false
		}
		_, width := utf8.DecodeRune(haystack[pos:])
		pos += width
	}
}

// MatchesAt reports whether a match starts exactly at byte offset at.
func (p *PikeVM) MatchesAt(haystack []byte, at int) bool {
	if at < 0 || at > len(haystack) {
		return false
	}
	return p.IsMatchPrefix(haystack[at:])
}
