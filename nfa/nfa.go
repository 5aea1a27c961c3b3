package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/rex/syntax"
)

// StateID uniquely identifies an NFA state.
// It is an index into the NFA's state arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Edge is a labeled transition to another state.
// An epsilon edge consumes no input; any other edge consumes exactly one rune
// satisfying Cond.
type Edge struct {
	Next    StateID
	Epsilon bool
	Cond    syntax.Condition
}

// Matches reports whether the edge can consume r.
// Epsilon edges never consume input.
func (e Edge) Matches(r rune) bool {
	return !e.Epsilon && e.Cond.Matches(r)
}

// String returns a human-readable representation of the edge
func (e Edge) String() string {
	if e.Epsilon {
		return fmt.Sprintf("ε -> %d", e.Next)
	}
	return fmt.Sprintf("%s -> %d", e.Cond, e.Next)
}

// State is a node of the automaton. It carries no payload of its own;
// all behavior lives on its outgoing edges.
type State struct {
	id    StateID
	edges []Edge
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Edges returns the state's outgoing edges.
// The slice must not be modified.
func (s *State) Edges() []Edge {
	return s.edges
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	parts := make([]string, len(s.edges))
	for i, e := range s.edges {
		parts[i] = e.String()
	}
	return fmt.Sprintf("State(%d, [%s])", s.id, strings.Join(parts, ", "))
}

// NFA is a compiled epsilon-NFA.
//
// States are stored in an arena and refer to each other by StateID, so
// shared sub-structure (several edges into the same state) needs no
// ownership bookkeeping. An NFA is immutable once built and may be read
// from multiple goroutines.
type NFA struct {
	states []State
	start  StateID
	accept StateID
}

// Start returns the start state
func (n *NFA) Start() StateID {
	return n.start
}

// Accept returns the accepting state
func (n *NFA) Accept() StateID {
	return n.accept
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsAccept returns true if id is the accepting state
func (n *NFA) IsAccept(id StateID) bool {
	return id == n.accept
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// EdgeCount returns the number of edges and how many of them are epsilon edges.
func (n *NFA) EdgeCount() (total, epsilon int) {
	for i := range n.states {
		for _, e := range n.states[i].edges {
			total++
			if e.Epsilon {
				epsilon++
			}
		}
	}
	return total, epsilon
}

// Iter returns an iterator over all states in the NFA
func (n *NFA) Iter() *StateIter {
	return &StateIter{nfa: n}
}

// StateIter is an iterator over NFA states
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter) Next() *State {
	if it.pos >= len(it.nfa.states) {
		return nil
	}
	s := &it.nfa.states[it.pos]
	it.pos++
	return s
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	total, eps := n.EdgeCount()
	return fmt.Sprintf("NFA{states: %d, edges: %d, epsilon: %d, start: %d, accept: %d}",
		len(n.states), total, eps, n.start, n.accept)
}
