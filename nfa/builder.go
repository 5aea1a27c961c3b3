package nfa

import (
	"fmt"

	"github.com/coregx/rex/internal/conv"
	"github.com/coregx/rex/syntax"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by Compile.
type Builder struct {
	states []State
	start  StateID
	accept StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
		accept: InvalidState,
	}
}

// AddState adds a state with no edges and returns its ID
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddEdge adds an edge from -> to that consumes one rune satisfying cond.
// The condition is copied so the NFA never aliases the caller's data.
func (b *Builder) AddEdge(from, to StateID, cond syntax.Condition) error {
	return b.addEdge(from, Edge{Next: to, Cond: cond.Clone()})
}

// AddEpsilon adds an edge from -> to that consumes no input
func (b *Builder) AddEpsilon(from, to StateID) error {
	return b.addEdge(from, Edge{Next: to, Epsilon: true})
}

func (b *Builder) addEdge(from StateID, e Edge) error {
	if int(from) >= len(b.states) {
		return &BuildError{
			Message: "source state out of bounds",
			StateID: from,
		}
	}
	b.states[from].edges = append(b.states[from].edges, e)
	return nil
}

// SetStart sets the starting state
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// SetAccept sets the accepting state
func (b *Builder) SetAccept(accept StateID) {
	b.accept = accept
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start and accept states are set and valid
// - All edges point to valid states
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
		}
	}
	if b.accept == InvalidState {
		return &BuildError{Message: "accept state not set", StateID: InvalidState}
	}
	if int(b.accept) >= len(b.states) {
		return &BuildError{
			Message: "accept state out of bounds",
			StateID: b.accept,
		}
	}

	for i := range b.states {
		for j, e := range b.states[i].edges {
			if int(e.Next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("edge %d targets invalid state %d", j, e.Next),
					StateID: StateID(i),
				}
			}
		}
	}

	return nil
}

// Build finalizes and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nfa := &NFA{
		states: b.states,
		start:  b.start,
		accept: b.accept,
	}
	b.states = nil
	return nfa, nil
}
