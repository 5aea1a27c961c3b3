// Package nfa compiles rex syntax trees into Thompson epsilon-NFAs and
// simulates them.
//
// The automaton is an arena of states joined by labeled edges. Compilation
// is a breadth-first structural translation of the syntax tree; simulation
// tracks the set of active states rune by rune (see PikeVM).
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrNilNode indicates Compile was given no syntax tree
	ErrNilNode = errors.New("nil syntax tree")

	// ErrMalformedNode indicates a syntax tree node with an unknown op or missing children
	ErrMalformedNode = errors.New("malformed syntax tree")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidState) match build errors
// that reference a state outside the arena.
func (e *BuildError) Unwrap() error {
	if e.StateID != InvalidState {
		return ErrInvalidState
	}
	return nil
}
