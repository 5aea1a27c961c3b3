// Package syntax parses the rex pattern dialect into a syntax tree.
//
// The dialect is deliberately small: literal runes, bracket expressions
// ([abc], [^abc]), the any-rune wildcard (.), class escapes (\d \D \s \S
// \l \L \u \U) and alternation (|). There are no quantifiers, groups or
// anchors.
package syntax

import (
	"fmt"
)

// ErrorCode describes a failure to parse a pattern.
type ErrorCode string

const (
	// ErrUnmatchedBracket reports a '[' that is never closed by ']'.
	// The offset is that of the opening bracket.
	ErrUnmatchedBracket ErrorCode = "unmatched bracket"

	// ErrUnexpectedEOF reports input that ended where a rune was required.
	// The offset is where the missing rune was expected.
	ErrUnexpectedEOF ErrorCode = "unexpected end of pattern"

	// ErrInvalidEscape reports a '\' followed by a rune with no meaning
	// in the dialect. The offset is that of the backslash.
	ErrInvalidEscape ErrorCode = "invalid escape sequence"

	// ErrMissingOperand reports a '|' with nothing to its left.
	// The offset is that of the '|'.
	ErrMissingOperand ErrorCode = "missing alternation operand"
)

// String returns the code's description
func (c ErrorCode) String() string {
	return string(c)
}

// Error describes a failure to parse a pattern and where it happened.
// Offset is a byte offset into Pattern.
type Error struct {
	Code    ErrorCode
	Offset  int
	Pattern string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing regexp: %s at offset %d: `%s`", e.Code, e.Offset, e.Pattern)
}

// Is reports whether target is an *Error with the same code.
// This lets callers write errors.Is(err, &syntax.Error{Code: syntax.ErrUnmatchedBracket}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
