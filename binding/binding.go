// Package binding exposes rex to foreign runtimes that can exchange only
// strings and 32-bit integers across their boundary.
//
// Errors cross the boundary as plain messages and offsets as uint32.
// Offsets that do not fit saturate to math.MaxUint32; a host seeing that
// value must treat it as "at or beyond 4294967295 runes".
package binding

import (
	"github.com/coregx/rex"
	"github.com/coregx/rex/internal/conv"
)

// Error is an opaque error message. Hosts receive only the text; the
// structured *syntax.Error is not exported through the boundary.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

// RegEx is a compiled pattern handle for a host runtime.
// It is safe for concurrent use.
type RegEx struct {
	re *rex.Regex
}

// New compiles pattern. On failure the returned error is an Error holding
// the parse error's message.
func New(pattern string) (*RegEx, error) {
	re, err := rex.Compile(pattern)
	if err != nil {
		return nil, Error(err.Error())
	}
	return &RegEx{re: re}, nil
}

// Search returns the leftmost rune offset of a match in haystack.
// The offset saturates at math.MaxUint32.
func (r *RegEx) Search(haystack string) (uint32, bool) {
	pos, ok := r.re.SearchString(haystack)
	if !ok {
		return 0, false
	}
	offset, _ := conv.SaturateUint32(pos)
	return offset, true
}

// Test reports whether the pattern matches anywhere in haystack.
func (r *RegEx) Test(haystack string) bool {
	return r.re.MatchString(haystack)
}

// Pattern returns the source text of the compiled pattern.
func (r *RegEx) Pattern() string {
	return r.re.String()
}
