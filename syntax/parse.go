package syntax

import (
	"unicode/utf8"
)

// parser holds the scan position while a pattern is being parsed.
// pos is a byte offset into pattern and only ever moves forward.
type parser struct {
	pattern string
	pos     int
}

// Parse parses pattern into a syntax tree.
//
// Concatenation binds tighter than alternation, so "a|bc" parses as
// Alternate(a, Concat(b, c)). Both operators nest to the right: "abc" is
// Concat(a, Concat(b, c)) and "a|b|c" is Alternate(a, Alternate(b, c)).
//
// Outside brackets a backslash introduces either a class escape
// (\d \D \s \S \l \L \u \U) or one of the metacharacters \\ \[ \] \| \.
// \^, which then matches itself. Any other escape is ErrInvalidEscape.
//
// On failure the returned error is a *Error carrying the byte offset at
// which the problem was detected.
func Parse(pattern string) (*Node, error) {
	p := &parser{pattern: pattern}
	return p.parseAlternation()
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

// peek returns the rune at the current position without consuming it.
func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.pattern[p.pos:])
	return r
}

// next consumes and returns the rune at the current position.
// Invalid UTF-8 decodes to utf8.RuneError and consumes one byte.
func (p *parser) next() rune {
	r, width := utf8.DecodeRuneInString(p.pattern[p.pos:])
	p.pos += width
	return r
}

func (p *parser) error(code ErrorCode, offset int) *Error {
	return &Error{Code: code, Offset: offset, Pattern: p.pattern}
}

// parseAlternation parses branches separated by '|'.
func (p *parser) parseAlternation() (*Node, error) {
	var branches []*Node
	for {
		branch, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
		if p.eof() {
			break
		}

		// parseConcat only stops early at '|'
		p.next()
		if p.eof() {
			return nil, p.error(ErrUnexpectedEOF, p.pos)
		}
	}

	node := branches[len(branches)-1]
	for i := len(branches) - 2; i >= 0; i-- {
		node = Alternate(branches[i], node)
	}
	return node, nil
}

// parseConcat parses units up to the next '|' or the end of input.
func (p *parser) parseConcat() (*Node, error) {
	var units []*Node
	for !p.eof() && p.peek() != '|' {
		unit, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	if len(units) == 0 {
		if p.eof() {
			return nil, p.error(ErrUnexpectedEOF, p.pos)
		}
		return nil, p.error(ErrMissingOperand, p.pos)
	}

	node := units[len(units)-1]
	for i := len(units) - 2; i >= 0; i-- {
		node = Concat(units[i], node)
	}
	return node, nil
}

// parseUnit parses a single rune-consuming unit.
func (p *parser) parseUnit() (*Node, error) {
	start := p.pos
	switch r := p.next(); r {
	case '[':
		return p.parseBracket(start)
	case '\\':
		return p.parseEscape(start)
	case '.':
		return Char(AnyRune()), nil
	default:
		return Char(Literal(r)), nil
	}
}

// parseBracket parses a bracket expression whose '[' is at offset open
// and has already been consumed.
func (p *parser) parseBracket(open int) (*Node, error) {
	if p.eof() {
		return nil, p.error(ErrUnexpectedEOF, p.pos)
	}

	negated := false
	if p.peek() == '^' {
		negated = true
		p.next()
	}

	var members []rune
	for {
		if p.eof() {
			return nil, p.error(ErrUnmatchedBracket, open)
		}
		r := p.next()
		switch r {
		case ']':
			if negated {
				return Char(Exclude(members...)), nil
			}
			return Char(Include(members...)), nil
		case '\\':
			if p.eof() {
				return nil, p.error(ErrUnexpectedEOF, p.pos)
			}
			members = append(members, p.next())
		default:
			members = append(members, r)
		}
	}
}

// parseEscape parses an escape sequence outside a bracket expression
// whose '\' is at offset start and has already been consumed.
func (p *parser) parseEscape(start int) (*Node, error) {
	if p.eof() {
		return nil, p.error(ErrUnexpectedEOF, p.pos)
	}
	r := p.next()
	if class, ok := classEscapes[r]; ok {
		return Char(IncludeClass(class)), nil
	}
	if IsMeta(r) {
		return Char(Literal(r)), nil
	}
	return nil, p.error(ErrInvalidEscape, start)
}
