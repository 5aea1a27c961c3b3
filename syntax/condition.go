package syntax

import (
	"fmt"
	"sort"
	"strings"
)

// Class identifies a predefined character classification.
// Predicates are ASCII-only.
type Class uint8

const (
	// ClassDigit matches 0-9 (\d)
	ClassDigit Class = iota
	// ClassNonDigit matches anything but 0-9 (\D)
	ClassNonDigit
	// ClassSpace matches \t, \n, \v, \f, \r and space (\s)
	ClassSpace
	// ClassNonSpace is the complement of ClassSpace (\S)
	ClassNonSpace
	// ClassLower matches a-z (\l)
	ClassLower
	// ClassNonLower is the complement of ClassLower (\L)
	ClassNonLower
	// ClassUpper matches A-Z (\u)
	ClassUpper
	// ClassNonUpper is the complement of ClassUpper (\U)
	ClassNonUpper
)

// classEscapes maps escape letters to the class they introduce.
var classEscapes = map[rune]Class{
	'd': ClassDigit,
	'D': ClassNonDigit,
	's': ClassSpace,
	'S': ClassNonSpace,
	'l': ClassLower,
	'L': ClassNonLower,
	'u': ClassUpper,
	'U': ClassNonUpper,
}

// Contains reports whether r satisfies the class predicate.
func (c Class) Contains(r rune) bool {
	switch c {
	case ClassDigit:
		return isDigit(r)
	case ClassNonDigit:
		return !isDigit(r)
	case ClassSpace:
		return isSpace(r)
	case ClassNonSpace:
		return !isSpace(r)
	case ClassLower:
		return isLower(r)
	case ClassNonLower:
		return !isLower(r)
	case ClassUpper:
		return isUpper(r)
	case ClassNonUpper:
		return !isUpper(r)
	default:
		panic(fmt.Sprintf("syntax: unknown class %d", c))
	}
}

// Complement returns the class matching exactly the runes c does not.
func (c Class) Complement() Class {
	return c ^ 1
}

// Members returns the runes of a finite class in ascending order,
// or nil for the complemented classes, which are unbounded.
func (c Class) Members() []rune {
	var lo, hi rune
	switch c {
	case ClassDigit:
		lo, hi = '0', '9'
	case ClassLower:
		lo, hi = 'a', 'z'
	case ClassUpper:
		lo, hi = 'A', 'Z'
	case ClassSpace:
		return []rune{'\t', '\n', '\v', '\f', '\r', ' '}
	default:
		return nil
	}
	members := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		members = append(members, r)
	}
	return members
}

// String returns the escape sequence that introduces the class.
func (c Class) String() string {
	for letter, class := range classEscapes {
		if class == c {
			return `\` + string(letter)
		}
	}
	return fmt.Sprintf("Class(%d)", c)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

// CondKind identifies which variant of Condition is active.
type CondKind uint8

const (
	// CondLiteral matches exactly one rune
	CondLiteral CondKind = iota

	// CondInclude matches any rune in Set
	CondInclude

	// CondExclude matches any rune not in Set
	CondExclude

	// CondIncludeClass matches any rune satisfying Class
	CondIncludeClass

	// CondExcludeClass matches any rune not satisfying Class
	CondExcludeClass
)

// String returns a human-readable representation of the CondKind
func (k CondKind) String() string {
	switch k {
	case CondLiteral:
		return "Literal"
	case CondInclude:
		return "Include"
	case CondExclude:
		return "Exclude"
	case CondIncludeClass:
		return "IncludeClass"
	case CondExcludeClass:
		return "ExcludeClass"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Condition is the atomic match condition consumed by a single input rune.
// Kind selects which of Rune, Set or Class is meaningful; the others are zero.
//
// Set is kept sorted and free of duplicates, so two conditions built from the
// same members compare equal with Equal.
type Condition struct {
	Kind  CondKind
	Rune  rune
	Set   []rune
	Class Class
}

// Literal returns a condition matching exactly r.
func Literal(r rune) Condition {
	return Condition{Kind: CondLiteral, Rune: r}
}

// Include returns a condition matching any of members.
func Include(members ...rune) Condition {
	return Condition{Kind: CondInclude, Set: normalizeSet(members)}
}

// Exclude returns a condition matching any rune except members.
func Exclude(members ...rune) Condition {
	return Condition{Kind: CondExclude, Set: normalizeSet(members)}
}

// IncludeClass returns a condition matching runes of class c.
func IncludeClass(c Class) Condition {
	return Condition{Kind: CondIncludeClass, Class: c}
}

// ExcludeClass returns a condition matching runes outside class c.
func ExcludeClass(c Class) Condition {
	return Condition{Kind: CondExcludeClass, Class: c}
}

// AnyRune returns the condition matching every rune.
func AnyRune() Condition {
	return Exclude()
}

// normalizeSet sorts and de-duplicates a copy of members.
func normalizeSet(members []rune) []rune {
	if len(members) == 0 {
		return nil
	}
	set := make([]rune, len(members))
	copy(set, members)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	n := 1
	for i := 1; i < len(set); i++ {
		if set[i] != set[n-1] {
			set[n] = set[i]
			n++
		}
	}
	return set[:n]
}

// setContains reports whether r is in the sorted set.
func setContains(set []rune, r rune) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i] >= r })
	return i < len(set) && set[i] == r
}

// Matches reports whether the rune r satisfies the condition.
func (c Condition) Matches(r rune) bool {
	switch c.Kind {
	case CondLiteral:
		return c.Rune == r
	case CondInclude:
		return setContains(c.Set, r)
	case CondExclude:
		return !setContains(c.Set, r)
	case CondIncludeClass:
		return c.Class.Contains(r)
	case CondExcludeClass:
		return !c.Class.Contains(r)
	default:
		panic(fmt.Sprintf("syntax: unknown condition kind %d", c.Kind))
	}
}

// Negate returns the condition matching exactly the runes c does not.
// A literal negates to an exclusive single-member set.
func (c Condition) Negate() Condition {
	switch c.Kind {
	case CondLiteral:
		return Exclude(c.Rune)
	case CondInclude:
		return Condition{Kind: CondExclude, Set: c.Set}
	case CondExclude:
		return Condition{Kind: CondInclude, Set: c.Set}
	case CondIncludeClass:
		return ExcludeClass(c.Class)
	case CondExcludeClass:
		return IncludeClass(c.Class)
	default:
		panic(fmt.Sprintf("syntax: unknown condition kind %d", c.Kind))
	}
}

// Clone returns a copy of c that shares no memory with it.
func (c Condition) Clone() Condition {
	if c.Set != nil {
		set := make([]rune, len(c.Set))
		copy(set, c.Set)
		c.Set = set
	}
	return c
}

// Equal reports whether c and o describe the same condition.
func (c Condition) Equal(o Condition) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case CondLiteral:
		return c.Rune == o.Rune
	case CondInclude, CondExclude:
		if len(c.Set) != len(o.Set) {
			return false
		}
		for i := range c.Set {
			if c.Set[i] != o.Set[i] {
				return false
			}
		}
		return true
	default:
		return c.Class == o.Class
	}
}

// String renders the condition in pattern syntax.
func (c Condition) String() string {
	var b strings.Builder
	switch c.Kind {
	case CondLiteral:
		writeLiteral(&b, c.Rune)
	case CondInclude, CondExclude:
		if c.Kind == CondExclude && len(c.Set) == 0 {
			return "."
		}
		b.WriteByte('[')
		if c.Kind == CondExclude {
			b.WriteByte('^')
		}
		for _, r := range c.Set {
			if r == ']' || r == '\\' || (r == '^' && b.Len() == 1) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte(']')
	case CondIncludeClass:
		b.WriteString(c.Class.String())
	case CondExcludeClass:
		b.WriteString(c.Class.Complement().String())
	}
	return b.String()
}

// IsMeta reports whether r has special meaning outside a bracket expression
// and must be escaped to be matched literally.
func IsMeta(r rune) bool {
	switch r {
	case '\\', '[', ']', '|', '.', '^':
		return true
	}
	return false
}

func writeLiteral(b *strings.Builder, r rune) {
	if IsMeta(r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
