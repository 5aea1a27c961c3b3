package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an AST node.
type Op uint8

const (
	// OpChar is a leaf matching exactly one rune via Cond
	OpChar Op = iota + 1

	// OpConcat matches Left followed by Right
	OpConcat

	// OpAlternate matches either Left or Right
	OpAlternate
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpChar:
		return "Char"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Node is a node of the pattern syntax tree.
//
// Leaves (OpChar) carry a Condition; interior nodes (OpConcat, OpAlternate)
// own exactly two children. Children are never shared between parents.
type Node struct {
	Op    Op
	Cond  Condition
	Left  *Node
	Right *Node
}

// Char returns a leaf node for cond.
func Char(cond Condition) *Node {
	return &Node{Op: OpChar, Cond: cond}
}

// Concat returns a node matching left followed by right.
func Concat(left, right *Node) *Node {
	return &Node{Op: OpConcat, Left: left, Right: right}
}

// Alternate returns a node matching left or right.
func Alternate(left, right *Node) *Node {
	return &Node{Op: OpAlternate, Left: left, Right: right}
}

// Equal reports whether n and o are structurally identical trees.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Op != o.Op {
		return false
	}
	if n.Op == OpChar {
		return n.Cond.Equal(o.Cond)
	}
	return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// Leaves returns the number of OpChar nodes in the tree.
func (n *Node) Leaves() int {
	count := 0
	n.walk(func(m *Node) {
		if m.Op == OpChar {
			count++
		}
	})
	return count
}

// walk visits every node of the tree in pre-order without recursion.
func (n *Node) walk(visit func(*Node)) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(m)
		if m.Op != OpChar {
			stack = append(stack, m.Right, m.Left)
		}
	}
}

// String renders the tree back into pattern syntax.
// Parsing the result yields a tree that matches the same inputs.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Op {
	case OpChar:
		b.WriteString(n.Cond.String())
	case OpConcat:
		// Alternation binds looser than concatenation and the dialect has
		// no grouping, so an alternate operand of a concat cannot be
		// rendered faithfully. The parser never produces that shape.
		n.Left.writeTo(b)
		n.Right.writeTo(b)
	case OpAlternate:
		n.Left.writeTo(b)
		b.WriteByte('|')
		n.Right.writeTo(b)
	}
}

// Dump returns a debugging representation of the tree structure,
// e.g. Concat(Literal(a), Literal(b)).
func (n *Node) Dump() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	switch n.Op {
	case OpChar:
		fmt.Fprintf(b, "%s(%s)", n.Cond.Kind, n.Cond)
	default:
		b.WriteString(n.Op.String())
		b.WriteByte('(')
		n.Left.dump(b)
		b.WriteString(", ")
		n.Right.dump(b)
		b.WriteByte(')')
	}
}
