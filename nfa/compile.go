package nfa

import (
	"github.com/coregx/rex/syntax"
)

// obligation is a pending translation: the sub-tree node must be wired
// between the already allocated states entry and exit.
type obligation struct {
	node        *syntax.Node
	entry, exit StateID
}

// Compile translates a syntax tree into an NFA using Thompson's construction.
//
// The tree is walked breadth-first with an explicit work queue rather than
// by recursion, so very long concatenation chains do not grow the stack:
//   - Char: one edge entry -> exit labeled with the leaf's condition.
//   - Concat: one fresh intermediate state; left spans entry -> mid and
//     right spans mid -> exit.
//   - Alternate: four fresh states x1, x2, y1, y2 with epsilon edges
//     entry -> x1, entry -> y1, x2 -> exit, y2 -> exit; left spans x1 -> x2
//     and right spans y1 -> y2.
//
// Every leaf contributes exactly one non-epsilon edge. The returned NFA does
// not reference the tree. Only a nil or malformed tree is rejected.
func Compile(root *syntax.Node) (*NFA, error) {
	if root == nil {
		return nil, &CompileError{Err: ErrNilNode}
	}

	b := NewBuilder()
	start := b.AddState()
	accept := b.AddState()
	b.SetStart(start)
	b.SetAccept(accept)

	queue := []obligation{{node: root, entry: start, exit: accept}}
	for head := 0; head < len(queue); head++ {
		ob := queue[head]
		queue[head] = obligation{} // release the node for GC once handled
		node := ob.node

		switch node.Op {
		case syntax.OpChar:
			if err := b.AddEdge(ob.entry, ob.exit, node.Cond); err != nil {
				return nil, &CompileError{Err: err}
			}

		case syntax.OpConcat:
			if node.Left == nil || node.Right == nil {
				return nil, &CompileError{Err: ErrMalformedNode}
			}
			mid := b.AddState()
			queue = append(queue,
				obligation{node: node.Left, entry: ob.entry, exit: mid},
				obligation{node: node.Right, entry: mid, exit: ob.exit},
			)

		case syntax.OpAlternate:
			if node.Left == nil || node.Right == nil {
				return nil, &CompileError{Err: ErrMalformedNode}
			}
			x1, x2 := b.AddState(), b.AddState()
			y1, y2 := b.AddState(), b.AddState()
			for _, e := range [][2]StateID{{ob.entry, x1}, {ob.entry, y1}, {x2, ob.exit}, {y2, ob.exit}} {
				if err := b.AddEpsilon(e[0], e[1]); err != nil {
					return nil, &CompileError{Err: err}
				}
			}
			queue = append(queue,
				obligation{node: node.Left, entry: x1, exit: x2},
				obligation{node: node.Right, entry: y1, exit: y2},
			)

		default:
			return nil, &CompileError{Err: ErrMalformedNode}
		}
	}

	nfa, err := b.Build()
	if err != nil {
		return nil, &CompileError{Err: err}
	}
	return nfa, nil
}

// CompilePattern parses pattern and compiles the resulting tree.
// Parse failures are returned unchanged as *syntax.Error.
func CompilePattern(pattern string) (*NFA, error) {
	root, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := Compile(root)
	if err != nil {
		if ce, ok := err.(*CompileError); ok {
			ce.Pattern = pattern
		}
		return nil, err
	}
	return nfa, nil
}
