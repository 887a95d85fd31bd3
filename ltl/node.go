// Package ltl holds the decoded LTLf syntax tree, its output renderings
// and a reference finite-trace semantics used to check decoded formulas
// against examples.
package ltl

import (
	"fmt"
)

// Op enumerates the LTLf operators of a decoded formula node.
type Op uint8

const (
	// OpAnd is `a & b`.
	OpAnd Op = iota
	// OpOr is `a | b`.
	OpOr
	// OpNext is the strong next `X a`: false at the last time step.
	OpNext
	// OpWNext is the weak next `N a`: true at the last time step.
	OpWNext
	// OpUntil is `a U b`.
	OpUntil
	// OpRelease is `a R b`.
	OpRelease
	// OpEventually is `F a`.
	OpEventually
	// OpAlways is `G a`.
	OpAlways
	// OpLiteral is an atomic proposition, possibly negated.
	OpLiteral
)

// Node is one node of a decoded LTLf syntax tree. Literal nodes carry
// the display name of their word and a polarity; other nodes carry one
// or two children.
type Node struct {
	Op       Op
	Left     *Node
	Right    *Node
	Positive bool
	Word     string
}

// NewAnd builds `lhs & rhs`.
func NewAnd(lhs, rhs *Node) *Node { return &Node{Op: OpAnd, Left: lhs, Right: rhs} }

// NewOr builds `lhs | rhs`.
func NewOr(lhs, rhs *Node) *Node { return &Node{Op: OpOr, Left: lhs, Right: rhs} }

// NewNext builds `X a`.
func NewNext(a *Node) *Node { return &Node{Op: OpNext, Left: a} }

// NewWNext builds `N a`.
func NewWNext(a *Node) *Node { return &Node{Op: OpWNext, Left: a} }

// NewUntil builds `a U b`.
func NewUntil(lhs, rhs *Node) *Node { return &Node{Op: OpUntil, Left: lhs, Right: rhs} }

// NewRelease builds `a R b`.
func NewRelease(lhs, rhs *Node) *Node { return &Node{Op: OpRelease, Left: lhs, Right: rhs} }

// NewEventually builds `F a`.
func NewEventually(a *Node) *Node { return &Node{Op: OpEventually, Left: a} }

// NewAlways builds `G a`.
func NewAlways(a *Node) *Node { return &Node{Op: OpAlways, Left: a} }

// NewLiteral builds the atomic node for word with the given polarity.
func NewLiteral(positive bool, word string) *Node {
	return &Node{Op: OpLiteral, Positive: positive, Word: word}
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// String renders the formula in the parenthesized infix form, e.g.
// `((p) & (X (q)))`.
func (n *Node) String() string {
	switch n.Op {
	case OpAnd:
		return fmt.Sprintf("(%s & %s)", n.Left, n.Right)
	case OpOr:
		return fmt.Sprintf("(%s | %s)", n.Left, n.Right)
	case OpNext:
		return fmt.Sprintf("(X %s)", n.Left)
	case OpWNext:
		return fmt.Sprintf("(N %s)", n.Left)
	case OpUntil:
		return fmt.Sprintf("(%s U %s)", n.Left, n.Right)
	case OpRelease:
		return fmt.Sprintf("(%s R %s)", n.Left, n.Right)
	case OpEventually:
		return fmt.Sprintf("(F %s)", n.Left)
	case OpAlways:
		return fmt.Sprintf("(G %s)", n.Left)
	case OpLiteral:
		if n.Positive {
			return fmt.Sprintf("(%s)", n.Word)
		}
		return fmt.Sprintf("(!(%s))", n.Word)
	}
	return "?"
}
