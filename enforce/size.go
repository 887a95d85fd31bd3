package enforce

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

// SizeBoundEnforcer prevents node reuse: the candidate child id may be
// pointed to by at most one child link across the whole skeleton. This
// keeps the structure a tree rather than a DAG, so the size bound counts
// real nodes.
type SizeBoundEnforcer struct {
	Child int
}

// Rules emits, for every pair of distinct potential parents, the three
// pairwise exclusions over left/left, right/right and left/right links
// to the child.
func (e SizeBoundEnforcer) Rules(ctx *trace.Context) []boollogic.Expr {
	c := e.Child
	n := ctx.MaxSkeletons()

	var rules []boollogic.Expr
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || i == c || j == c {
				continue
			}
			rules = append(rules,
				boollogic.NotVar(boollogic.LeftChild(i, c)).Or(boollogic.NotVar(boollogic.LeftChild(j, c))),
				boollogic.NotVar(boollogic.RightChild(i, c)).Or(boollogic.NotVar(boollogic.RightChild(j, c))),
				boollogic.NotVar(boollogic.LeftChild(i, c)).Or(boollogic.NotVar(boollogic.RightChild(j, c))),
			)
		}
	}
	return rules
}

// SizeEnforcer pins the trailing skeleton slots: a binary node at id
// n-2 or n-1 could not fit its right child below the bound, and a unary
// node at id n-1 could not fit any child. Emitted as unit negations.
type SizeEnforcer struct{}

var binaryTypes = []func(int) boollogic.Variable{
	boollogic.And,
	boollogic.Or,
	boollogic.Until,
	boollogic.Release,
}

var unaryTypes = []func(int) boollogic.Variable{
	boollogic.Eventually,
	boollogic.Next,
	boollogic.WNext,
	boollogic.Always,
}

// Rules emits the unit clauses for the trailing slots, clamped to valid
// skeleton ids.
func (e SizeEnforcer) Rules(ctx *trace.Context) []boollogic.Expr {
	n := ctx.MaxSkeletons()

	var rules []boollogic.Expr
	for i := max(0, n-2); i < n; i++ {
		for _, ty := range binaryTypes {
			rules = append(rules, boollogic.NotVar(ty(i)))
		}
	}
	for i := max(0, n-1); i < n; i++ {
		for _, ty := range unaryTypes {
			rules = append(rules, boollogic.NotVar(ty(i)))
		}
	}
	return rules
}
