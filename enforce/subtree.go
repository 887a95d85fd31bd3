package enforce

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

// SubtreeEnforcer guarantees that a node of the given type owns the
// child links its arity demands: exactly one left child for unary and
// binary nodes, exactly one right child for binary nodes, and exactly
// one word binding for literal nodes.
//
// For a binary node the left child may occupy id n-2 at most and the
// right child id n-1, which keeps left-id < right-id < n attainable.
type SubtreeEnforcer struct {
	Type boollogic.Variable
}

func (e SubtreeEnforcer) childRule(from, to int, link func(int, int) boollogic.Variable) boollogic.Expr {
	i := e.Type.SkeletonID()
	// The range is empty for the trailing slots; exactly-one over
	// nothing is false, which squares with the trailing-slot units.
	var vars []boollogic.Variable
	for j := from; j < to; j++ {
		vars = append(vars, link(i, j))
	}
	return boollogic.VarExpr(e.Type).Implies(exactlyOne(vars))
}

// Rules emits the exactly-one child (or word) constraints for the node type.
func (e SubtreeEnforcer) Rules(ctx *trace.Context) []boollogic.Expr {
	ty := e.Type
	i := ty.SkeletonID()
	n := ctx.MaxSkeletons()

	var rules []boollogic.Expr
	switch {
	case ty.IsUnary():
		rules = append(rules, e.childRule(i+1, n, boollogic.LeftChild))
	case ty.IsBinary():
		rules = append(rules, e.childRule(i+1, n-1, boollogic.LeftChild))
		rules = append(rules, e.childRule(i+2, n, boollogic.RightChild))
	case ty.IsAtom():
		words := make([]boollogic.Variable, 0, 2*ctx.WordCount())
		for w := 0; w < ctx.WordCount(); w++ {
			words = append(words, boollogic.Word(i, w, true))
			words = append(words, boollogic.Word(i, w, false))
		}
		rules = append(rules, boollogic.VarExpr(ty).Implies(exactlyOne(words)))
	}
	return rules
}
