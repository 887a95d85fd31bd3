package enforce

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

// SkTypeEnforcer guarantees that skeleton node ID carries exactly one of
// the nine operator types.
type SkTypeEnforcer struct {
	ID int
}

// Rules emits the exactly-one constraint over the node-type variables.
func (e SkTypeEnforcer) Rules(_ *trace.Context) []boollogic.Expr {
	id := e.ID
	vars := []boollogic.Variable{
		boollogic.And(id),
		boollogic.Or(id),
		boollogic.Next(id),
		boollogic.WNext(id),
		boollogic.Until(id),
		boollogic.Release(id),
		boollogic.Eventually(id),
		boollogic.Always(id),
		boollogic.Literal(id),
	}
	return []boollogic.Expr{exactlyOne(vars)}
}

// StructureEnforcer constrains the child-link variables allowed for a
// node of the given type: atoms have no children, unary operators have
// no right child, binary operators are unconstrained here (child
// existence is the SubtreeEnforcer's job).
type StructureEnforcer struct {
	Type boollogic.Variable
}

// Rules emits `type(i) -> conj(forbidden child links)`. For ids with no
// greater sibling the range is empty and no rule is produced.
func (e StructureEnforcer) Rules(ctx *trace.Context) []boollogic.Expr {
	ty := e.Type
	i := ty.SkeletonID()

	var forbidden []boollogic.Expr
	for j := i + 1; j < ctx.MaxSkeletons(); j++ {
		left := boollogic.LeftChild(i, j)
		right := boollogic.RightChild(i, j)
		switch {
		case ty.IsAtom():
			forbidden = append(forbidden,
				boollogic.NotVar(left).And(boollogic.NotVar(right)))
		case ty.IsUnary():
			forbidden = append(forbidden, boollogic.NotVar(right))
		}
	}
	if len(forbidden) == 0 {
		return nil
	}
	rule := boollogic.VarExpr(ty).Implies(boollogic.ChainedAnd(forbidden))
	return []boollogic.Expr{rule}
}
