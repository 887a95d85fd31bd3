package enforce

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

// dual maps a node-type variable to the operator used when encoding the
// node's semantics on the given example.
//
// For positive examples the operator is unchanged. For negative examples
// the semantics clauses are built around the dual operator: "Run(e,t,s)
// on a negative example" means "the subformula at s is rejected here",
// and rejecting an operator unfolds exactly like accepting its dual
// (rejecting X is accepting N of the rejection, rejecting F is accepting
// G of the rejection, and so on). Literals are self-dual; their polarity
// check flips instead.
func dual(v boollogic.Variable, ex *trace.Example) boollogic.Variable {
	if ex.IsPositive() {
		return v
	}
	id := v.SkeletonID()
	switch v.Tag {
	case boollogic.TagAnd:
		return boollogic.Or(id)
	case boollogic.TagOr:
		return boollogic.And(id)
	case boollogic.TagNext:
		return boollogic.WNext(id)
	case boollogic.TagWNext:
		return boollogic.Next(id)
	case boollogic.TagUntil:
		return boollogic.Release(id)
	case boollogic.TagRelease:
		return boollogic.Until(id)
	case boollogic.TagEventually:
		return boollogic.Always(id)
	case boollogic.TagAlways:
		return boollogic.Eventually(id)
	}
	// TagLiteral
	return v
}

// ExampleEnforcer emits the semantics clauses tying the Run variables of
// one example to the candidate structure, for skeleton nodes of the
// given type.
type ExampleEnforcer struct {
	Type    boollogic.Variable
	Example *trace.Example
}

// Rules iterates the child-witness ranges appropriate for the node
// type's arity and emits one semantics rule set per (witness, time).
func (e ExampleEnforcer) Rules(ctx *trace.Context) []boollogic.Expr {
	ty := e.Type
	ex := e.Example
	s := ty.SkeletonID()
	n := ctx.MaxSkeletons()

	var rules []boollogic.Expr
	switch {
	case ty.IsAtom():
		for t := 0; t < ex.Size(); t++ {
			rules = append(rules, literalRules(ctx, ex, s, t)...)
		}
	case ty.IsUnary():
		for s1 := s + 1; s1 < n; s1++ {
			for t := 0; t < ex.Size(); t++ {
				rules = append(rules, semanticsRules(ex, ty, s1, -1, t)...)
			}
		}
	case ty.IsBinary():
		for s1 := s + 1; s1 < n; s1++ {
			for s2 := s + 2; s2 < n; s2++ {
				for t := 0; t < ex.Size(); t++ {
					rules = append(rules, semanticsRules(ex, ty, s1, s2, t)...)
				}
			}
		}
	}
	return rules
}

// semanticsRules emits the LTLf unfolding constraints for a unary or
// binary node of type ty at time t, with child witnesses s1 (left) and
// s2 (right, binary only). Every rule has the shape
// `consequent <- (Run & dual-type & child witnesses)`.
func semanticsRules(ex *trace.Example, ty boollogic.Variable, s1, s2, t int) []boollogic.Expr {
	e := ex.ID()
	s := ty.SkeletonID()
	tmax := ex.Size() - 1

	run := func(t, s int) boollogic.Expr {
		return boollogic.VarExpr(boollogic.Run(e, t, s))
	}
	self := boollogic.VarExpr(dual(ty, ex))
	left := boollogic.VarExpr(boollogic.LeftChild(s, s1))
	right := boollogic.VarExpr(boollogic.RightChild(s, s2))

	switch ty.Tag {
	case boollogic.TagAnd:
		// Both conjuncts must run; the unfolding stops at the last step.
		if t == tmax {
			return nil
		}
		return []boollogic.Expr{
			run(t, s1).ImpliedBy(run(t, s).And(self).And(left)),
			run(t, s2).ImpliedBy(run(t, s).And(self).And(right)),
		}
	case boollogic.TagOr:
		return []boollogic.Expr{
			run(t, s1).Or(run(t, s2)).ImpliedBy(run(t, s).And(self).And(left).And(right)),
		}
	case boollogic.TagNext:
		cons := boollogic.VarExpr(boollogic.Exactly(false))
		if t < tmax {
			cons = run(t+1, s1)
		}
		return []boollogic.Expr{
			cons.ImpliedBy(run(t, s).And(self).And(left)),
		}
	case boollogic.TagWNext:
		cons := boollogic.VarExpr(boollogic.Exactly(true))
		if t < tmax {
			cons = run(t+1, s1)
		}
		return []boollogic.Expr{
			cons.ImpliedBy(run(t, s).And(self).And(left)),
		}
	case boollogic.TagUntil:
		if t < tmax {
			return []boollogic.Expr{
				run(t, s2).Or(run(t+1, s).And(run(t, s1))).
					ImpliedBy(run(t, s).And(self).And(left).And(right)),
			}
		}
		return []boollogic.Expr{
			run(t, s2).ImpliedBy(run(t, s).And(self).And(right)),
		}
	case boollogic.TagRelease:
		rules := []boollogic.Expr{
			run(t, s2).ImpliedBy(run(t, s).And(self).And(right)),
		}
		if t < tmax {
			rules = append(rules,
				run(t, s1).Or(run(t+1, s)).
					ImpliedBy(run(t, s).And(self).And(left).And(right)))
		}
		return rules
	case boollogic.TagEventually:
		cons := run(t, s1)
		if t < tmax {
			cons = run(t, s1).Or(run(t + 1, s))
		}
		return []boollogic.Expr{
			cons.ImpliedBy(run(t, s).And(self).And(left)),
		}
	case boollogic.TagAlways:
		rules := []boollogic.Expr{
			run(t, s1).ImpliedBy(run(t, s).And(self).And(left)),
		}
		if t < tmax {
			rules = append(rules,
				run(t+1, s).ImpliedBy(run(t, s).And(self).And(left)))
		}
		return rules
	}
	return nil
}

// literalRules forbids, per word, the polarity that would misclassify
// the example at time t: a positive example must not run a literal whose
// polarity contradicts the letter set, and on a negative example the
// check is inverted because Run encodes rejection.
func literalRules(ctx *trace.Context, ex *trace.Example, s, t int) []boollogic.Expr {
	e := ex.ID()
	falsum := boollogic.VarExpr(boollogic.Exactly(false))

	rules := make([]boollogic.Expr, 0, ctx.WordCount())
	for w := 0; w < ctx.WordCount(); w++ {
		forbidden := boollogic.Word(s, w, false)
		if ex.IsPositive() != ex.ContainsAt(t, w) {
			forbidden = boollogic.Word(s, w, true)
		}
		antecedent := boollogic.VarExpr(boollogic.Run(e, t, s)).
			And(boollogic.VarExpr(boollogic.Literal(s))).
			And(boollogic.VarExpr(forbidden))
		rules = append(rules, falsum.ImpliedBy(antecedent))
	}
	return rules
}
