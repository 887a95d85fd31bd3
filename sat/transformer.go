// Package sat normalizes propositional expressions to conjunctive
// normal form and adapts the result to the SAT solver: variable
// interning, clause emission, DIMACS output and model extraction.
package sat

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/core"
)

// PhantomCounter mints fresh ids for the auxiliary variables introduced
// by the Tseitin split. It is threaded explicitly through the conversion
// so there is no cross-call global state.
type PhantomCounter struct {
	next int
}

// NewPhantomCounter returns a counter starting at zero.
func NewPhantomCounter() *PhantomCounter {
	return &PhantomCounter{}
}

// Next returns the next fresh phantom id.
func (c *PhantomCounter) Next() int {
	id := c.next
	c.next++
	return id
}

// ConvertCNF transforms an arbitrary expression into a chained
// conjunction of chained disjunctions of literals. The result is
// equisatisfiable with the input over the original variables: large
// disjunctions are split on fresh phantom variables instead of being
// distributed into a cross product.
func ConvertCNF(e boollogic.Expr, fresh *PhantomCounter) boollogic.Expr {
	clauses := convCNF(elimNot(elimImplEq(e)), fresh)
	out := make([]boollogic.Expr, 0, len(clauses))
	for _, clause := range clauses {
		out = append(out, boollogic.ChainedOr(flattenClause(clause)))
	}
	return boollogic.ChainedAnd(out)
}

// elimImplEq rewrites implications and biconditionals into and/or/not:
// `p <- q` becomes `p | !q`, `p -> q` becomes `!p | q`, and `p <-> q`
// becomes `(!p | q) & (p | !q)`.
func elimImplEq(e boollogic.Expr) boollogic.Expr {
	switch e.Kind {
	case boollogic.KindVar:
		return e
	case boollogic.KindNot:
		return boollogic.Not(elimImplEq(*e.LHS))
	case boollogic.KindBinary:
		lhs := elimImplEq(*e.LHS)
		rhs := elimImplEq(*e.RHS)
		switch e.Op {
		case boollogic.OpConverseImplication:
			return lhs.Or(boollogic.Not(rhs))
		case boollogic.OpImplication:
			return boollogic.Not(lhs).Or(rhs)
		case boollogic.OpBiconditional:
			return boollogic.Not(lhs).Or(rhs).And(lhs.Or(boollogic.Not(rhs)))
		default:
			return boollogic.Expr{Kind: boollogic.KindBinary, Op: e.Op, LHS: &lhs, RHS: &rhs}
		}
	case boollogic.KindChained:
		items := make([]boollogic.Expr, len(e.Items))
		for i, item := range e.Items {
			items[i] = elimImplEq(item)
		}
		return boollogic.Expr{Kind: boollogic.KindChained, Op: e.Op, Items: items}
	}
	return e
}

// elimNot pushes negations down to the variables: double negations
// cancel and De Morgan distributes over binary and chained and/or. The
// input must be free of implications.
func elimNot(e boollogic.Expr) boollogic.Expr {
	switch e.Kind {
	case boollogic.KindVar:
		return e
	case boollogic.KindNot:
		inner := *e.LHS
		switch inner.Kind {
		case boollogic.KindNot:
			return elimNot(*inner.LHS)
		case boollogic.KindVar:
			return e
		case boollogic.KindBinary:
			switch inner.Op {
			case boollogic.OpConjunction:
				return elimNot(boollogic.Not(*inner.LHS)).Or(elimNot(boollogic.Not(*inner.RHS)))
			case boollogic.OpDisjunction:
				return elimNot(boollogic.Not(*inner.LHS)).And(elimNot(boollogic.Not(*inner.RHS)))
			}
			panic(core.NewSynthError("sat", "elimNot",
				"negated implication survived elimImplEq"))
		case boollogic.KindChained:
			items := make([]boollogic.Expr, len(inner.Items))
			for i, item := range inner.Items {
				items[i] = elimNot(boollogic.Not(item))
			}
			op := boollogic.OpDisjunction
			if inner.Op == boollogic.OpDisjunction {
				op = boollogic.OpConjunction
			}
			return boollogic.Expr{Kind: boollogic.KindChained, Op: op, Items: items}
		}
	case boollogic.KindBinary:
		lhs := elimNot(*e.LHS)
		rhs := elimNot(*e.RHS)
		return boollogic.Expr{Kind: boollogic.KindBinary, Op: e.Op, LHS: &lhs, RHS: &rhs}
	case boollogic.KindChained:
		items := make([]boollogic.Expr, len(e.Items))
		for i, item := range e.Items {
			items[i] = elimNot(item)
		}
		return boollogic.Expr{Kind: boollogic.KindChained, Op: e.Op, Items: items}
	}
	return e
}

// convCNF distributes disjunction over conjunction, returning the list
// of disjunction clauses whose conjunction is the converted formula.
//
// When both sides of a disjunction carry more than one clause the naive
// cross product explodes, so a fresh phantom variable a splits the
// disjunction into `(a -> L) & (!a -> R)`. The split preserves
// equisatisfiability at linear blowup. A chained disjunction distributes
// as a left fold of the binary case; an empty chained disjunction is the
// constant false and surfaces as a single empty clause.
func convCNF(e boollogic.Expr, fresh *PhantomCounter) []boollogic.Expr {
	switch e.Kind {
	case boollogic.KindVar, boollogic.KindNot:
		return []boollogic.Expr{e}
	case boollogic.KindBinary:
		switch e.Op {
		case boollogic.OpConjunction:
			left := convCNF(*e.LHS, fresh)
			right := convCNF(*e.RHS, fresh)
			return append(left, right...)
		case boollogic.OpDisjunction:
			return convDisjunction(*e.LHS, *e.RHS, fresh)
		}
		panic(core.NewSynthError("sat", "convCNF",
			"implication survived elimImplEq"))
	case boollogic.KindChained:
		if e.Op == boollogic.OpConjunction {
			var out []boollogic.Expr
			for _, item := range e.Items {
				out = append(out, convCNF(item, fresh)...)
			}
			return out
		}
		// Chained disjunction: left fold of the binary case.
		if len(e.Items) == 0 {
			return []boollogic.Expr{boollogic.ChainedOr(nil)}
		}
		acc := convCNF(e.Items[0], fresh)
		for _, item := range e.Items[1:] {
			acc = convDisjunction(boollogic.ChainedAnd(acc), item, fresh)
		}
		return acc
	}
	return nil
}

func convDisjunction(lhs, rhs boollogic.Expr, fresh *PhantomCounter) []boollogic.Expr {
	left := convCNF(lhs, fresh)
	right := convCNF(rhs, fresh)

	if len(left) > 1 && len(right) > 1 {
		aux := boollogic.Phantom(fresh.Next())
		var out []boollogic.Expr
		out = append(out, convCNF(elimNot(elimImplEq(
			boollogic.VarExpr(aux).Implies(boollogic.ChainedAnd(left)))), fresh)...)
		out = append(out, convCNF(elimNot(elimImplEq(
			boollogic.NotVar(aux).Implies(boollogic.ChainedAnd(right)))), fresh)...)
		return out
	}

	out := make([]boollogic.Expr, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, l.Or(r))
		}
	}
	return out
}

// flattenClause flattens one disjunction clause into its literal list.
// Anything other than nested disjunctions over literals is a programmer
// error at this stage.
func flattenClause(e boollogic.Expr) []boollogic.Expr {
	switch e.Kind {
	case boollogic.KindVar, boollogic.KindNot:
		return []boollogic.Expr{e}
	case boollogic.KindBinary:
		if e.Op == boollogic.OpDisjunction {
			return append(flattenClause(*e.LHS), flattenClause(*e.RHS)...)
		}
	case boollogic.KindChained:
		if e.Op == boollogic.OpDisjunction {
			var out []boollogic.Expr
			for _, item := range e.Items {
				out = append(out, flattenClause(item)...)
			}
			return out
		}
		if len(e.Items) <= 1 {
			return e.Items
		}
	}
	panic(core.Errorf("sat", "flattenClause", "clause is not a disjunction: %s", e))
}
