// Package enforce generates the propositional constraints that shape a
// candidate LTLf skeleton and tie its semantics to the observed traces.
//
// Each Enforcer maps a Context to a list of expressions; the full
// constraint system is the conjunction of every enforcer's output.
// Ordering within and across enforcers does not affect correctness, so
// the aggregate generator fans out per skeleton id and concatenates the
// results in a fixed order.
package enforce

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

// Enforcer is a rule generator: it emits the propositional constraints
// it is responsible for over the given context.
type Enforcer interface {
	Rules(ctx *trace.Context) []boollogic.Expr
}

// exactlyOne encodes "exactly one of vars is true" as a disjunction of
// one-positive-rest-negated conjunctions. On a singleton it degenerates
// to a unit clause after CNF conversion. The quadratic at-most-one part
// is acceptable at the small arities used here.
func exactlyOne(vars []boollogic.Variable) boollogic.Expr {
	routes := make([]boollogic.Expr, 0, len(vars))
	for _, u := range vars {
		conj := make([]boollogic.Expr, 0, len(vars))
		conj = append(conj, boollogic.VarExpr(u))
		for _, v := range vars {
			if v != u {
				conj = append(conj, boollogic.NotVar(v))
			}
		}
		routes = append(routes, boollogic.ChainedAnd(conj))
	}
	return boollogic.ChainedOr(routes)
}

// AllRules runs the whole enforcer family over the context: node-type
// exclusivity, operator structure, no-reuse, subtree existence, the
// trailing-slot size units and the per-example semantics. Generation is
// parallelized per skeleton id; the returned order is deterministic.
func AllRules(ctx *trace.Context) []boollogic.Expr {
	n := ctx.MaxSkeletons()

	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	var rules []boollogic.Expr

	perID := iter.Map(ids, func(i *int) []boollogic.Expr {
		var out []boollogic.Expr
		out = append(out, SkTypeEnforcer{ID: *i}.Rules(ctx)...)
		for _, ty := range boollogic.SkeletonTypes {
			out = append(out, StructureEnforcer{Type: ty(*i)}.Rules(ctx)...)
		}
		out = append(out, SizeBoundEnforcer{Child: *i}.Rules(ctx)...)
		for _, ty := range boollogic.SkeletonTypes {
			out = append(out, SubtreeEnforcer{Type: ty(*i)}.Rules(ctx)...)
		}
		return out
	})
	for _, chunk := range perID {
		rules = append(rules, chunk...)
	}

	rules = append(rules, SizeEnforcer{}.Rules(ctx)...)

	perExample := iter.Map(ctx.Examples(), func(e **trace.Example) []boollogic.Expr {
		ex := *e
		// The root must be active at time 0 on every example. For
		// negative examples the run variables encode rejection, so the
		// seed is asserted for them as well.
		out := []boollogic.Expr{boollogic.VarExpr(boollogic.Run(ex.ID(), 0, 0))}
		for i := 0; i < n; i++ {
			for _, ty := range boollogic.SkeletonTypes {
				out = append(out, ExampleEnforcer{Type: ty(i), Example: ex}.Rules(ctx)...)
			}
		}
		return out
	})
	for _, chunk := range perExample {
		rules = append(rules, chunk...)
	}

	return rules
}
