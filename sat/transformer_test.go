package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ltlearn/boollogic"
)

var (
	va = boollogic.VarExpr(boollogic.And(1))
	vb = boollogic.VarExpr(boollogic.Or(2))
	vc = boollogic.VarExpr(boollogic.Next(3))
	vd = boollogic.VarExpr(boollogic.Always(4))
)

func TestElimImplEq(t *testing.T) {
	t.Run("converse implication", func(t *testing.T) {
		got := elimImplEq(va.ImpliedBy(vb.Or(vc)))
		want := va.Or(boollogic.Not(vb.Or(vc)))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("implication", func(t *testing.T) {
		got := elimImplEq(va.Implies(vb.Or(vc)))
		want := boollogic.Not(va).Or(vb.Or(vc))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("biconditional", func(t *testing.T) {
		got := elimImplEq(va.Iff(vb))
		want := boollogic.Not(va).Or(vb).And(va.Or(boollogic.Not(vb)))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("nested", func(t *testing.T) {
		got := elimImplEq(va.ImpliedBy(vb.Or(vc.Implies(vd))))
		want := va.Or(boollogic.Not(vb.Or(boollogic.Not(vc).Or(vd))))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})
}

func TestElimImplEqLeavesNoImplications(t *testing.T) {
	expr := va.Iff(vb.Implies(vc.ImpliedBy(vd)))
	var check func(e boollogic.Expr)
	check = func(e boollogic.Expr) {
		switch e.Kind {
		case boollogic.KindBinary:
			assert.Contains(t,
				[]boollogic.BinaryOp{boollogic.OpConjunction, boollogic.OpDisjunction},
				e.Op)
			check(*e.LHS)
			check(*e.RHS)
		case boollogic.KindNot:
			check(*e.LHS)
		case boollogic.KindChained:
			for _, item := range e.Items {
				check(item)
			}
		}
	}
	check(elimImplEq(expr))
}

func TestElimNot(t *testing.T) {
	t.Run("double negation", func(t *testing.T) {
		got := elimNot(boollogic.Not(boollogic.Not(va)))
		assert.True(t, boollogic.Equal(va, got), "got %s", got)
	})

	t.Run("de morgan conjunction", func(t *testing.T) {
		got := elimNot(boollogic.Not(va.And(vb)))
		want := boollogic.Not(va).Or(boollogic.Not(vb))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("de morgan disjunction", func(t *testing.T) {
		got := elimNot(boollogic.Not(va.Or(vb)))
		want := boollogic.Not(va).And(boollogic.Not(vb))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("nested", func(t *testing.T) {
		// !(A & (!B & !(C | D))) becomes !A | B | C | D.
		got := elimNot(boollogic.Not(va.And(boollogic.Not(vb).And(boollogic.Not(vc.Or(vd))))))
		want := boollogic.Not(va).Or(vb.Or(vc.Or(vd)))
		assert.True(t, boollogic.Equal(want, got), "got %s", got)
	})

	t.Run("negation sits on variables only", func(t *testing.T) {
		got := elimNot(boollogic.Not(va.And(boollogic.Not(vb.Or(boollogic.Not(vc))))))
		var check func(e boollogic.Expr)
		check = func(e boollogic.Expr) {
			switch e.Kind {
			case boollogic.KindNot:
				assert.Equal(t, boollogic.KindVar, e.LHS.Kind)
			case boollogic.KindBinary:
				check(*e.LHS)
				check(*e.RHS)
			case boollogic.KindChained:
				for _, item := range e.Items {
					check(item)
				}
			}
		}
		check(got)
	})
}

func clauses(e boollogic.Expr) [][]boollogic.Expr {
	out := make([][]boollogic.Expr, 0, len(e.Items))
	for _, clause := range e.Items {
		out = append(out, clause.Items)
	}
	return out
}

func TestConvertCNFDistribution(t *testing.T) {
	// (A | (B & C)) distributes to [[A, B], [A, C]].
	cnf := ConvertCNF(va.Or(vb.And(vc)), NewPhantomCounter())
	require.Equal(t, boollogic.KindChained, cnf.Kind)
	cs := clauses(cnf)
	require.Len(t, cs, 2)
	assert.True(t, boollogic.Equal(va, cs[0][0]))
	assert.True(t, boollogic.Equal(vb, cs[0][1]))
	assert.True(t, boollogic.Equal(va, cs[1][0]))
	assert.True(t, boollogic.Equal(vc, cs[1][1]))
}

func TestConvertCNFShape(t *testing.T) {
	exprs := []boollogic.Expr{
		va,
		boollogic.Not(va),
		va.Iff(vb.And(vc)),
		boollogic.ChainedOr([]boollogic.Expr{va, vb.And(vc), vc.Or(vd)}),
		va.ImpliedBy(vb.And(vc).And(vd)),
	}
	for _, expr := range exprs {
		cnf := ConvertCNF(expr, NewPhantomCounter())
		require.Equal(t, boollogic.KindChained, cnf.Kind)
		require.Equal(t, boollogic.OpConjunction, cnf.Op)
		for _, clause := range cnf.Items {
			require.Equal(t, boollogic.KindChained, clause.Kind)
			require.Equal(t, boollogic.OpDisjunction, clause.Op)
			for _, lit := range clause.Items {
				switch lit.Kind {
				case boollogic.KindVar:
				case boollogic.KindNot:
					require.Equal(t, boollogic.KindVar, lit.LHS.Kind)
				default:
					t.Fatalf("clause leaf is not a literal: %s", lit)
				}
			}
		}
	}
}

func TestConvertCNFTseitinSplit(t *testing.T) {
	// Distributing (A & B) | (C & D) would cross-multiply; the split
	// introduces exactly one phantom and four linking clauses.
	cnf := ConvertCNF(va.And(vb).Or(vc.And(vd)), NewPhantomCounter())
	cs := clauses(cnf)
	require.Len(t, cs, 4)

	phantoms := make(map[boollogic.Variable]bool)
	for _, clause := range cs {
		require.Len(t, clause, 2)
		for _, lit := range clause {
			v := lit.Var
			if lit.Kind == boollogic.KindNot {
				v = lit.LHS.Var
			}
			if v.Tag == boollogic.TagPhantom {
				phantoms[v] = true
			}
		}
	}
	assert.Len(t, phantoms, 1, "expected exactly one fresh phantom")

	ph := boollogic.Phantom(0)
	want := [][]boollogic.Expr{
		{boollogic.NotVar(ph), va},
		{boollogic.NotVar(ph), vb},
		{boollogic.VarExpr(ph), vc},
		{boollogic.VarExpr(ph), vd},
	}
	for i, clause := range want {
		for j, lit := range clause {
			assert.True(t, boollogic.Equal(lit, cs[i][j]),
				"clause %d literal %d: got %s", i, j, cs[i][j])
		}
	}
}

func TestConvertCNFIdempotent(t *testing.T) {
	exprs := []boollogic.Expr{
		va.Or(vb.And(vc)),
		va.And(vb).Or(vc.And(vd)),
		va.Iff(vb),
		boollogic.ChainedAnd([]boollogic.Expr{va, vb.Or(vc)}),
	}
	for _, expr := range exprs {
		once := ConvertCNF(expr, NewPhantomCounter())
		twice := ConvertCNF(once, NewPhantomCounter())
		assert.True(t, boollogic.Equal(once, twice),
			"not idempotent:\n once: %s\n twice: %s", once, twice)
	}
}

// TestConvertCNFEquisatisfiable checks that for every assignment over
// the original variables there is an extension over the phantoms making
// the CNF agree with the input.
func TestConvertCNFEquisatisfiable(t *testing.T) {
	orig := []boollogic.Variable{
		boollogic.And(1), boollogic.Or(2), boollogic.Next(3), boollogic.Always(4),
	}
	exprs := []boollogic.Expr{
		va.And(vb).Or(vc.And(vd)),
		va.Iff(vb.And(vc)),
		boollogic.ChainedOr([]boollogic.Expr{va.And(vb), vc.And(vd), boollogic.Not(va)}),
	}

	for _, expr := range exprs {
		cnf := ConvertCNF(expr, NewPhantomCounter())

		var phantoms []boollogic.Variable
		seen := map[boollogic.Variable]bool{}
		var walk func(e boollogic.Expr)
		walk = func(e boollogic.Expr) {
			switch e.Kind {
			case boollogic.KindVar:
				if e.Var.Tag == boollogic.TagPhantom && !seen[e.Var] {
					seen[e.Var] = true
					phantoms = append(phantoms, e.Var)
				}
			case boollogic.KindNot:
				walk(*e.LHS)
			case boollogic.KindBinary:
				walk(*e.LHS)
				walk(*e.RHS)
			case boollogic.KindChained:
				for _, item := range e.Items {
					walk(item)
				}
			}
		}
		walk(cnf)

		for mask := 0; mask < 1<<len(orig); mask++ {
			a := boollogic.Assignment{}
			for i, v := range orig {
				if mask&(1<<i) != 0 {
					a[v] = true
				}
			}
			want := boollogic.Evaluate(expr, a)

			extendable := false
			for ext := 0; ext < 1<<len(phantoms); ext++ {
				for i, p := range phantoms {
					a[p] = ext&(1<<i) != 0
				}
				if boollogic.Evaluate(cnf, a) {
					extendable = true
					break
				}
			}
			assert.Equal(t, want, extendable,
				"expr %s, assignment %#x", expr, mask)
		}
	}
}

func TestPhantomCounter(t *testing.T) {
	c := NewPhantomCounter()
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
}
