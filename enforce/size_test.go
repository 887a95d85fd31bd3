package enforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/trace"
)

func TestSizeBoundNoReuse(t *testing.T) {
	ctx := trace.WithBound(4)
	rules := SizeBoundEnforcer{Child: 2}.Rules(ctx)
	require.NotEmpty(t, rules)

	assert.False(t, holds(t, rules,
		boollogic.LeftChild(1, 2), boollogic.LeftChild(3, 2)),
		"two parents sharing a left child must fail")
	assert.False(t, holds(t, rules,
		boollogic.LeftChild(1, 2), boollogic.RightChild(3, 2)),
		"left and right links to the same child must fail")
	assert.False(t, holds(t, rules,
		boollogic.RightChild(1, 2), boollogic.RightChild(3, 2)),
		"two parents sharing a right child must fail")

	assert.True(t, holds(t, rules,
		boollogic.LeftChild(1, 3), boollogic.LeftChild(2, 3)),
		"links to a different child are out of scope for this enforcer")
	assert.True(t, holds(t, rules,
		boollogic.LeftChild(1, 2), boollogic.RightChild(1, 3)))
	assert.True(t, holds(t, rules, boollogic.RightChild(1, 2)))
}

func TestSizeUnitsAtBoundThree(t *testing.T) {
	ctx := trace.WithBound(3)
	rules := SizeEnforcer{}.Rules(ctx)

	// Binary operators are forbidden at ids 1 and 2, unary at id 2.
	wantForbidden := []boollogic.Variable{
		boollogic.And(1), boollogic.Or(1), boollogic.Until(1), boollogic.Release(1),
		boollogic.And(2), boollogic.Or(2), boollogic.Until(2), boollogic.Release(2),
		boollogic.Eventually(2), boollogic.Next(2), boollogic.WNext(2), boollogic.Always(2),
	}
	require.Len(t, rules, len(wantForbidden))

	got := make(map[boollogic.Variable]bool)
	for _, rule := range rules {
		require.Equal(t, boollogic.KindNot, rule.Kind, "size rules are unit negations")
		require.Equal(t, boollogic.KindVar, rule.LHS.Kind)
		got[rule.LHS.Var] = true
	}
	for _, v := range wantForbidden {
		assert.True(t, got[v], "missing unit !%s", v)
	}

	assert.False(t, got[boollogic.And(0)], "the root may be binary at n = 3")
	assert.False(t, got[boollogic.Next(1)], "id 1 may be unary at n = 3")
}

func TestSizeUnitsClampAtTinyBounds(t *testing.T) {
	ctx := trace.WithBound(1)
	rules := SizeEnforcer{}.Rules(ctx)
	// Only id 0 exists: binary and unary are both forbidden there.
	assert.Len(t, rules, 8)
	for _, rule := range rules {
		require.Equal(t, boollogic.KindNot, rule.Kind)
		assert.Equal(t, 0, rule.LHS.Var.SkeletonID())
	}
}
