package enforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/sat"
	"github.com/xDarkicex/ltlearn/trace"
)

func TestSubtreeUnaryLeftChild(t *testing.T) {
	ctx := trace.WithBound(4)
	rules := SubtreeEnforcer{Type: boollogic.Eventually(2)}.Rules(ctx)
	require.Len(t, rules, 1)

	assert.False(t, holds(t, rules, boollogic.Eventually(2)),
		"a unary node without a child fails")
	assert.False(t, holds(t, rules, boollogic.Eventually(2), boollogic.LeftChild(2, 1)),
		"a child below the parent id does not count")
	assert.True(t, holds(t, rules, boollogic.Eventually(2), boollogic.LeftChild(2, 3)))
}

func TestSubtreeBinaryRanges(t *testing.T) {
	ctx := trace.WithBound(4)
	rules := SubtreeEnforcer{Type: boollogic.Until(0)}.Rules(ctx)
	require.Len(t, rules, 2)

	// Left child may sit at ids 1..2, right child at 2..3.
	ok := holds(t, rules,
		boollogic.Until(0), boollogic.LeftChild(0, 1), boollogic.RightChild(0, 2))
	assert.True(t, ok)

	assert.False(t, holds(t, rules,
		boollogic.Until(0), boollogic.LeftChild(0, 3), boollogic.RightChild(0, 2)),
		"the left child cannot occupy the last slot")
	assert.False(t, holds(t, rules,
		boollogic.Until(0), boollogic.LeftChild(0, 1)),
		"a binary node needs a right child")
	assert.False(t, holds(t, rules,
		boollogic.Until(0), boollogic.LeftChild(0, 1), boollogic.LeftChild(0, 2),
		boollogic.RightChild(0, 3)),
		"two left children violate exactly-one")
}

func TestSubtreeLiteralWordBinding(t *testing.T) {
	ctx := trace.WithBound(2)
	ctx.WordID("p")
	ctx.WordID("q")

	rules := SubtreeEnforcer{Type: boollogic.Literal(1)}.Rules(ctx)
	require.Len(t, rules, 1)

	assert.False(t, holds(t, rules, boollogic.Literal(1)),
		"a literal needs a word binding")
	assert.True(t, holds(t, rules, boollogic.Literal(1), boollogic.Word(1, 0, true)))
	assert.True(t, holds(t, rules, boollogic.Literal(1), boollogic.Word(1, 1, false)))
	assert.False(t, holds(t, rules,
		boollogic.Literal(1), boollogic.Word(1, 0, true), boollogic.Word(1, 1, true)),
		"two word bindings violate exactly-one")
	assert.False(t, holds(t, rules,
		boollogic.Literal(1), boollogic.Word(1, 0, true), boollogic.Word(1, 0, false)),
		"both polarities of one word violate exactly-one")
}

func TestExactlyOneSingletonIsUnitClause(t *testing.T) {
	// A singleton exactly-one must reduce to a unit clause after CNF
	// conversion.
	expr := exactlyOne([]boollogic.Variable{boollogic.LeftChild(0, 1)})
	cnf := sat.ConvertCNF(expr, sat.NewPhantomCounter())

	require.Equal(t, boollogic.KindChained, cnf.Kind)
	require.Len(t, cnf.Items, 1)
	clause := cnf.Items[0]
	require.Len(t, clause.Items, 1)
	assert.True(t, boollogic.Equal(
		boollogic.VarExpr(boollogic.LeftChild(0, 1)), clause.Items[0]))
}
