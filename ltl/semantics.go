package ltl

import (
	"github.com/xDarkicex/ltlearn/trace"
)

// Sat evaluates the formula on an example trace from time t under the
// standard LTLf finite-trace semantics. Unknown words are treated as
// never holding. This is a reference evaluator: the synthesis pipeline
// never calls it, but tests use it to check that decoded formulas
// classify the examples correctly.
func Sat(n *Node, ctx *trace.Context, ex *trace.Example, t int) bool {
	last := ex.Size() - 1
	switch n.Op {
	case OpAnd:
		return Sat(n.Left, ctx, ex, t) && Sat(n.Right, ctx, ex, t)
	case OpOr:
		return Sat(n.Left, ctx, ex, t) || Sat(n.Right, ctx, ex, t)
	case OpNext:
		return t < last && Sat(n.Left, ctx, ex, t+1)
	case OpWNext:
		return t == last || Sat(n.Left, ctx, ex, t+1)
	case OpUntil:
		if Sat(n.Right, ctx, ex, t) {
			return true
		}
		return t < last && Sat(n.Left, ctx, ex, t) && Sat(n, ctx, ex, t+1)
	case OpRelease:
		if !Sat(n.Right, ctx, ex, t) {
			return false
		}
		return Sat(n.Left, ctx, ex, t) || t == last || Sat(n, ctx, ex, t+1)
	case OpEventually:
		return Sat(n.Left, ctx, ex, t) || (t < last && Sat(n, ctx, ex, t+1))
	case OpAlways:
		return Sat(n.Left, ctx, ex, t) && (t == last || Sat(n, ctx, ex, t+1))
	case OpLiteral:
		w, ok := ctx.LookupWord(n.Word)
		if !ok {
			return !n.Positive
		}
		return ex.ContainsAt(t, w) == n.Positive
	}
	return false
}

// Accepts reports whether the formula accepts the whole example trace.
func Accepts(n *Node, ctx *trace.Context, ex *trace.Example) bool {
	return Sat(n, ctx, ex, 0)
}
