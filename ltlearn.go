// Package ltlearn learns an LTLf formula of bounded syntactic size that
// accepts a set of positive example traces and rejects a set of
// negative ones. The search is a reduction to propositional
// satisfiability: for each size bound n a constraint system over the
// candidate skeleton is generated, normalized to CNF and handed to the
// SAT solver; a model is decoded back into a syntax tree.
package ltlearn

import (
	"errors"

	"github.com/crillab/gophersat/solver"
	"github.com/rs/zerolog"

	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/enforce"
	"github.com/xDarkicex/ltlearn/ltl"
	"github.com/xDarkicex/ltlearn/sat"
	"github.com/xDarkicex/ltlearn/trace"
)

// ErrNoFormula is returned when no formula within the requested size
// bound separates the examples.
var ErrNoFormula = errors.New("no formula within the size bound separates the examples")

// Logger receives per-iteration progress events. It is a no-op by
// default; the CLI swaps in a console logger when asked to be verbose.
var Logger = zerolog.Nop()

// Result is a successful synthesis outcome.
type Result struct {
	// Formula is the decoded LTLf syntax tree.
	Formula *ltl.Node
	// Size is the skeleton bound at which the solver found a model.
	Size int
}

// Rules generates the full constraint system for the context at its
// current size bound, before CNF conversion.
func Rules(ctx *trace.Context) []boollogic.Expr {
	return enforce.AllRules(ctx)
}

// BuildConverter generates the constraint system, normalizes every rule
// to CNF and emits the clauses into a fresh converter. The constant
// Exactly literals are not pinned here so the raw formula can be dumped
// as DIMACS; Learn pins them before solving.
func BuildConverter(ctx *trace.Context) (*sat.Converter, error) {
	conv := sat.NewConverter()
	fresh := sat.NewPhantomCounter()
	for _, rule := range enforce.AllRules(ctx) {
		if err := conv.AddClause(sat.ConvertCNF(rule, fresh)); err != nil {
			return nil, err
		}
	}
	return conv, nil
}

// SolveBound builds and solves the constraint system for one size
// bound, with the Exactly constants pinned. The returned assignment is
// nil when the bound is unsatisfiable. The solver instance is released
// when this function returns; only the converter and the assignment
// survive.
func SolveBound(ctx *trace.Context, n int) (*sat.Converter, boollogic.Assignment, error) {
	ctx.SetSizeBound(n)

	conv, err := BuildConverter(ctx)
	if err != nil {
		return nil, nil, err
	}
	conv.AddUnit(boollogic.Exactly(true), true)
	conv.AddUnit(boollogic.Exactly(false), false)

	Logger.Debug().
		Int("size", n).
		Int("vars", conv.VarCount()).
		Int("clauses", len(conv.Clauses())).
		Msg("solving")

	pb, err := conv.Problem()
	if err != nil {
		return nil, nil, err
	}
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return conv, nil, nil
	}
	return conv, conv.PositiveAssignment(s.Model()), nil
}

// Learn iterates the size bound n = 2, 3, ... up to maxSize, solving
// each bound independently, and returns the first decoded formula. Each
// iteration owns its solver instance; the instance is dropped before
// the next bound is tried.
func Learn(ctx *trace.Context, maxSize int) (*Result, error) {
	for n := 2; n <= maxSize; n++ {
		_, pos, err := SolveBound(ctx, n)
		if err != nil {
			return nil, err
		}
		if pos == nil {
			Logger.Debug().Int("size", n).Msg("unsat, growing the skeleton")
			continue
		}

		formula, err := ltl.NewModel(ctx, pos).Decode()
		if err != nil {
			return nil, err
		}
		Logger.Debug().Int("size", n).Stringer("formula", formula).Msg("sat")
		return &Result{Formula: formula, Size: n}, nil
	}
	return nil, ErrNoFormula
}
