package sat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/gophersat/solver"

	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/core"
)

// Converter interns propositional variables as solver literals and
// accumulates CNF clauses in the solver's integer form. Variables are
// allocated lazily on first reference, so the integer ids follow
// emission order.
type Converter struct {
	vars    map[boollogic.Variable]int
	order   []boollogic.Variable
	clauses [][]int
}

// NewConverter creates an empty converter.
func NewConverter() *Converter {
	return &Converter{vars: make(map[boollogic.Variable]int)}
}

// LitFor returns the 1-based solver literal interned for the variable,
// allocating it on first use.
func (c *Converter) LitFor(v boollogic.Variable) int {
	if id, ok := c.vars[v]; ok {
		return id
	}
	id := len(c.order) + 1
	c.vars[v] = id
	c.order = append(c.order, v)
	return id
}

// VarCount returns the number of interned variables.
func (c *Converter) VarCount() int {
	return len(c.order)
}

// Variables returns the interned variables in allocation order; the
// variable at index i is solver literal i+1.
func (c *Converter) Variables() []boollogic.Variable {
	return c.order
}

// Clauses returns the accumulated clauses in solver form.
func (c *Converter) Clauses() [][]int {
	return c.clauses
}

// AddUnit emits a unit clause pinning the variable to the given value.
// The driver uses this to fix the Exactly(true)/Exactly(false) constants
// before solving.
func (c *Converter) AddUnit(v boollogic.Variable, value bool) {
	lit := c.LitFor(v)
	if !value {
		lit = -lit
	}
	c.clauses = append(c.clauses, []int{lit})
}

// AddClause emits every clause of a CNF expression. The argument must be
// a chained conjunction of chained disjunctions whose leaves are
// variables or negated variables; any other shape is a programming error
// in the conversion pipeline. An empty disjunction makes the whole
// system unsatisfiable and is reported as an error here, at the
// emission boundary.
func (c *Converter) AddClause(e boollogic.Expr) error {
	if e.Kind != boollogic.KindChained || e.Op != boollogic.OpConjunction {
		return core.Errorf("sat", "Converter.AddClause",
			"expression is not a conjunction of clauses: %s", e)
	}
	for _, clause := range e.Items {
		if clause.Kind != boollogic.KindChained || clause.Op != boollogic.OpDisjunction {
			return core.Errorf("sat", "Converter.AddClause",
				"clause is not a disjunction: %s", clause)
		}
		if len(clause.Items) == 0 {
			return core.NewSynthError("sat", "Converter.AddClause",
				"empty clause: constraint system is unsatisfiable")
		}
		lits := make([]int, 0, len(clause.Items))
		for _, item := range clause.Items {
			switch item.Kind {
			case boollogic.KindVar:
				lits = append(lits, c.LitFor(item.Var))
			case boollogic.KindNot:
				if item.LHS.Kind != boollogic.KindVar {
					return core.Errorf("sat", "Converter.AddClause",
						"negation wraps a non-variable: %s", item)
				}
				lits = append(lits, -c.LitFor(item.LHS.Var))
			default:
				return core.Errorf("sat", "Converter.AddClause",
					"clause leaf is not a literal: %s", item)
			}
		}
		c.clauses = append(c.clauses, lits)
	}
	return nil
}

// Problem builds the gophersat problem from the accumulated clauses.
// The solver instance owns its allocations; a fresh problem is built per
// size bound and released with the solver.
func (c *Converter) Problem() (*solver.Problem, error) {
	pb := solver.ParseSlice(c.clauses)
	return pb, nil
}

// PositiveAssignment converts a solver model (indexed by variable id
// minus one) back to the set of interned variables assigned true.
func (c *Converter) PositiveAssignment(model []bool) boollogic.Assignment {
	a := make(boollogic.Assignment, len(c.order))
	for i, v := range c.order {
		if i < len(model) && model[i] {
			a[v] = true
		}
	}
	return a
}

// WriteDIMACS writes the accumulated clauses in the standard DIMACS CNF
// format. Variable ids map to interned variables in allocation order;
// the mapping is emitted as comment lines before the clauses.
func (c *Converter) WriteDIMACS(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", len(c.order), len(c.clauses))
	for i, v := range c.order {
		fmt.Fprintf(&b, "c %d = %s\n", i+1, v)
	}
	for _, clause := range c.clauses {
		for i, lit := range clause {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(lit))
		}
		b.WriteString(" 0\n")
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return core.Errorf("sat", "Converter.WriteDIMACS", "write failed: %v", err)
	}
	return nil
}
