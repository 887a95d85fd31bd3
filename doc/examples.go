// Package main demonstrates usage examples for the ltlearn module.
// Each function walks one layer of the pipeline, from raw traces to a
// decoded LTLf formula.
package main

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/ltlearn"
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/sat"
	"github.com/xDarkicex/ltlearn/trace"
)

const sampleInput = `{
    "vocab": ["p", "q"],
    "traces_pos": [
        [["p"], ["p", "q"], ["q"]],
        [["p"], ["q"]]
    ],
    "traces_neg": [
        [["q"], ["q"]]
    ]
}`

// ExampleParseInput demonstrates building a Context from the JSON trace
// format.
func ExampleParseInput() {
	fmt.Println("=== Parsing traces ===")

	ctx, err := trace.ParseInput(strings.NewReader(sampleInput))
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}

	fmt.Printf("words: %v\n", ctx.Words())
	for _, ex := range ctx.Examples() {
		fmt.Printf("example: %s\n", ex)
	}
	fmt.Println()
}

// ExampleExpressions demonstrates the propositional expression algebra
// and its reference evaluator.
func ExampleExpressions() {
	fmt.Println("=== Propositional expressions ===")

	a := boollogic.VarExpr(boollogic.And(0))
	b := boollogic.VarExpr(boollogic.Literal(1))
	rule := a.Implies(b.Or(boollogic.NotVar(boollogic.Or(0))))

	fmt.Printf("rule: %s\n", rule)

	assignment := boollogic.NewAssignment(boollogic.And(0), boollogic.Literal(1))
	fmt.Printf("holds under {AND(0), LIT(1)}: %v\n", boollogic.Evaluate(rule, assignment))
	fmt.Println()
}

// ExampleConvertCNF demonstrates CNF normalization with the Tseitin
// split on a distribution that would otherwise cross-multiply.
func ExampleConvertCNF() {
	fmt.Println("=== CNF conversion ===")

	lhs := boollogic.VarExpr(boollogic.And(0)).And(boollogic.VarExpr(boollogic.Or(1)))
	rhs := boollogic.VarExpr(boollogic.Next(2)).And(boollogic.VarExpr(boollogic.Always(3)))

	cnf := sat.ConvertCNF(lhs.Or(rhs), sat.NewPhantomCounter())
	fmt.Printf("cnf: %s\n", cnf)
	fmt.Println()
}

// ExampleLearn demonstrates the full pipeline: parse traces, iterate
// the size bound, decode the formula.
func ExampleLearn() {
	fmt.Println("=== Learning a formula ===")

	ctx, err := trace.ParseInput(strings.NewReader(sampleInput))
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}

	result, err := ltlearn.Learn(ctx, 4)
	if err != nil {
		fmt.Printf("synthesis failed: %v\n", err)
		return
	}

	fmt.Printf("formula: %s\n", result.Formula)
	fmt.Printf("tuple:   %s\n", result.Formula.Tuple())
	fmt.Printf("size:    %d\n", result.Size)
	fmt.Println()
}

func main() {
	ExampleParseInput()
	ExampleExpressions()
	ExampleConvertCNF()
	ExampleLearn()
}
