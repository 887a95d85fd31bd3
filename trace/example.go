package trace

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Example is one observed finite trace together with its classification.
// The sequence holds, for each discrete time step, the set of word ids
// that are true at that step. Examples are immutable after insertion.
type Example struct {
	id       int
	sequence []*bitset.BitSet
	positive bool
}

func newExample(id int, sequence []*bitset.BitSet, positive bool) *Example {
	return &Example{id: id, sequence: sequence, positive: positive}
}

// ID returns the dense example id assigned at insertion order.
func (e *Example) ID() int {
	return e.id
}

// Size returns the trace length; time indices run 0 <= t < Size.
func (e *Example) Size() int {
	return len(e.sequence)
}

// IsPositive reports whether the learned formula must accept this trace.
func (e *Example) IsPositive() bool {
	return e.positive
}

// At returns the letter set holding at time t.
func (e *Example) At(t int) *bitset.BitSet {
	return e.sequence[t]
}

// Contains reports whether word w holds at any time step.
func (e *Example) Contains(w int) bool {
	for _, step := range e.sequence {
		if step.Test(uint(w)) {
			return true
		}
	}
	return false
}

// ContainsAt reports whether word w holds at time t.
func (e *Example) ContainsAt(t, w int) bool {
	return e.sequence[t].Test(uint(w))
}

// String renders the example as `+Example(0, {v0}, {v0 v1})` style for
// debug output.
func (e *Example) String() string {
	var b strings.Builder
	if e.positive {
		b.WriteString("+")
	} else {
		b.WriteString("-")
	}
	fmt.Fprintf(&b, "Example(%d", e.id)
	for _, step := range e.sequence {
		b.WriteString(", {")
		first := true
		for w, ok := step.NextSet(0); ok; w, ok = step.NextSet(w + 1) {
			if !first {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "v%d", w)
			first = false
		}
		b.WriteString("}")
	}
	b.WriteString(")")
	return b.String()
}
