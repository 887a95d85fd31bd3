package trace

import (
	"encoding/json"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/xDarkicex/ltlearn/core"
)

// Input is the direct representation of the observed-trace JSON:
//
//	{
//	    "vocab": ["p", "q", "r"],
//	    "traces_pos": [
//	        [["p"], ["p"], ["q"]],
//	        [["q", "r"]]
//	    ],
//	    "traces_neg": [
//	        [["p"], ["r"]]
//	    ]
//	}
//
// Each trace is an ordered list of time steps; each time step is a set
// of letter names drawn from vocab. Duplicate letters inside a step are
// ignored. Empty traces are rejected.
type Input struct {
	Vocab     []string     `json:"vocab"`
	TracesPos [][][]string `json:"traces_pos"`
	TracesNeg [][][]string `json:"traces_neg"`
}

// ParseInput decodes the JSON input and builds a Context from it.
// Vocabulary words are interned in file order so word ids are stable
// across runs.
func ParseInput(r io.Reader) (*Context, error) {
	var in Input
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, core.Errorf("trace", "ParseInput", "cannot parse JSON: %v", err)
	}
	return in.Context()
}

// Context validates the input and converts it into a Context.
func (in *Input) Context() (*Context, error) {
	ctx := NewContext()
	for _, word := range in.Vocab {
		ctx.WordID(word)
	}
	if err := in.addTraces(ctx, in.TracesPos, true); err != nil {
		return nil, err
	}
	if err := in.addTraces(ctx, in.TracesNeg, false); err != nil {
		return nil, err
	}
	return ctx, nil
}

func (in *Input) addTraces(ctx *Context, traces [][][]string, positive bool) error {
	for _, tr := range traces {
		if len(tr) == 0 {
			return core.NewSynthError("trace", "ParseInput", "empty trace is not permitted")
		}
		sequence := make([]*bitset.BitSet, 0, len(tr))
		for _, step := range tr {
			letters := bitset.New(uint(ctx.WordCount()))
			for _, name := range step {
				id, ok := ctx.LookupWord(name)
				if !ok {
					return core.Errorf("trace", "ParseInput",
						"letter %q is not in the vocabulary", name)
				}
				letters.Set(uint(id))
			}
			sequence = append(sequence, letters)
		}
		ctx.AddExample(sequence, positive)
	}
	return nil
}
