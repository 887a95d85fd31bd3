package trace

import (
	"github.com/bits-and-blooms/bitset"
)

// Context holds the word vocabulary, the observed examples and the
// current skeleton size bound. It is mutated only while the input is
// constructed and when the driver raises the size bound.
type Context struct {
	maxSkeletons int
	vocab        map[string]int
	names        []string
	examples     []*Example
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{vocab: make(map[string]int)}
}

// WithBound creates an empty context with the given size bound. Mostly
// useful in tests of the rule generators.
func WithBound(maxSkeletons int) *Context {
	c := NewContext()
	c.maxSkeletons = maxSkeletons
	return c
}

// MaxSkeletons returns the size bound N; valid skeleton ids are 0 <= i < N.
func (c *Context) MaxSkeletons() int {
	return c.maxSkeletons
}

// SetSizeBound sets the skeleton size bound.
func (c *Context) SetSizeBound(n int) {
	c.maxSkeletons = n
}

// WordCount returns the vocabulary size; valid word ids are 0 <= w < WordCount.
func (c *Context) WordCount() int {
	return len(c.names)
}

// ExampleCount returns the number of examples.
func (c *Context) ExampleCount() int {
	return len(c.examples)
}

// WordID interns a word by display name, creating it on first use, and
// returns its dense id.
func (c *Context) WordID(name string) int {
	if id, ok := c.vocab[name]; ok {
		return id
	}
	id := len(c.names)
	c.vocab[name] = id
	c.names = append(c.names, name)
	return id
}

// LookupWord returns the id of an already interned word.
func (c *Context) LookupWord(name string) (int, bool) {
	id, ok := c.vocab[name]
	return id, ok
}

// WordName resolves a word id back to its display name.
func (c *Context) WordName(id int) (string, bool) {
	if id < 0 || id >= len(c.names) {
		return "", false
	}
	return c.names[id], true
}

// Words returns the display names in id order.
func (c *Context) Words() []string {
	return c.names
}

// AddExample appends an example built from per-step word-id sets. The
// example id is its insertion index.
func (c *Context) AddExample(sequence []*bitset.BitSet, positive bool) *Example {
	e := newExample(len(c.examples), sequence, positive)
	c.examples = append(c.examples, e)
	return e
}

// Examples returns the examples in insertion order.
func (c *Context) Examples() []*Example {
	return c.examples
}
