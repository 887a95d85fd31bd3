package boollogic

import (
	"fmt"

	"github.com/xDarkicex/ltlearn/core"
)

// Tag discriminates the role of a propositional Variable.
type Tag uint8

const (
	// TagAnd..TagLiteral are skeleton node-type variables: "node i has
	// this operator as its type".
	TagAnd Tag = iota
	TagOr
	TagNext
	TagWNext
	TagUntil
	TagRelease
	TagEventually
	TagAlways
	TagLiteral
	// TagRun is the semantic variable Run(e, t, s): the subformula rooted
	// at skeleton node s is active on example e at time t.
	TagRun
	// TagLeftChild / TagRightChild are the structural child-link variables.
	TagLeftChild
	TagRightChild
	// TagWord binds a literal node to a vocabulary word and a polarity.
	TagWord
	// TagExactly is the constant true/false literal pinned by the driver.
	TagExactly
	// TagPhantom is an auxiliary variable minted during CNF splitting.
	TagPhantom
)

// Variable is a tagged propositional variable. The zero fields of unused
// slots keep the value comparable so it can serve as a map key when the
// SAT adapter interns variables.
//
// Field use per tag:
//
//	node types:  A = skeleton id
//	Run:         A = example id, B = time, C = skeleton id
//	LeftChild:   A = parent id, B = child id
//	RightChild:  A = parent id, B = child id
//	Word:        A = skeleton id, B = word id, C = 1 for positive polarity
//	Exactly:     A = 1 for the constant true literal
//	Phantom:     A = fresh counter id
type Variable struct {
	Tag Tag
	A   int
	B   int
	C   int
}

// And returns the node-type variable "node id is a conjunction".
func And(id int) Variable { return Variable{Tag: TagAnd, A: id} }

// Or returns the node-type variable "node id is a disjunction".
func Or(id int) Variable { return Variable{Tag: TagOr, A: id} }

// Next returns the node-type variable "node id is a strong next".
func Next(id int) Variable { return Variable{Tag: TagNext, A: id} }

// WNext returns the node-type variable "node id is a weak next".
func WNext(id int) Variable { return Variable{Tag: TagWNext, A: id} }

// Until returns the node-type variable "node id is an until".
func Until(id int) Variable { return Variable{Tag: TagUntil, A: id} }

// Release returns the node-type variable "node id is a release".
func Release(id int) Variable { return Variable{Tag: TagRelease, A: id} }

// Eventually returns the node-type variable "node id is an eventually".
func Eventually(id int) Variable { return Variable{Tag: TagEventually, A: id} }

// Always returns the node-type variable "node id is an always".
func Always(id int) Variable { return Variable{Tag: TagAlways, A: id} }

// Literal returns the node-type variable "node id is an atomic literal".
func Literal(id int) Variable { return Variable{Tag: TagLiteral, A: id} }

// Run returns the semantic variable Run(e, t, s).
func Run(example, time, skeleton int) Variable {
	return Variable{Tag: TagRun, A: example, B: time, C: skeleton}
}

// LeftChild returns the structural variable "node parent has left child child".
func LeftChild(parent, child int) Variable {
	return Variable{Tag: TagLeftChild, A: parent, B: child}
}

// RightChild returns the structural variable "node parent has right child child".
func RightChild(parent, child int) Variable {
	return Variable{Tag: TagRightChild, A: parent, B: child}
}

// Word returns the variable binding literal node id to a vocabulary word.
func Word(id, word int, positive bool) Variable {
	c := 0
	if positive {
		c = 1
	}
	return Variable{Tag: TagWord, A: id, B: word, C: c}
}

// Exactly returns the pinned constant literal.
func Exactly(value bool) Variable {
	a := 0
	if value {
		a = 1
	}
	return Variable{Tag: TagExactly, A: a}
}

// Phantom returns the auxiliary variable with the given fresh id.
func Phantom(id int) Variable { return Variable{Tag: TagPhantom, A: id} }

// IsAtom reports whether v is the atomic node-type variable.
func (v Variable) IsAtom() bool {
	return v.Tag == TagLiteral
}

// IsUnary reports whether v is a unary node-type variable.
func (v Variable) IsUnary() bool {
	switch v.Tag {
	case TagNext, TagWNext, TagEventually, TagAlways:
		return true
	}
	return false
}

// IsBinary reports whether v is a binary node-type variable.
func (v Variable) IsBinary() bool {
	switch v.Tag {
	case TagAnd, TagOr, TagUntil, TagRelease:
		return true
	}
	return false
}

// IsSkeletonType reports whether v is one of the nine node-type variables.
func (v Variable) IsSkeletonType() bool {
	return v.IsAtom() || v.IsUnary() || v.IsBinary()
}

// SkeletonID returns the skeleton node id of a node-type variable.
// It panics on every other tag: callers are expected to have checked
// IsSkeletonType first, and a violation is a programmer error.
func (v Variable) SkeletonID() int {
	if !v.IsSkeletonType() {
		panic(core.Errorf("boollogic", "Variable.SkeletonID",
			"variable %s is not a skeleton node type", v))
	}
	return v.A
}

// WordPositive reports the polarity of a Word variable.
func (v Variable) WordPositive() bool {
	return v.Tag == TagWord && v.C == 1
}

// ExactlyValue reports the pinned constant of an Exactly variable.
func (v Variable) ExactlyValue() bool {
	return v.Tag == TagExactly && v.A == 1
}

// String renders the variable in the compact debug form used by the
// expression dump output.
func (v Variable) String() string {
	switch v.Tag {
	case TagAnd:
		return fmt.Sprintf("AND(%d)", v.A)
	case TagOr:
		return fmt.Sprintf("OR(%d)", v.A)
	case TagNext:
		return fmt.Sprintf("NEXT(%d)", v.A)
	case TagWNext:
		return fmt.Sprintf("WNEXT(%d)", v.A)
	case TagUntil:
		return fmt.Sprintf("UNTIL(%d)", v.A)
	case TagRelease:
		return fmt.Sprintf("RELEASE(%d)", v.A)
	case TagEventually:
		return fmt.Sprintf("EVENTUALLY(%d)", v.A)
	case TagAlways:
		return fmt.Sprintf("ALWAYS(%d)", v.A)
	case TagLiteral:
		return fmt.Sprintf("LIT(%d)", v.A)
	case TagRun:
		return fmt.Sprintf("RUN(%d, %d, %d)", v.A, v.B, v.C)
	case TagLeftChild:
		return fmt.Sprintf("A(%d, %d)", v.A, v.B)
	case TagRightChild:
		return fmt.Sprintf("B(%d, %d)", v.A, v.B)
	case TagWord:
		sign := "-"
		if v.C == 1 {
			sign = "+"
		}
		return fmt.Sprintf("L(%d, %s%d)", v.A, sign, v.B)
	case TagExactly:
		if v.A == 1 {
			return "true"
		}
		return "false"
	case TagPhantom:
		return fmt.Sprintf("PH(%d)", v.A)
	}
	return fmt.Sprintf("VAR(?%d)", v.Tag)
}

// SkeletonTypes lists the nine node-type constructors in the order the
// rule generators iterate them.
var SkeletonTypes = []func(int) Variable{
	Literal,
	And,
	Or,
	Until,
	Release,
	Eventually,
	Next,
	WNext,
	Always,
}
