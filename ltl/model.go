package ltl

import (
	"github.com/xDarkicex/ltlearn/boollogic"
	"github.com/xDarkicex/ltlearn/core"
	"github.com/xDarkicex/ltlearn/trace"
)

// Model wraps the set of variables a satisfying assignment made true,
// ready to be decoded into a syntax tree.
type Model struct {
	ctx *trace.Context
	pos boollogic.Assignment
}

// NewModel creates a decoder over the positive assignment.
func NewModel(ctx *trace.Context, pos boollogic.Assignment) *Model {
	return &Model{ctx: ctx, pos: pos}
}

// Decode reconstructs the LTLf tree rooted at skeleton node 0.
func (m *Model) Decode() (*Node, error) {
	return m.decode(0)
}

// decode rebuilds the subtree rooted at skeleton id. A missing witness
// (node type, child link or word binding) or a duplicated node type
// means the model violates the structural constraints and is rejected.
func (m *Model) decode(id int) (*Node, error) {
	var skType boollogic.Variable
	found := false
	for v := range m.pos {
		if v.IsSkeletonType() && v.SkeletonID() == id {
			if found {
				return nil, core.Errorf("ltl", "Model.Decode",
					"node %d has more than one operator type in the model", id)
			}
			skType = v
			found = true
		}
	}
	if !found {
		return nil, core.Errorf("ltl", "Model.Decode",
			"node %d has no operator type in the model", id)
	}

	left, leftOK := m.childOf(id, boollogic.TagLeftChild)
	right, rightOK := m.childOf(id, boollogic.TagRightChild)

	decodeChild := func(child int, ok bool) (*Node, error) {
		if !ok {
			return nil, core.Errorf("ltl", "Model.Decode",
				"node %d (%s) is missing a child link", id, skType)
		}
		if child <= id {
			return nil, core.Errorf("ltl", "Model.Decode",
				"child id %d of node %d does not increase", child, id)
		}
		return m.decode(child)
	}

	switch skType.Tag {
	case boollogic.TagAnd, boollogic.TagOr, boollogic.TagUntil, boollogic.TagRelease:
		lhs, err := decodeChild(left, leftOK)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeChild(right, rightOK)
		if err != nil {
			return nil, err
		}
		switch skType.Tag {
		case boollogic.TagAnd:
			return NewAnd(lhs, rhs), nil
		case boollogic.TagOr:
			return NewOr(lhs, rhs), nil
		case boollogic.TagUntil:
			return NewUntil(lhs, rhs), nil
		default:
			return NewRelease(lhs, rhs), nil
		}
	case boollogic.TagNext, boollogic.TagWNext, boollogic.TagEventually, boollogic.TagAlways:
		child, err := decodeChild(left, leftOK)
		if err != nil {
			return nil, err
		}
		switch skType.Tag {
		case boollogic.TagNext:
			return NewNext(child), nil
		case boollogic.TagWNext:
			return NewWNext(child), nil
		case boollogic.TagEventually:
			return NewEventually(child), nil
		default:
			return NewAlways(child), nil
		}
	default: // TagLiteral
		for v := range m.pos {
			if v.Tag == boollogic.TagWord && v.A == id {
				name, ok := m.ctx.WordName(v.B)
				if !ok {
					return nil, core.Errorf("ltl", "Model.Decode",
						"word id %d of node %d is not in the vocabulary", v.B, id)
				}
				return NewLiteral(v.WordPositive(), name), nil
			}
		}
		return nil, core.Errorf("ltl", "Model.Decode",
			"literal node %d has no word binding", id)
	}
}

// childOf finds the unique child link of the given tag for the node.
func (m *Model) childOf(id int, tag boollogic.Tag) (int, bool) {
	for v := range m.pos {
		if v.Tag == tag && v.A == id {
			return v.B, true
		}
	}
	return 0, false
}
