package ltl

import (
	"fmt"
)

// Tuple renders the formula as a nested Python tuple, the exchange
// format consumed by downstream tooling:
//
//	('&', 'p', ('U', 'q', ('X', ('!', 'r'))))
func (n *Node) Tuple() string {
	switch n.Op {
	case OpAnd:
		return fmt.Sprintf("('&', %s, %s)", n.Left.Tuple(), n.Right.Tuple())
	case OpOr:
		return fmt.Sprintf("('|', %s, %s)", n.Left.Tuple(), n.Right.Tuple())
	case OpNext:
		return fmt.Sprintf("('X', %s)", n.Left.Tuple())
	case OpWNext:
		return fmt.Sprintf("('N', %s)", n.Left.Tuple())
	case OpUntil:
		return fmt.Sprintf("('U', %s, %s)", n.Left.Tuple(), n.Right.Tuple())
	case OpRelease:
		return fmt.Sprintf("('R', %s, %s)", n.Left.Tuple(), n.Right.Tuple())
	case OpEventually:
		return fmt.Sprintf("('F', %s)", n.Left.Tuple())
	case OpAlways:
		return fmt.Sprintf("('G', %s)", n.Left.Tuple())
	case OpLiteral:
		if n.Positive {
			return fmt.Sprintf("'%s'", n.Word)
		}
		return fmt.Sprintf("('!', '%s')", n.Word)
	}
	return "?"
}
