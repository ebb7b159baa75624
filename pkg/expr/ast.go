package expr

import (
	"strconv"
	"strings"

	"github.com/mathmcp/mathmcp/pkg/mathops"
)

// Node is a node in the abstract syntax tree of an expression. Trees are
// built fresh per parse, owned by their root, and discarded after
// evaluation; nodes are never shared between expressions.
type Node interface {
	// Eval computes the node's value by evaluating children first and then
	// applying the node's operator or function (a post-order walk). It
	// returns *mathops.DivisionByZeroError or *mathops.DomainError on
	// evaluation failures.
	Eval() (float64, error)

	// String renders the subtree in canonical infix form with explicit
	// grouping, for debugging and error reporting.
	String() string
}

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

func (n *Literal) Eval() (float64, error) { return n.Value, nil }

func (n *Literal) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BinaryOp applies one of + - * / ** log to two operands. Both operands are
// always evaluated; there is no short-circuiting.
type BinaryOp struct {
	Op          string
	Left, Right Node
}

func (n *BinaryOp) Eval() (float64, error) {
	l, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	return mathops.Binary(l, r, n.Op)
}

func (n *BinaryOp) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

// UnaryMinus negates its operand. It binds looser than exponentiation, so
// -2 ** 2 parses as -(2 ** 2).
type UnaryMinus struct {
	Operand Node
}

func (n *UnaryMinus) Eval() (float64, error) {
	v, err := n.Operand.Eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *UnaryMinus) String() string {
	return "(-" + n.Operand.String() + ")"
}

// Call applies an allow-listed function to its arguments: sqrt takes one
// argument, log takes two (base, then value).
type Call struct {
	Name string
	Args []Node
}

func (n *Call) Eval() (float64, error) {
	vals := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		v, err := arg.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch n.Name {
	case "sqrt":
		return mathops.Sqrt(vals[0])
	case "log":
		return mathops.Binary(vals[0], vals[1], "log")
	default:
		// The parser only builds calls for allow-listed names.
		return 0, syntaxErr(0, "unknown function "+strconv.Quote(n.Name))
	}
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}
