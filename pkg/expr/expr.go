// Package expr evaluates arithmetic expression strings against a closed,
// allow-listed grammar: the operators + - * / **, parentheses, the functions
// sqrt and log, the constants pi and e, and decimal numeric literals.
//
// Input flows through three stages — Tokenize, Parse, and a tree-walking
// Eval — so nothing resembling dynamic code execution ever happens: the
// explicit grammar is both the safety boundary and the correctness contract.
//
// Failures are reported as three distinct error kinds, never conflated:
//
//   - *SyntaxError: malformed input, rejected before any evaluation
//   - *mathops.DivisionByZeroError: a computed divisor was exactly zero
//   - *mathops.DomainError: a function argument outside its valid domain
//
// Evaluation holds no state between calls; concurrent use needs no locking.
package expr

import (
	"math"
	"strings"

	"github.com/mathmcp/mathmcp/pkg/mathops"
)

// Evaluate tokenizes, parses, and evaluates an expression string.
//
//	Evaluate("2 + 3 * 4")           // 14, nil
//	Evaluate("2 ** 3 ** 2")         // 512, nil (right-associative)
//	Evaluate("sqrt(2 + 2) * (3+4)") // 14, nil
//	Evaluate("5 / 0")               // 0, *mathops.DivisionByZeroError
//	Evaluate("sqrt(-1)")            // 0, *mathops.DomainError
//	Evaluate("sqrt 16")             // 0, *SyntaxError
func Evaluate(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, syntaxErr(0, "empty expression")
	}
	toks, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	n, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	v, err := n.Eval()
	if err != nil {
		return 0, err
	}
	// Overflow to inf must not leak out as a silent result.
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &mathops.DomainError{Op: "calculate", Msg: "expression result is not finite"}
	}
	return v, nil
}
