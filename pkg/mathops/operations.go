// Package mathops implements the pure mathematical operations behind the
// math-mcp tools: basic arithmetic, factorial, Fibonacci, statistics,
// quadratic solving, angle conversion, and trigonometric functions.
//
// Every function is stateless and safe for concurrent use. Failures are
// reported as *DomainError or *DivisionByZeroError so callers can map them
// to stable external error codes without string matching.
package mathops

import (
	"fmt"
	"math"
)

// Constants accepted as named operands in place of a number.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Constant returns the value of a named constant ("pi" or "e").
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// ResolveOperand converts a tool argument into a float64. It accepts JSON
// numbers (float64 after unmarshaling) and the constant names "pi" and "e".
func ResolveOperand(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case string:
		if c, ok := Constant(x); ok {
			return c, nil
		}
		return 0, domainErrf("operand", "invalid operand %q (expected a number, \"pi\", or \"e\")", x)
	default:
		return 0, domainErrf("operand", "invalid operand of type %T", v)
	}
}

// Binary applies a binary arithmetic operation to a and b.
//
// Supported operations: "+", "-", "*", "/", "**", and "log" where the result
// is the logarithm of b in base a. Division by zero returns
// *DivisionByZeroError; a power or logarithm outside the real domain returns
// *DomainError.
func Binary(a, b float64, op string) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, &DivisionByZeroError{Op: "/"}
		}
		return a / b, nil
	case "**":
		return Power(a, b)
	case "log":
		if a <= 0 || a == 1 {
			return 0, domainErrf("log", "base must be positive and not equal to 1 (got %v)", a)
		}
		if b <= 0 {
			return 0, domainErrf("log", "cannot calculate logarithm of a non-positive number (got %v)", b)
		}
		return math.Log(b) / math.Log(a), nil
	default:
		return 0, domainErrf("binary_operation", "invalid operation %q (expected +, -, *, /, ** or log)", op)
	}
}

// Unary applies a unary operation to a. The only supported operation is
// "sqrt"; a negative argument returns *DomainError.
func Unary(a float64, op string) (float64, error) {
	switch op {
	case "sqrt":
		return Sqrt(a)
	default:
		return 0, domainErrf("unary_operation", "invalid operation %q (expected sqrt)", op)
	}
}

// Sqrt returns the square root of a, rejecting negative arguments instead of
// returning NaN.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, domainErrf("sqrt", "cannot calculate square root of a negative number (got %v)", a)
	}
	return math.Sqrt(a), nil
}

// Power returns a raised to b using float64 semantics. Results outside the
// real domain (negative base with fractional exponent) are rejected rather
// than returned as NaN, and a zero base with negative exponent is reported
// as a division by zero, matching 1/0**n.
func Power(a, b float64) (float64, error) {
	if a == 0 && b < 0 {
		return 0, &DivisionByZeroError{Op: "**"}
	}
	r := math.Pow(a, b)
	if math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b) {
		return 0, domainErrf("**", "%v ** %v has no real result", a, b)
	}
	return r, nil
}

// FormatNumber renders v for display: integral values print without a
// fractional part ("120"), everything else with Go's shortest round-trip
// formatting ("3.141592653589793").
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
