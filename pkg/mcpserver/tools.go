package mcpserver

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/expr"
	"github.com/mathmcp/mathmcp/pkg/mathops"
)

// registerTools adds all math tools to the MCP server.
func (s *Server) registerTools() {
	s.addCalculateTool()
	s.addBinaryOperationTool()
	s.addUnaryOperationTool()
	s.addFactorialTool()
	s.addFibonacciTool()
	s.addStatsTool()
	s.addQuadraticTool()
	s.addAngleConvertTool()
	s.addTrigTool()
}

// ═══════════════════════════════════════════════════════════════════════════
// calculate — Expression evaluation
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addCalculateTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "calculate",
			Title: "Evaluate Expression",
			Description: `Evaluate a mathematical expression with full operator precedence. The primary tool for any formula.

USE THIS TOOL WHEN:
• The user gives a formula: "2 + 3 * 4", "(1 + 0.05/12)**12", "sqrt(3**2 + 4**2)"
• A calculation combines several operations — never chain binary_operation calls for this
• The input mixes functions, constants, and parentheses

DO NOT USE THIS TOOL WHEN:
• You have exactly two plain numbers and one operation — 'binary_operation' is more direct
• You need statistics over a dataset — use 'stats'
• You need a factorial or Fibonacci number — those are not expression functions here

LANGUAGE:
• Operators: + - * / ** (power, right-associative: 2**3**2 = 512)
• Unary minus binds looser than **: -2**2 = -4, write ((-2)**2) for 4
• Functions: sqrt(x), log(base, value) — log(2, 8) = 3
• Constants: pi, e
• Whitespace is ignored; evaluation is deterministic

EXAMPLE INPUTS:
• {"expression": "2 + 3 * 4"}
• {"expression": "sqrt(2 + 2) * (3 + 4)"}
• {"expression": "log(2, 1024) + pi"}

Returns: the parsed form, the numeric result, and a display-ready formatted value.
Errors: syntax_error (with column), division_by_zero, domain_error.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"expression": map[string]any{
						"type":        "string",
						"description": "Expression to evaluate, e.g. \"sqrt(16) + 2**3\".",
					},
				},
				"required": []string{"expression"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Evaluate Expression",
			},
		},
		s.instrumented("calculate", s.handleCalculate),
	)
}

type calculateArgs struct {
	Expression string `json:"expression"`
}

type calculateResult struct {
	Expression string  `json:"expression"`
	Parsed     string  `json:"parsed"`
	Result     float64 `json:"result"`
	Formatted  string  `json:"formatted"`
}

func (s *Server) handleCalculate(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args calculateArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v. Expected {\"expression\": \"2 + 3 * 4\"}.", err)), nil
	}
	if args.Expression == "" {
		return errorResult(kindInvalidArg, "expression is required. Example: {\"expression\": \"2 + 3 * 4\"}"), nil
	}
	if len(args.Expression) > s.config.MaxExpressionLen {
		return errorResult(kindInvalidArg, fmt.Sprintf("expression exceeds the maximum length of %d bytes", s.config.MaxExpressionLen)), nil
	}

	toks, err := expr.Tokenize(args.Expression)
	if err != nil {
		return evalErrorResult(err), nil
	}
	node, err := expr.Parse(toks)
	if err != nil {
		return evalErrorResult(err), nil
	}
	value, err := node.Eval()
	if err != nil {
		return evalErrorResult(err), nil
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return evalErrorResult(&mathops.DomainError{Op: "calculate", Msg: "expression result is not finite"}), nil
	}

	return jsonResult(calculateResult{
		Expression: args.Expression,
		Parsed:     node.String(),
		Result:     value,
		Formatted:  mathops.FormatNumber(value),
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// binary_operation — Two-operand arithmetic
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addBinaryOperationTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "binary_operation",
			Title: "Binary Operation",
			Description: `Apply one arithmetic operation to two operands. The direct path when no expression parsing is needed.

USE THIS TOOL WHEN:
• Exactly two numbers and one operation: add, subtract, multiply, divide, power, log
• You want the logarithm of a value in a given base: operation "log" with a=base, b=value

DO NOT USE THIS TOOL WHEN:
• The calculation has more than one operation — use 'calculate'
• You need sqrt of a single number — use 'unary_operation'

Operands accept plain numbers or the constant names "pi" and "e".

EXAMPLE INPUTS:
• {"a": 6, "b": 7, "operation": "*"}
• {"a": 2, "b": 1024, "operation": "log"}   (log base 2 of 1024 = 10)
• {"a": "pi", "b": 2, "operation": "/"}

Returns: both operands, the operation, the numeric result, and a formatted value.
Errors: division_by_zero (b=0 on "/", 0**negative), domain_error (log outside the real domain).`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a": map[string]any{
						"type":        []string{"number", "string"},
						"description": "First operand: a number, \"pi\", or \"e\". For \"log\" this is the base.",
					},
					"b": map[string]any{
						"type":        []string{"number", "string"},
						"description": "Second operand: a number, \"pi\", or \"e\". For \"log\" this is the value.",
					},
					"operation": map[string]any{
						"type":        "string",
						"description": "Operation to apply.",
						"enum":        []string{"+", "-", "*", "/", "**", "log"},
					},
				},
				"required": []string{"a", "b", "operation"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Binary Operation",
			},
		},
		s.instrumented("binary_operation", s.handleBinaryOperation),
	)
}

type binaryOperationArgs struct {
	A         any    `json:"a"`
	B         any    `json:"b"`
	Operation string `json:"operation"`
}

type binaryOperationResult struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

type unaryOperationResult struct {
	A         float64 `json:"a"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

func (s *Server) handleBinaryOperation(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args binaryOperationArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.A == nil || args.B == nil || args.Operation == "" {
		return errorResult(kindInvalidArg, "a, b, and operation are required. Example: {\"a\": 6, \"b\": 7, \"operation\": \"*\"}"), nil
	}

	a, err := mathops.ResolveOperand(args.A)
	if err != nil {
		return evalErrorResult(err), nil
	}
	b, err := mathops.ResolveOperand(args.B)
	if err != nil {
		return evalErrorResult(err), nil
	}

	value, err := mathops.Binary(a, b, args.Operation)
	if err != nil {
		return evalErrorResult(err), nil
	}

	return jsonResult(binaryOperationResult{
		A:         a,
		B:         b,
		Operation: args.Operation,
		Result:    value,
		Formatted: mathops.FormatNumber(value),
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// unary_operation — Single-operand functions
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addUnaryOperationTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "unary_operation",
			Title: "Unary Operation",
			Description: `Apply a single-operand function to a number.

USE THIS TOOL WHEN:
• You need sqrt of one number and nothing else

DO NOT USE THIS TOOL WHEN:
• The operand is itself an expression — use 'calculate' with sqrt(...)
• You need a trigonometric function — use 'trig'

EXAMPLE INPUTS:
• {"a": 144, "operation": "sqrt"}
• {"a": "pi", "operation": "sqrt"}

Errors: domain_error for sqrt of a negative number.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a": map[string]any{
						"type":        []string{"number", "string"},
						"description": "Operand: a number, \"pi\", or \"e\".",
					},
					"operation": map[string]any{
						"type":        "string",
						"description": "Function to apply.",
						"enum":        []string{"sqrt"},
					},
				},
				"required": []string{"a", "operation"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Unary Operation",
			},
		},
		s.instrumented("unary_operation", s.handleUnaryOperation),
	)
}

type unaryOperationArgs struct {
	A         any    `json:"a"`
	Operation string `json:"operation"`
}

func (s *Server) handleUnaryOperation(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args unaryOperationArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.A == nil || args.Operation == "" {
		return errorResult(kindInvalidArg, "a and operation are required. Example: {\"a\": 144, \"operation\": \"sqrt\"}"), nil
	}

	a, err := mathops.ResolveOperand(args.A)
	if err != nil {
		return evalErrorResult(err), nil
	}
	value, err := mathops.Unary(a, args.Operation)
	if err != nil {
		return evalErrorResult(err), nil
	}

	return jsonResult(unaryOperationResult{
		A:         a,
		Operation: args.Operation,
		Result:    value,
		Formatted: mathops.FormatNumber(value),
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// factorial — n!
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addFactorialTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "factorial",
			Title: "Factorial",
			Description: fmt.Sprintf(`Compute n! for a non-negative integer n up to %d.

USE THIS TOOL WHEN:
• The user asks for a factorial, permutation/combination building block, or "n!"

DO NOT USE THIS TOOL WHEN:
• n is negative or not an integer — factorial is not defined there
• n > %d — the result overflows double precision; explain the limit instead

EXAMPLE INPUTS:
• {"n": 5}     → 120
• {"n": 0}     → 1

Errors: domain_error for negative, fractional, or out-of-range n.`, defaults.MaxFactorial, defaults.MaxFactorial),
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"n": map[string]any{
						"type":        "number",
						"description": fmt.Sprintf("Non-negative integer, at most %d.", defaults.MaxFactorial),
					},
				},
				"required": []string{"n"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Factorial",
			},
		},
		s.instrumented("factorial", s.handleFactorial),
	)
}

type sequenceArgs struct {
	N *float64 `json:"n"`
}

type sequenceResult struct {
	N         int     `json:"n"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// intArg validates that n was provided and is integral.
func intArg(n *float64, name string) (int, *mcp.CallToolResult) {
	if n == nil {
		return 0, errorResult(kindInvalidArg, fmt.Sprintf("%s is required. Example: {\"%s\": 5}", name, name))
	}
	if *n != math.Trunc(*n) {
		return 0, errorResult(kindDomain, fmt.Sprintf("%s must be an integer (got %g)", name, *n))
	}
	return int(*n), nil
}

func (s *Server) handleFactorial(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sequenceArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	n, errRes := intArg(args.N, "n")
	if errRes != nil {
		return errRes, nil
	}

	value, err := mathops.Factorial(n)
	if err != nil {
		return evalErrorResult(err), nil
	}
	return jsonResult(sequenceResult{N: n, Result: value, Formatted: mathops.FormatNumber(value)})
}

// ═══════════════════════════════════════════════════════════════════════════
// fibonacci — F(n)
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addFibonacciTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "fibonacci",
			Title: "Fibonacci Number",
			Description: fmt.Sprintf(`Compute the nth Fibonacci number (F(0)=0, F(1)=1) for n up to %d.

USE THIS TOOL WHEN:
• The user asks for a specific Fibonacci number by index

DO NOT USE THIS TOOL WHEN:
• n > %d — beyond that the value can no longer be represented exactly; explain the limit

EXAMPLE INPUTS:
• {"n": 10}    → 55
• {"n": 78}    → 8944394323791464 (largest exactly representable)

Errors: domain_error for negative, fractional, or out-of-range n.`, defaults.MaxFibonacci, defaults.MaxFibonacci),
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"n": map[string]any{
						"type":        "number",
						"description": fmt.Sprintf("Non-negative index into the Fibonacci sequence, at most %d.", defaults.MaxFibonacci),
					},
				},
				"required": []string{"n"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Fibonacci Number",
			},
		},
		s.instrumented("fibonacci", s.handleFibonacci),
	)
}

func (s *Server) handleFibonacci(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sequenceArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	n, errRes := intArg(args.N, "n")
	if errRes != nil {
		return errRes, nil
	}

	value, err := mathops.Fibonacci(n)
	if err != nil {
		return evalErrorResult(err), nil
	}
	return jsonResult(sequenceResult{N: n, Result: value, Formatted: mathops.FormatNumber(value)})
}

// ═══════════════════════════════════════════════════════════════════════════
// stats — Descriptive statistics
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addStatsTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "stats",
			Title: "Descriptive Statistics",
			Description: `Compute descriptive statistics over a numeric dataset in a single call.

USE THIS TOOL WHEN:
• The user asks for mean, median, mode, min, max, range, variance, or standard deviation
• Analyzing a list of measurements, scores, or samples

DO NOT USE THIS TOOL WHEN:
• The dataset is empty — there is nothing to summarize
• You need a single arithmetic result — use 'calculate'

NOTES:
• Variance and standard deviation are the sample (n-1) statistics; both are 0 for a single value
• Mode is omitted when no value is strictly most frequent (all-tied datasets)

EXAMPLE INPUTS:
• {"data": [2, 4, 4, 4, 5, 5, 7, 9]}
• {"data": [1.5, 2.5, 3.5]}

Returns: count, mean, median, mode (when unique), min, max, range, variance, std_dev.
Errors: domain_error for an empty dataset, invalid_argument above the configured size limit.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"data": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "number"},
						"description": "Numbers to summarize. Must be non-empty.",
					},
				},
				"required": []string{"data"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Descriptive Statistics",
			},
		},
		s.instrumented("stats", s.handleStats),
	)
}

type statsArgs struct {
	Data []float64 `json:"data"`
}

func (s *Server) handleStats(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args statsArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v. Expected {\"data\": [1, 2, 3]}.", err)), nil
	}
	if len(args.Data) > s.config.MaxStatsInput {
		return errorResult(kindInvalidArg, fmt.Sprintf("dataset exceeds the maximum size of %d values", s.config.MaxStatsInput)), nil
	}

	summary, err := mathops.Statistics(args.Data)
	if err != nil {
		return evalErrorResult(err), nil
	}
	return jsonResult(summary)
}

// ═══════════════════════════════════════════════════════════════════════════
// quadratic — ax² + bx + c = 0
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addQuadraticTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "quadratic",
			Title: "Solve Quadratic Equation",
			Description: `Solve ax² + bx + c = 0 for its two roots, real or complex.

USE THIS TOOL WHEN:
• The user gives a quadratic equation in any phrasing ("solve x² - 5x + 6 = 0")
• You need the discriminant or the nature of the roots

DO NOT USE THIS TOOL WHEN:
• a = 0 — the equation is linear, solve it directly as x = -c/b

A negative discriminant yields complex-conjugate roots; both are returned
with real and imaginary parts plus a display form like "2 + 3i".

EXAMPLE INPUTS:
• {"a": 1, "b": -5, "c": 6}     → roots 3 and 2
• {"a": 1, "b": 0, "c": 4}      → roots 2i and -2i

Errors: domain_error when a = 0.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"a": map[string]any{"type": "number", "description": "Quadratic coefficient. Must be non-zero."},
					"b": map[string]any{"type": "number", "description": "Linear coefficient."},
					"c": map[string]any{"type": "number", "description": "Constant term."},
				},
				"required": []string{"a", "b", "c"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Solve Quadratic Equation",
			},
		},
		s.instrumented("quadratic", s.handleQuadratic),
	)
}

type quadraticArgs struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
	C *float64 `json:"c"`
}

type quadraticRoot struct {
	Real      float64 `json:"real"`
	Imag      float64 `json:"imag"`
	Formatted string  `json:"formatted"`
}

type quadraticResult struct {
	Discriminant float64         `json:"discriminant"`
	IsComplex    bool            `json:"is_complex"`
	Roots        []quadraticRoot `json:"roots"`
}

func formatRoot(z complex128) quadraticRoot {
	root := quadraticRoot{Real: real(z), Imag: imag(z)}
	switch {
	case imag(z) == 0:
		root.Formatted = mathops.FormatNumber(real(z))
	case real(z) == 0:
		root.Formatted = fmt.Sprintf("%si", mathops.FormatNumber(imag(z)))
	case imag(z) > 0:
		root.Formatted = fmt.Sprintf("%s + %si", mathops.FormatNumber(real(z)), mathops.FormatNumber(imag(z)))
	default:
		root.Formatted = fmt.Sprintf("%s - %si", mathops.FormatNumber(real(z)), mathops.FormatNumber(-imag(z)))
	}
	return root
}

func (s *Server) handleQuadratic(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args quadraticArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.A == nil || args.B == nil || args.C == nil {
		return errorResult(kindInvalidArg, "a, b, and c are required. Example: {\"a\": 1, \"b\": -5, \"c\": 6}"), nil
	}

	roots, err := mathops.SolveQuadratic(*args.A, *args.B, *args.C)
	if err != nil {
		return evalErrorResult(err), nil
	}
	if cmplx.IsNaN(roots.X1) || cmplx.IsInf(roots.X1) {
		return evalErrorResult(&mathops.DomainError{Op: "quadratic", Msg: "coefficients produce a non-finite root"}), nil
	}

	return jsonResult(quadraticResult{
		Discriminant: roots.Discriminant,
		IsComplex:    roots.IsComplex,
		Roots:        []quadraticRoot{formatRoot(roots.X1), formatRoot(roots.X2)},
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// angle_convert — Degrees / radians / gradians
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addAngleConvertTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "angle_convert",
			Title: "Convert Angle Units",
			Description: `Convert an angle between degrees, radians, and gradians.

USE THIS TOOL WHEN:
• The user needs an angle in a different unit: "180 degrees in radians"
• Preparing an angle for 'trig' when the units differ

EXAMPLE INPUTS:
• {"angle": 180, "from": "deg", "to": "rad"}    → 3.14159…
• {"angle": 100, "from": "grad", "to": "deg"}   → 90

UNITS: deg (degrees), rad (radians), grad (gradians; 400 grad = full circle).

Errors: domain_error for an unknown unit.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"angle": map[string]any{"type": "number", "description": "Angle value to convert."},
					"from": map[string]any{
						"type":        "string",
						"description": "Source unit.",
						"enum":        []string{mathops.UnitDegrees, mathops.UnitRadians, mathops.UnitGradians},
					},
					"to": map[string]any{
						"type":        "string",
						"description": "Target unit.",
						"enum":        []string{mathops.UnitDegrees, mathops.UnitRadians, mathops.UnitGradians},
					},
				},
				"required": []string{"angle", "from", "to"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Convert Angle Units",
			},
		},
		s.instrumented("angle_convert", s.handleAngleConvert),
	)
}

type angleConvertArgs struct {
	Angle *float64 `json:"angle"`
	From  string   `json:"from"`
	To    string   `json:"to"`
}

type angleConvertResult struct {
	Angle     float64 `json:"angle"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

func (s *Server) handleAngleConvert(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args angleConvertArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Angle == nil || args.From == "" || args.To == "" {
		return errorResult(kindInvalidArg, "angle, from, and to are required. Example: {\"angle\": 180, \"from\": \"deg\", \"to\": \"rad\"}"), nil
	}

	value, err := mathops.ConvertAngle(*args.Angle, args.From, args.To)
	if err != nil {
		return evalErrorResult(err), nil
	}

	return jsonResult(angleConvertResult{
		Angle:     *args.Angle,
		From:      args.From,
		To:        args.To,
		Result:    value,
		Formatted: mathops.FormatNumber(value),
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// trig — Trigonometric and hyperbolic functions
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addTrigTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "trig",
			Title: "Trigonometric Function",
			Description: `Apply a trigonometric or hyperbolic function to an angle. Always pass the unit explicitly.

USE THIS TOOL WHEN:
• The user asks for sin/cos/tan or sinh/cosh/tanh of an angle

DO NOT USE THIS TOOL WHEN:
• Converting between angle units with no function applied — use 'angle_convert'

EXAMPLE INPUTS:
• {"function": "sin", "angle": 30, "unit": "deg"}    → 0.5
• {"function": "cos", "angle": 3.14159, "unit": "rad"}
• {"function": "tanh", "angle": 1, "unit": "rad"}

FUNCTIONS: sin, cos, tan, sinh, cosh, tanh.
UNITS: deg, rad (default), grad. The angle is converted to radians before any function is applied, hyperbolics included, so pass rad when the argument is a plain number.

Errors: domain_error for an unknown function or unit.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"function": map[string]any{
						"type":        "string",
						"description": "Function to apply.",
						"enum":        []string{"sin", "cos", "tan", "sinh", "cosh", "tanh"},
					},
					"angle": map[string]any{"type": "number", "description": "Angle value."},
					"unit": map[string]any{
						"type":        "string",
						"description": "Unit of the angle.",
						"enum":        []string{mathops.UnitDegrees, mathops.UnitRadians, mathops.UnitGradians},
						"default":     mathops.UnitRadians,
					},
				},
				"required": []string{"function", "angle"},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "Trigonometric Function",
			},
		},
		s.instrumented("trig", s.handleTrig),
	)
}

type trigArgs struct {
	Function string   `json:"function"`
	Angle    *float64 `json:"angle"`
	Unit     string   `json:"unit"`
}

type trigResult struct {
	Function  string  `json:"function"`
	Angle     float64 `json:"angle"`
	Unit      string  `json:"unit"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

func (s *Server) handleTrig(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args trigArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(kindInvalidArg, fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Function == "" || args.Angle == nil {
		return errorResult(kindInvalidArg, "function and angle are required. Example: {\"function\": \"sin\", \"angle\": 30, \"unit\": \"deg\"}"), nil
	}
	unit := args.Unit
	if unit == "" {
		unit = mathops.UnitRadians
	}

	radians, err := mathops.ConvertAngle(*args.Angle, unit, mathops.UnitRadians)
	if err != nil {
		return evalErrorResult(err), nil
	}
	value, err := mathops.Trig(radians, args.Function)
	if err != nil {
		return evalErrorResult(err), nil
	}

	return jsonResult(trigResult{
		Function:  args.Function,
		Angle:     *args.Angle,
		Unit:      unit,
		Result:    value,
		Formatted: mathops.FormatNumber(value),
	})
}
