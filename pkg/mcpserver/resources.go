package mcpserver

import (
	"context"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/jsonutil"
)

// registerResources adds all domain-knowledge resources to the MCP server.
func (s *Server) registerResources() {
	s.addVersionResource()
	s.addGrammarResource()
	s.addConstantsResource()
	s.addConfigResource()
}

// jsonContents wraps a value as a single-document JSON resource result.
func jsonContents(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := jsonutil.MarshalIndent(v, "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(data)},
		},
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// mathmcp://version — Server capabilities and version
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addVersionResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "mathmcp://version",
			Name:        "Math MCP Version",
			Description: "Server version, capabilities, and tool inventory.",
			MIMEType:    "application/json",
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			info := map[string]any{
				"name":    defaults.ToolNameDisplay,
				"version": defaults.Version,
				"capabilities": map[string]any{
					"tools":     9,
					"resources": 4,
					"prompts":   2,
				},
				"tools": []string{
					"calculate", "binary_operation", "unary_operation",
					"factorial", "fibonacci", "stats", "quadratic",
					"angle_convert", "trig",
				},
				"functions": []string{"sqrt", "log"},
				"constants": []string{"pi", "e"},
				"error_kinds": []string{
					kindSyntax, kindDivisionByZero, kindDomain, kindInvalidArg,
				},
			}
			return jsonContents("mathmcp://version", info)
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// mathmcp://grammar — Expression language reference
// ═══════════════════════════════════════════════════════════════════════════

const grammarDoc = `# Expression Grammar

expr    = term { ("+" | "-") term }
term    = unary { ("*" | "/") unary }
unary   = "-" unary | power
power   = primary [ "**" unary ]
primary = NUMBER | CONSTANT | call | "(" expr ")"
call    = "sqrt" "(" expr ")" | "log" "(" expr "," expr ")"

## Precedence (loosest to tightest)

1. + -            (left-associative)
2. * /            (left-associative)
3. unary -
4. **             (right-associative)
5. literals, constants, calls, parentheses

Consequences:
- 2**3**2 = 2**(3**2) = 512
- -2**2 = -(2**2) = -4; write ((-2)**2) for 4
- 2**-3 is valid: the exponent may itself be a unary expression

## Tokens

- NUMBER:   decimal literals (42, 3.14, 0.5)
- CONSTANT: pi, e
- Functions take exact parenthesized argument lists: sqrt(x), log(base, value)
- log is base-first everywhere, matching binary_operation: log(2, 8) = 3
- Whitespace between tokens is ignored

## Errors

- syntax_error:      malformed input; message includes the 1-based column
- division_by_zero:  x/0 at any depth, 0**negative
- domain_error:      sqrt of a negative, log outside its real domain,
                     non-finite results (overflow)
`

func (s *Server) addGrammarResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "mathmcp://grammar",
			Name:        "Expression Grammar",
			Description: "The expression language accepted by the calculate tool: grammar, precedence, tokens, and error taxonomy.",
			MIMEType:    "text/markdown",
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: "mathmcp://grammar", MIMEType: "text/markdown", Text: grammarDoc},
				},
			}, nil
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// mathmcp://constants — Named constants
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addConstantsResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "mathmcp://constants",
			Name:        "Named Constants",
			Description: "Constants usable in expressions and as operands.",
			MIMEType:    "application/json",
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return jsonContents("mathmcp://constants", map[string]any{
				"pi": map[string]any{"value": math.Pi, "description": "Ratio of a circle's circumference to its diameter."},
				"e":  map[string]any{"value": math.E, "description": "Base of the natural logarithm."},
			})
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// mathmcp://config — Active limits
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addConfigResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "mathmcp://config",
			Name:        "Server Configuration",
			Description: "Active limits: expression length, dataset size, sequence bounds, rate limiting.",
			MIMEType:    "application/json",
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return jsonContents("mathmcp://config", map[string]any{
				"max_expression_len": s.config.MaxExpressionLen,
				"max_stats_input":    s.config.MaxStatsInput,
				"max_factorial":      defaults.MaxFactorial,
				"max_fibonacci":      defaults.MaxFibonacci,
				"rate_limit":         s.config.RateLimit,
				"rate_burst":         s.config.RateBurst,
				"metrics_enabled":    s.config.Metrics,
			})
		},
	)
}
