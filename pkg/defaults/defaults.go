// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for runtime configuration defaults.
//
// Usage:
//
//	cfg.MaxExpressionLen = defaults.MaxExpressionLen
//	srv.Addr = defaults.HTTPAddr
//
// DO NOT use hardcoded values like `MaxFactorial: 170` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

// Version is the current math-mcp version.
const Version = "1.2.0"

// Tool identity strings used in MCP implementation info and resources.
const (
	ToolName        = "math-mcp"
	ToolNameDisplay = "Math MCP Server"
)

// ============================================================================
// EVALUATOR BOUNDS
// ============================================================================
//
// Guard rails for tool inputs. These bound work per call so a single request
// cannot pin a CPU or overflow float64 silently.
// ============================================================================

const (
	// MaxExpressionLen is the longest accepted expression string in bytes.
	MaxExpressionLen = 4096

	// MaxStatsInput is the largest accepted sample size for the stats tool.
	MaxStatsInput = 100_000

	// MaxFactorial is the largest n for which n! is finite in float64.
	MaxFactorial = 170

	// MaxFibonacci is the largest index for which fib(n) is exact in float64.
	// fib(78) = 8944394323791464 < 2^53; fib(79) loses integer precision.
	MaxFibonacci = 78
)

// ============================================================================
// HTTP TRANSPORT
// ============================================================================

const (
	// HTTPAddr is the default listen address for the HTTP transport.
	HTTPAddr = ":8080"

	// RateLimitPerSecond is the default per-server request rate for the
	// HTTP transport. Zero disables rate limiting.
	RateLimitPerSecond = 100

	// RateLimitBurst is the token bucket burst for the HTTP rate limiter.
	RateLimitBurst = 200
)

// ============================================================================
// EXIT CODES
// ============================================================================

const (
	// ExitOK indicates success.
	ExitOK = 0

	// ExitError indicates a runtime failure (transport error, bad config).
	ExitError = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2

	// ExitEvalError indicates the eval subcommand rejected the expression.
	ExitEvalError = 3
)
