package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/mathmcp/mathmcp/pkg/config"
	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/expr"
	"github.com/mathmcp/mathmcp/pkg/jsonutil"
	"github.com/mathmcp/mathmcp/pkg/mathops"
	"github.com/mathmcp/mathmcp/pkg/metrics"
)

// ---------------------------------------------------------------------------
// Error kinds
// ---------------------------------------------------------------------------

// Stable error kind codes carried in error envelopes and metric labels.
// Clients distinguish the three evaluation failure modes by these values.
const (
	kindSyntax         = "syntax_error"
	kindDivisionByZero = "division_by_zero"
	kindDomain         = "domain_error"
	kindInvalidArg     = "invalid_argument"
)

// errorKind maps an evaluation error to its external kind code.
func errorKind(err error) string {
	var syn *expr.SyntaxError
	var div *mathops.DivisionByZeroError
	var dom *mathops.DomainError
	switch {
	case errors.As(err, &syn):
		return kindSyntax
	case errors.As(err, &div):
		return kindDivisionByZero
	case errors.As(err, &dom):
		return kindDomain
	default:
		return kindInvalidArg
	}
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

// Server wraps the MCP server with the math tool set.
type Server struct {
	mcp     *mcp.Server
	config  *config.Config
	metrics *metrics.Collector
	ready   atomic.Bool
}

// New creates an MCP server with all tools, resources, and prompts
// registered. A nil cfg uses the built-in defaults.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		config:  cfg,
		metrics: metrics.New(),
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    defaults.ToolName,
			Title:   defaults.ToolNameDisplay,
			Version: defaults.Version,
		},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer returns the underlying MCP server for direct access (e.g., testing).
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// Metrics returns the Prometheus collector recording tool invocations.
func (s *Server) Metrics() *metrics.Collector { return s.metrics }

// MarkReady signals that startup validation passed. Until MarkReady is
// called, the /health endpoint returns 503 Service Unavailable.
func (s *Server) MarkReady() { s.ready.Store(true) }

// IsReady returns true if the server has completed startup validation.
func (s *Server) IsReady() bool { return s.ready.Load() }

// RunStdio runs the MCP server over stdio transport.
// This is the primary mode for IDE integrations.
func (s *Server) RunStdio(ctx context.Context) error {
	s.MarkReady()
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns an http.Handler for the streamable HTTP transport.
//
// The handler mounts:
//   - /health      → readiness/liveness probe (GET only)
//   - /metrics     → Prometheus scrape endpoint (when enabled in config)
//   - /sse         → legacy SSE transport for older MCP clients
//   - /mcp         → streamable HTTP transport (2025-03-26 spec)
//   - /            → streamable HTTP transport (default mount)
//
// All endpoints include CORS headers for browser and cross-origin MCP
// clients, a per-request ID, and an optional global rate limit.
func (s *Server) HTTPHandler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return s.mcp },
		&mcp.StreamableHTTPOptions{Stateless: false},
	)

	sse := mcp.NewSSEHandler(
		func(_ *http.Request) *mcp.Server { return s.mcp },
		nil, // default SSE options
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	if s.config.Metrics {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	mux.Handle("/sse", sse)
	mux.Handle("/mcp", streamable)
	mux.Handle("/", streamable)

	var h http.Handler = mux
	h = rateLimitMiddleware(h, s.config.RateLimit, s.config.RateBurst)
	h = securityHeaders(h)
	h = recoveryMiddleware(h)
	h = requestIDMiddleware(h)
	return corsMiddleware(h)
}

// handleHealth serves a readiness/liveness probe.
// Returns 200 when the server is ready, 503 Service Unavailable before
// MarkReady() is called.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if !s.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"starting","service":"math-mcp"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","service":"math-mcp"}`))
}

// ---------------------------------------------------------------------------
// Middleware
// ---------------------------------------------------------------------------

// corsMiddleware wraps an http.Handler with permissive CORS headers required
// by browser-based MCP clients and cross-origin integrations.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Always set Vary: Origin so caches don't serve a CORS-enabled response
		// to a non-browser client or vice versa.
		w.Header().Add("Vary", "Origin")

		if origin == "" {
			// No Origin header = non-browser client; skip CORS headers entirely.
			// Setting "*" with Allow-Credentials violates the Fetch specification.
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			strings.Join([]string{
				"Content-Type",
				"Authorization",
				"Mcp-Session-Id",
				"MCP-Protocol-Version",
				"Last-Event-ID",
				"Accept",
			}, ", "))
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id, MCP-Protocol-Version")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware catches panics in HTTP handlers and returns a 500 error
// instead of killing the connection.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic in HTTP handler: %v\n%s", err, debug.Stack())

				// Best-effort error response: if headers were already sent
				// (e.g., during SSE streaming), WriteHeader is a no-op.
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// securityHeaders adds standard defense-in-depth headers. These prevent
// MIME-sniffing and clickjacking on the HTTP endpoints.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware assigns each request a UUID, echoed in the
// X-Request-Id response header. Incoming IDs from trusted proxies are
// preserved.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware applies a global token-bucket rate limit across all
// clients. rps <= 0 disables limiting.
func rateLimitMiddleware(next http.Handler, rps, burst int) http.Handler {
	if rps <= 0 {
		return next
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Health probes bypass the limiter so orchestrators never see
		// a flapping readiness check under load.
		if r.URL.Path != "/health" && !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---------------------------------------------------------------------------
// Helpers — result builders
// ---------------------------------------------------------------------------

// textResult creates a CallToolResult with a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := jsonutil.MarshalIndent(v, "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return textResult(string(data)), nil
}

// errorEnvelope is the structured error payload shared by all tools, so
// clients can parse failures uniformly and branch on the kind code.
type errorEnvelope struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// errorResult creates an IsError CallToolResult carrying a structured error
// envelope so the LLM can see the kind and message and self-correct rather
// than raising a protocol-level exception.
func errorResult(kind, msg string) *mcp.CallToolResult {
	data, _ := jsonutil.MarshalIndent(errorEnvelope{Kind: kind, Error: msg}, "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
		IsError: true,
	}
}

// evalErrorResult converts an evaluation error into an error envelope with
// the matching kind code.
func evalErrorResult(err error) *mcp.CallToolResult {
	return errorResult(errorKind(err), err.Error())
}

// boolPtr returns a pointer to b. Used for optional bool fields in the SDK.
func boolPtr(b bool) *bool { return &b }

// parseArgs unmarshals the raw JSON arguments from a tool call into dst.
func parseArgs(req *mcp.CallToolRequest, dst any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := jsonutil.Unmarshal(req.Params.Arguments, dst); err != nil {
		return fmt.Errorf("parsing tool arguments: %w", err)
	}
	return nil
}

// toolHandler is the SDK tool handler signature.
type toolHandler = func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)

// instrumented wraps a tool handler to record call count, duration, and
// error kind in the Prometheus collector.
func (s *Server) instrumented(tool string, h toolHandler) toolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := h(ctx, req)

		kind := ""
		switch {
		case err != nil:
			kind = "internal"
		case res != nil && res.IsError:
			kind = resultKind(res)
		}
		s.metrics.ObserveCall(tool, time.Since(start), kind)
		return res, err
	}
}

// resultKind extracts the kind code from an error envelope result. Falls
// back to "error" for results that carry no envelope.
func resultKind(res *mcp.CallToolResult) string {
	if len(res.Content) == 0 {
		return "error"
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		return "error"
	}
	var env errorEnvelope
	if jsonutil.Unmarshal([]byte(tc.Text), &env) != nil || env.Kind == "" {
		return "error"
	}
	return env.Kind
}

// ---------------------------------------------------------------------------
// Server Instructions — the AI's operating manual
// ---------------------------------------------------------------------------

const serverInstructions = `You are operating Math MCP Server — a precise arithmetic and numeric analysis toolkit. Use its tools instead of doing mental arithmetic: the server computes exactly and reports failures in a structured way you can reason about.

## TOOL SELECTION GUIDE

| User Intent | Tool | Why |
|---|---|---|
| "What is 2 + 3 * 4?" or any formula | calculate | Full expression evaluator with precedence, parentheses, sqrt, log |
| Add/subtract/multiply/divide/power/log two numbers | binary_operation | Single operation, no expression parsing |
| Square root of one number | unary_operation | Single operand |
| "15 factorial" | factorial | Exact n! for n ≤ 170 |
| "40th Fibonacci number" | fibonacci | Exact F(n) for n ≤ 78 |
| Mean/median/mode/variance of a dataset | stats | One call returns the full summary |
| Solve ax² + bx + c = 0 | quadratic | Handles real and complex roots |
| Degrees ↔ radians ↔ gradians | angle_convert | Unit conversion |
| sin/cos/tan of an angle | trig | Specify the angle unit explicitly |

## EXPRESSION LANGUAGE (calculate)

- Operators: + - * / ** with standard precedence; ** is right-associative (2**3**2 = 512)
- Unary minus binds looser than ** (-2**2 = -4); use parentheses to force ((-2)**2)
- Functions: sqrt(x), log(base, value)
- Constants: pi, e
- Whitespace is ignored

## ERROR HANDLING

Failed calls return a JSON envelope {"kind": ..., "error": ...}. Branch on kind:
- "syntax_error" — the expression is malformed; the message includes the column. Fix the expression and retry.
- "division_by_zero" — mathematically undefined (x/0, 0**negative). Do not retry unchanged; explain to the user.
- "domain_error" — outside the real domain or supported range (sqrt of negative, log base 1, factorial > 170). Explain the constraint.
- "invalid_argument" — the tool call itself was malformed; check required fields and types.

Never silently invent a numeric answer when a tool returns an error.

## READING RESOURCES

- mathmcp://version — server capabilities and tool inventory
- mathmcp://grammar — the full expression grammar and precedence rules
- mathmcp://constants — available named constants with values
- mathmcp://config — active limits (expression length, dataset size, sequence bounds)

## RESPONSE FORMAT

Successful tool responses are JSON with the inputs echoed alongside the result and a "formatted" field suitable for direct display. Prefer the formatted value when presenting to the user; use the raw numeric field for follow-up computation.`
