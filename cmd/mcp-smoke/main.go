// Command mcp-smoke is an end-to-end smoke client for the math MCP server.
// It starts the server over HTTP, connects through SSE like a real MCP
// client would, and drives every tool, resource, and prompt through
// positive and negative scenarios. Run it manually or from CI:
//
//	go run ./cmd/mcp-smoke
//	go run ./cmd/mcp-smoke -scenario error_handling
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// scenarioResult tracks the outcome of a single scenario.
type scenarioResult struct {
	name   string
	passed bool
	err    error
}

// scenario is a named test function that runs against a live MCP session.
type scenario struct {
	name string
	fn   func(ctx context.Context, s *mcp.ClientSession) error
}

func main() {
	var (
		port    = flag.Int("port", 18080, "MCP HTTP port")
		timeout = flag.Duration("timeout", 60*time.Second, "Overall timeout")
		runOnly = flag.String("scenario", "", "Run only this named scenario")
	)
	flag.Parse()
	log.SetFlags(0)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	serverCmd, err := startServer(ctx, *port)
	if err != nil {
		log.Fatalf("FATAL start_server: %v", err)
	}
	defer stopServer(serverCmd)

	if err := waitForHealth(ctx, *port); err != nil {
		log.Fatalf("FATAL health_check: %v", err)
	}
	fmt.Println("server: healthy")

	client := mcp.NewClient(&mcp.Implementation{Name: "mcp-smoke", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.SSEClientTransport{
		Endpoint: fmt.Sprintf("http://127.0.0.1:%d/sse", *port),
	}, nil)
	if err != nil {
		log.Fatalf("FATAL connect: %v", err)
	}
	defer session.Close()

	scenarios := allScenarios()

	var results []scenarioResult
	for _, sc := range scenarios {
		if *runOnly != "" && sc.name != *runOnly {
			continue
		}

		err := sc.fn(ctx, session)
		passed := err == nil
		results = append(results, scenarioResult{name: sc.name, passed: passed, err: err})

		if passed {
			fmt.Printf("PASS  %s\n", sc.name)
		} else {
			fmt.Printf("FAIL  %s: %v\n", sc.name, err)
		}
	}

	// Summary.
	passed, failed := 0, 0
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}

	fmt.Printf("\n--- %d passed, %d failed ---\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// allScenarios returns every smoke scenario in execution order.
func allScenarios() []scenario {
	return []scenario{
		// Surface area verification.
		{"tool_discovery", scenarioToolDiscovery},
		{"resource_exploration", scenarioResourceExploration},
		{"prompt_catalog", scenarioPromptCatalog},

		// Individual tool validation (positive + negative for each).
		{"expression_evaluation", scenarioExpressionEvaluation},
		{"binary_unary_operations", scenarioBinaryUnaryOperations},
		{"integer_sequences", scenarioIntegerSequences},
		{"statistics", scenarioStatistics},
		{"quadratic_solver", scenarioQuadraticSolver},
		{"angle_and_trig", scenarioAngleAndTrig},
		{"error_handling", scenarioErrorHandling},

		// Agent simulations — multi-turn workflows that mimic real AI agents.
		{"agent_math_tutor", agentMathTutor},
		{"agent_data_analyst", agentDataAnalyst},
	}
}

// ---------------------------------------------------------------------------
// tool_discovery — verifies every tool exists and has metadata,
// plus negative: nonexistent tools.
// ---------------------------------------------------------------------------

func scenarioToolDiscovery(ctx context.Context, s *mcp.ClientSession) error {
	tools, err := s.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return fmt.Errorf("ListTools: %w", err)
	}

	expected := []string{
		"calculate", "binary_operation", "unary_operation",
		"factorial", "fibonacci", "stats", "quadratic",
		"angle_convert", "trig",
	}

	have := make(map[string]bool, len(tools.Tools))
	for _, t := range tools.Tools {
		have[t.Name] = true
	}

	var missing []string
	for _, name := range expected {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tools: %v (have %d)", missing, len(tools.Tools))
	}
	if len(tools.Tools) != len(expected) {
		return fmt.Errorf("tool count mismatch: want %d, got %d", len(expected), len(tools.Tools))
	}

	// Every tool must have a description (agents select tools by description).
	for _, t := range tools.Tools {
		if t.Description == "" {
			return fmt.Errorf("tool %q has empty description", t.Name)
		}
	}

	// Every tool must have an input schema (agents build arguments from it).
	for _, t := range tools.Tools {
		if t.InputSchema == nil {
			return fmt.Errorf("tool %q has nil input schema", t.Name)
		}
	}

	// NEGATIVE: calling a nonexistent tool must fail — either protocol error
	// or IsError=true, both are acceptable. Must not silently succeed.
	fakeResult, err := callToolRaw(ctx, s, "nonexistent_tool_that_does_not_exist", map[string]any{})
	if err == nil && !fakeResult.IsError {
		return fmt.Errorf("NEG nonexistent tool: expected error, got success")
	}

	return nil
}

// ---------------------------------------------------------------------------
// resource_exploration — reads and validates every resource, plus negative:
// nonexistent URIs.
// ---------------------------------------------------------------------------

func scenarioResourceExploration(ctx context.Context, s *mcp.ClientSession) error {
	// Version resource: parse JSON and verify structure.
	versionRes, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://version"})
	if err != nil {
		return fmt.Errorf("ReadResource(version): %w", err)
	}
	versionData, err := resourceJSON(versionRes)
	if err != nil {
		return fmt.Errorf("parse version: %w", err)
	}
	for _, field := range []string{"name", "version", "capabilities"} {
		if _, ok := versionData[field]; !ok {
			return fmt.Errorf("version resource missing %q field", field)
		}
	}
	caps, ok := versionData["capabilities"].(map[string]any)
	if !ok {
		return fmt.Errorf("version capabilities not an object")
	}
	if toolCount, _ := caps["tools"].(float64); toolCount == 0 {
		return fmt.Errorf("version reports 0 tools")
	}

	// Grammar resource: markdown describing the expression language.
	grammarRes, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://grammar"})
	if err != nil {
		return fmt.Errorf("ReadResource(grammar): %w", err)
	}
	grammarText := strings.ToLower(resourceText(grammarRes))
	for _, want := range []string{"right-associative", "sqrt", "division_by_zero"} {
		if !strings.Contains(grammarText, want) {
			return fmt.Errorf("grammar resource missing %q", want)
		}
	}

	// Constants resource: pi and e with accurate values.
	constRes, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://constants"})
	if err != nil {
		return fmt.Errorf("ReadResource(constants): %w", err)
	}
	constData, err := resourceJSON(constRes)
	if err != nil {
		return fmt.Errorf("parse constants: %w", err)
	}
	pi, ok := constData["pi"].(map[string]any)
	if !ok {
		return fmt.Errorf("constants resource missing pi")
	}
	if v, _ := pi["value"].(float64); math.Abs(v-math.Pi) > 1e-12 {
		return fmt.Errorf("pi value wrong: %v", pi["value"])
	}

	// Config resource: effective limits.
	cfgRes, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://config"})
	if err != nil {
		return fmt.Errorf("ReadResource(config): %w", err)
	}
	cfgData, err := resourceJSON(cfgRes)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v, _ := cfgData["max_expression_len"].(float64); v == 0 {
		return fmt.Errorf("config reports max_expression_len 0")
	}

	// NEGATIVE: nonexistent resource URI must fail.
	if _, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://no-such-resource"}); err == nil {
		return fmt.Errorf("NEG nonexistent resource: expected error, got success")
	}

	return nil
}

// ---------------------------------------------------------------------------
// prompt_catalog — lists prompts and renders each with arguments.
// ---------------------------------------------------------------------------

func scenarioPromptCatalog(ctx context.Context, s *mcp.ClientSession) error {
	prompts, err := s.ListPrompts(ctx, &mcp.ListPromptsParams{})
	if err != nil {
		return fmt.Errorf("ListPrompts: %w", err)
	}
	have := make(map[string]bool, len(prompts.Prompts))
	for _, p := range prompts.Prompts {
		have[p.Name] = true
	}
	for _, name := range []string{"evaluate_stepwise", "analyze_dataset"} {
		if !have[name] {
			return fmt.Errorf("missing prompt %q", name)
		}
	}

	stepwise, err := s.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      "evaluate_stepwise",
		Arguments: map[string]string{"expression": "2 ** 3 ** 2"},
	})
	if err != nil {
		return fmt.Errorf("GetPrompt(evaluate_stepwise): %w", err)
	}
	if !strings.Contains(promptText(stepwise), "2 ** 3 ** 2") {
		return fmt.Errorf("evaluate_stepwise prompt does not embed the expression")
	}

	analyze, err := s.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      "analyze_dataset",
		Arguments: map[string]string{"data": "1, 2, 3, 4"},
	})
	if err != nil {
		return fmt.Errorf("GetPrompt(analyze_dataset): %w", err)
	}
	if !strings.Contains(promptText(analyze), "1, 2, 3, 4") {
		return fmt.Errorf("analyze_dataset prompt does not embed the data")
	}

	// NEGATIVE: required argument missing.
	if _, err := s.GetPrompt(ctx, &mcp.GetPromptParams{Name: "evaluate_stepwise"}); err == nil {
		return fmt.Errorf("NEG prompt without required arg: expected error, got success")
	}

	return nil
}

// ---------------------------------------------------------------------------
// expression_evaluation — the calculate tool across the grammar.
// ---------------------------------------------------------------------------

func scenarioExpressionEvaluation(ctx context.Context, s *mcp.ClientSession) error {
	cases := []struct {
		expression string
		want       float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ** 3 ** 2", 512}, // right-associative
		{"-2 ** 2", -4},      // unary minus binds looser than power
		{"sqrt(144)", 12},
		{"log(2, 1024)", 10},
		{"pi * 2", 2 * math.Pi},
	}
	for _, tc := range cases {
		data, err := callToolJSON(ctx, s, "calculate", map[string]any{"expression": tc.expression})
		if err != nil {
			return err
		}
		got, _ := data["result"].(float64)
		if math.Abs(got-tc.want) > 1e-9 {
			return fmt.Errorf("calculate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
		if parsed, _ := data["parsed"].(string); parsed == "" {
			return fmt.Errorf("calculate(%q) has no parsed form", tc.expression)
		}
	}

	// NEGATIVE: syntax error must come back as a structured envelope.
	kind, err := callToolErrorKind(ctx, s, "calculate", map[string]any{"expression": "2 + $"})
	if err != nil {
		return err
	}
	if kind != "syntax_error" {
		return fmt.Errorf("calculate(2 + $) kind = %q, want syntax_error", kind)
	}

	return nil
}

// ---------------------------------------------------------------------------
// binary_unary_operations — direct operations without the expression grammar.
// ---------------------------------------------------------------------------

func scenarioBinaryUnaryOperations(ctx context.Context, s *mcp.ClientSession) error {
	data, err := callToolJSON(ctx, s, "binary_operation", map[string]any{
		"a": 2, "b": 1024, "operation": "log",
	})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); got != 10 {
		return fmt.Errorf("log base 2 of 1024 = %v, want 10", got)
	}

	// Named constants as operands.
	data, err = callToolJSON(ctx, s, "binary_operation", map[string]any{
		"a": "pi", "b": 2, "operation": "*",
	})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); math.Abs(got-2*math.Pi) > 1e-12 {
		return fmt.Errorf("pi * 2 = %v", got)
	}

	data, err = callToolJSON(ctx, s, "unary_operation", map[string]any{
		"a": 169, "operation": "sqrt",
	})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); got != 13 {
		return fmt.Errorf("sqrt(169) = %v, want 13", got)
	}

	// NEGATIVE: division by zero is its own kind, distinct from domain errors.
	kind, err := callToolErrorKind(ctx, s, "binary_operation", map[string]any{
		"a": 5, "b": 0, "operation": "/",
	})
	if err != nil {
		return err
	}
	if kind != "division_by_zero" {
		return fmt.Errorf("5/0 kind = %q, want division_by_zero", kind)
	}

	kind, err = callToolErrorKind(ctx, s, "unary_operation", map[string]any{
		"a": -4, "operation": "sqrt",
	})
	if err != nil {
		return err
	}
	if kind != "domain_error" {
		return fmt.Errorf("sqrt(-4) kind = %q, want domain_error", kind)
	}

	return nil
}

// ---------------------------------------------------------------------------
// integer_sequences — factorial and fibonacci with exact boundaries.
// ---------------------------------------------------------------------------

func scenarioIntegerSequences(ctx context.Context, s *mcp.ClientSession) error {
	data, err := callToolJSON(ctx, s, "factorial", map[string]any{"n": 10})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); got != 3628800 {
		return fmt.Errorf("10! = %v, want 3628800", got)
	}

	data, err = callToolJSON(ctx, s, "fibonacci", map[string]any{"n": 20})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); got != 6765 {
		return fmt.Errorf("F(20) = %v, want 6765", got)
	}

	// Boundary: the largest factorial representable in a float64.
	if _, err := callToolJSON(ctx, s, "factorial", map[string]any{"n": 170}); err != nil {
		return fmt.Errorf("170! should succeed: %w", err)
	}

	// NEGATIVE: just past each boundary.
	for _, tc := range []struct {
		tool string
		n    float64
	}{
		{"factorial", 171},
		{"factorial", -1},
		{"fibonacci", 79},
		{"fibonacci", 2.5},
	} {
		kind, err := callToolErrorKind(ctx, s, tc.tool, map[string]any{"n": tc.n})
		if err != nil {
			return err
		}
		if kind != "domain_error" {
			return fmt.Errorf("%s(%v) kind = %q, want domain_error", tc.tool, tc.n, kind)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// statistics — summary statistics over a dataset.
// ---------------------------------------------------------------------------

func scenarioStatistics(ctx context.Context, s *mcp.ClientSession) error {
	data, err := callToolJSON(ctx, s, "stats", map[string]any{
		"data": []float64{2, 4, 4, 4, 5, 5, 7, 9},
	})
	if err != nil {
		return err
	}
	checks := []struct {
		field string
		want  float64
	}{
		{"count", 8},
		{"mean", 5},
		{"median", 4.5},
		{"min", 2},
		{"max", 9},
	}
	for _, c := range checks {
		if got, _ := data[c.field].(float64); math.Abs(got-c.want) > 1e-9 {
			return fmt.Errorf("stats %s = %v, want %v", c.field, got, c.want)
		}
	}

	// NEGATIVE: empty dataset.
	kind, err := callToolErrorKind(ctx, s, "stats", map[string]any{"data": []float64{}})
	if err != nil {
		return err
	}
	if kind != "domain_error" {
		return fmt.Errorf("stats([]) kind = %q, want domain_error", kind)
	}

	return nil
}

// ---------------------------------------------------------------------------
// quadratic_solver — real roots, complex roots, degenerate input.
// ---------------------------------------------------------------------------

func scenarioQuadraticSolver(ctx context.Context, s *mcp.ClientSession) error {
	// x^2 - 5x + 6 = 0 -> roots 3 and 2.
	data, err := callToolJSON(ctx, s, "quadratic", map[string]any{"a": 1, "b": -5, "c": 6})
	if err != nil {
		return err
	}
	if isComplex, _ := data["is_complex"].(bool); isComplex {
		return fmt.Errorf("x^2-5x+6 reported complex roots")
	}
	roots, _ := data["roots"].([]any)
	if len(roots) != 2 {
		return fmt.Errorf("want 2 roots, got %d", len(roots))
	}

	// x^2 + 4 = 0 -> roots ±2i.
	data, err = callToolJSON(ctx, s, "quadratic", map[string]any{"a": 1, "b": 0, "c": 4})
	if err != nil {
		return err
	}
	if isComplex, _ := data["is_complex"].(bool); !isComplex {
		return fmt.Errorf("x^2+4 should have complex roots")
	}

	// NEGATIVE: a=0 is not a quadratic.
	kind, err := callToolErrorKind(ctx, s, "quadratic", map[string]any{"a": 0, "b": 2, "c": 1})
	if err != nil {
		return err
	}
	if kind != "domain_error" {
		return fmt.Errorf("quadratic(a=0) kind = %q, want domain_error", kind)
	}

	return nil
}

// ---------------------------------------------------------------------------
// angle_and_trig — unit conversion and trigonometry with unit handling.
// ---------------------------------------------------------------------------

func scenarioAngleAndTrig(ctx context.Context, s *mcp.ClientSession) error {
	data, err := callToolJSON(ctx, s, "angle_convert", map[string]any{
		"angle": 180, "from": "deg", "to": "rad",
	})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); math.Abs(got-math.Pi) > 1e-12 {
		return fmt.Errorf("180 deg = %v rad, want pi", got)
	}

	data, err = callToolJSON(ctx, s, "trig", map[string]any{
		"function": "sin", "angle": 30, "unit": "deg",
	})
	if err != nil {
		return err
	}
	if got, _ := data["result"].(float64); math.Abs(got-0.5) > 1e-12 {
		return fmt.Errorf("sin(30 deg) = %v, want 0.5", got)
	}

	// NEGATIVE: unknown unit. Schema validation may reject it before the
	// handler runs, so either a protocol error or IsError is acceptable.
	badResult, err := callToolRaw(ctx, s, "angle_convert", map[string]any{
		"angle": 1, "from": "furlongs", "to": "rad",
	})
	if err == nil && !badResult.IsError {
		return fmt.Errorf("NEG unknown unit: expected error, got success")
	}

	return nil
}

// ---------------------------------------------------------------------------
// error_handling — every error kind is distinguishable from the envelope.
// ---------------------------------------------------------------------------

func scenarioErrorHandling(ctx context.Context, s *mcp.ClientSession) error {
	cases := []struct {
		tool string
		args map[string]any
		kind string
	}{
		{"calculate", map[string]any{"expression": "2 +"}, "syntax_error"},
		{"calculate", map[string]any{"expression": "1 / 0"}, "division_by_zero"},
		{"calculate", map[string]any{"expression": "sqrt(-1)"}, "domain_error"},
		{"calculate", map[string]any{"expression": ""}, "invalid_argument"},
		{"calculate", map[string]any{"expression": "9 ** 999"}, "domain_error"},
	}
	for _, tc := range cases {
		kind, err := callToolErrorKind(ctx, s, tc.tool, tc.args)
		if err != nil {
			return err
		}
		if kind != tc.kind {
			return fmt.Errorf("%s(%v) kind = %q, want %q", tc.tool, tc.args, kind, tc.kind)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// agent_math_tutor — a tutoring agent walks a student through a problem:
// reads the grammar, evaluates the full expression, then verifies each
// sub-expression, exactly as the evaluate_stepwise prompt instructs.
// ---------------------------------------------------------------------------

func agentMathTutor(ctx context.Context, s *mcp.ClientSession) error {
	// Turn 1: the agent learns the expression language.
	grammarRes, err := s.ReadResource(ctx, &mcp.ReadResourceParams{URI: "mathmcp://grammar"})
	if err != nil {
		return fmt.Errorf("read grammar: %w", err)
	}
	if !strings.Contains(resourceText(grammarRes), "**") {
		return fmt.Errorf("grammar does not document the power operator")
	}

	// Turn 2: evaluate the student's expression.
	full, err := callToolJSON(ctx, s, "calculate", map[string]any{
		"expression": "(3 + 5) * 2 - sqrt(16)",
	})
	if err != nil {
		return err
	}
	if got, _ := full["result"].(float64); got != 12 {
		return fmt.Errorf("full expression = %v, want 12", got)
	}

	// Turn 3: verify each sub-expression the way a tutor would explain it.
	steps := []struct {
		expression string
		want       float64
	}{
		{"3 + 5", 8},
		{"8 * 2", 16},
		{"sqrt(16)", 4},
		{"16 - 4", 12},
	}
	for _, step := range steps {
		data, err := callToolJSON(ctx, s, "calculate", map[string]any{"expression": step.expression})
		if err != nil {
			return err
		}
		if got, _ := data["result"].(float64); got != step.want {
			return fmt.Errorf("step %q = %v, want %v", step.expression, got, step.want)
		}
	}

	// Turn 4: the student tries something invalid; the tutor gets a
	// structured error to explain with, not a protocol failure.
	kind, err := callToolErrorKind(ctx, s, "calculate", map[string]any{"expression": "sqrt(16"})
	if err != nil {
		return err
	}
	if kind != "syntax_error" {
		return fmt.Errorf("unterminated call kind = %q, want syntax_error", kind)
	}

	return nil
}

// ---------------------------------------------------------------------------
// agent_data_analyst — an analyst agent summarizes a dataset, then uses
// the summary to compute derived values with the direct operation tools.
// ---------------------------------------------------------------------------

func agentDataAnalyst(ctx context.Context, s *mcp.ClientSession) error {
	// Turn 1: summarize measurements.
	summary, err := callToolJSON(ctx, s, "stats", map[string]any{
		"data": []float64{12.1, 11.9, 12.3, 12.0, 11.8, 12.2, 12.1},
	})
	if err != nil {
		return err
	}
	mean, _ := summary["mean"].(float64)
	stddev, _ := summary["std_dev"].(float64)
	if mean == 0 {
		return fmt.Errorf("summary has no mean")
	}

	// Turn 2: compute a 2-sigma band from the summary.
	upper, err := callToolJSON(ctx, s, "binary_operation", map[string]any{
		"a": mean, "b": 2 * stddev, "operation": "+",
	})
	if err != nil {
		return err
	}
	if got, _ := upper["result"].(float64); got <= mean {
		return fmt.Errorf("upper band %v not above mean %v", got, mean)
	}

	// Turn 3: express the spread as a percentage of the mean.
	pct, err := callToolJSON(ctx, s, "calculate", map[string]any{
		"expression": fmt.Sprintf("%v / %v * 100", stddev, mean),
	})
	if err != nil {
		return err
	}
	if got, _ := pct["result"].(float64); got < 0 || got > 100 {
		return fmt.Errorf("spread percentage out of range: %v", got)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// callToolJSON calls a tool, asserts no error, and parses as JSON.
func callToolJSON(ctx context.Context, s *mcp.ClientSession, name string, args map[string]any) (map[string]any, error) {
	result, err := callToolRaw(ctx, s, name, args)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	if result.IsError {
		return nil, fmt.Errorf("call %s: tool error: %s", name, truncate(extractText(result), 200))
	}
	text := extractText(result)
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("call %s: parse JSON: %w (text: %s)", name, err, truncate(text, 100))
	}
	return data, nil
}

// callToolErrorKind calls a tool expecting a structured failure and returns
// the "kind" field from the error envelope.
func callToolErrorKind(ctx context.Context, s *mcp.ClientSession, name string, args map[string]any) (string, error) {
	result, err := callToolRaw(ctx, s, name, args)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", name, err)
	}
	if !result.IsError {
		return "", fmt.Errorf("call %s: expected error, got success: %s", name, truncate(extractText(result), 100))
	}
	var envelope struct {
		Kind string `json:"kind"`
	}
	text := extractText(result)
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return "", fmt.Errorf("call %s: error not structured: %s", name, truncate(text, 100))
	}
	return envelope.Kind, nil
}

func callToolRaw(ctx context.Context, s *mcp.ClientSession, name string, args map[string]any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal %s args: %w", name, err)
	}
	return s.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: json.RawMessage(payload)})
}

func extractText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if tc, ok := result.Content[0].(*mcp.TextContent); ok {
		return tc.Text
	}
	return fmt.Sprintf("%T", result.Content[0])
}

func resourceText(res *mcp.ReadResourceResult) string {
	if len(res.Contents) == 0 {
		return ""
	}
	return res.Contents[0].Text
}

func resourceJSON(res *mcp.ReadResourceResult) (map[string]any, error) {
	text := resourceText(res)
	if text == "" {
		return nil, fmt.Errorf("empty resource content")
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return data, nil
}

func promptText(result *mcp.GetPromptResult) string {
	data, err := json.Marshal(result)
	if err != nil {
		return ""
	}
	return string(data)
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

// ---------------------------------------------------------------------------
// Server lifecycle
// ---------------------------------------------------------------------------

func startServer(ctx context.Context, port int) (*exec.Cmd, error) {
	root, err := findRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("find repo root: %w", err)
	}

	cmd := exec.CommandContext(ctx, "go", "run", "./cmd/cli", "mcp", "--http", fmt.Sprintf(":%d", port))
	cmd.Dir = root
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func stopServer(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
	_, _ = cmd.Process.Wait()
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		modPath := dir + string(os.PathSeparator) + "go.mod"
		if data, err := os.ReadFile(modPath); err == nil {
			if strings.Contains(string(data), "module github.com/mathmcp/mathmcp\n") ||
				strings.Contains(string(data), "module github.com/mathmcp/mathmcp\r\n") {
				return dir, nil
			}
		}

		parent := dir[:max(strings.LastIndex(dir, string(os.PathSeparator)), 0)]
		if parent == dir || parent == "" {
			return "", fmt.Errorf("repo root not found walking up from %s", dir)
		}
		dir = parent
	}
}

func waitForHealth(ctx context.Context, port int) error {
	client := &http.Client{Timeout: 2 * time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)

	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
