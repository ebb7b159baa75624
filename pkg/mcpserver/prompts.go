package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds all guided workflow prompts to the MCP server.
func (s *Server) registerPrompts() {
	s.addEvaluateStepwisePrompt()
	s.addAnalyzeDatasetPrompt()
}

// ═══════════════════════════════════════════════════════════════════════════
// evaluate_stepwise — Show the work behind an expression
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addEvaluateStepwisePrompt() {
	s.mcp.AddPrompt(
		&mcp.Prompt{
			Name:        "evaluate_stepwise",
			Description: "Evaluate an expression and walk through the precedence-ordered steps, so the user can verify each intermediate value.",
			Arguments: []*mcp.PromptArgument{
				{Name: "expression", Description: "Expression to evaluate (e.g. \"2 + 3 * 4\")", Required: true},
			},
		},
		func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			expression := req.Params.Arguments["expression"]
			if expression == "" {
				return nil, fmt.Errorf("'expression' argument is required")
			}

			return &mcp.GetPromptResult{
				Description: fmt.Sprintf("Stepwise evaluation: %s", expression),
				Messages: []*mcp.PromptMessage{
					{
						Role: "user",
						Content: &mcp.TextContent{
							Text: fmt.Sprintf(`Evaluate this expression and show your work: %s

1. Read the mathmcp://grammar resource to confirm operator precedence
2. Call calculate with {"expression": %q} — the "parsed" field shows the fully parenthesized grouping
3. Using that grouping, list each sub-expression in evaluation order and verify it with its own calculate or binary_operation call
4. Present a numbered step list ending with the final result
5. If any step returns an error envelope, stop and explain the kind and message instead of guessing a value`,
								expression, expression),
						},
					},
				},
			}, nil
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// analyze_dataset — Guided statistical analysis
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addAnalyzeDatasetPrompt() {
	s.mcp.AddPrompt(
		&mcp.Prompt{
			Name:        "analyze_dataset",
			Description: "Run descriptive statistics on a dataset and interpret the distribution: center, spread, and outliers.",
			Arguments: []*mcp.PromptArgument{
				{Name: "data", Description: "JSON array of numbers (e.g. \"[2, 4, 4, 5, 9]\")", Required: true},
				{Name: "context", Description: "What the numbers measure (e.g. \"response times in ms\")", Required: false},
			},
		},
		func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			data := req.Params.Arguments["data"]
			if data == "" {
				return nil, fmt.Errorf("'data' argument is required")
			}
			dataContext := req.Params.Arguments["context"]
			if dataContext == "" {
				dataContext = "the dataset"
			}

			return &mcp.GetPromptResult{
				Description: fmt.Sprintf("Dataset analysis: %s", dataContext),
				Messages: []*mcp.PromptMessage{
					{
						Role: "user",
						Content: &mcp.TextContent{
							Text: fmt.Sprintf(`Analyze %s: %s

1. Call stats with {"data": %s}
2. Report the center: mean vs median — if they differ noticeably, say which direction the data skews
3. Report the spread: range, variance, standard deviation; note that these are sample statistics
4. If mode is present, state it; if absent, note that no single value dominates
5. Flag values more than 2 standard deviations from the mean as potential outliers (verify the threshold with calculate)
6. Close with a plain-language summary of the distribution`,
								dataContext, data, data),
						},
					},
				},
			}, nil
		},
	)
}
