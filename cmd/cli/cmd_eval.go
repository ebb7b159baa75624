package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/expr"
	"github.com/mathmcp/mathmcp/pkg/jsonutil"
	"github.com/mathmcp/mathmcp/pkg/mathops"
	"github.com/mathmcp/mathmcp/pkg/ui"
)

// runEval evaluates expressions from the command line or stdin. This is the
// quick local check that needs no MCP client: the same evaluator the server
// uses, one expression per line.
func runEval() {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)

	jsonOut := fs.Bool("json", false, "Emit results as JSON")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s eval [flags] <expression>\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Evaluate a mathematical expression. With no argument, reads one\n")
		fmt.Fprintf(os.Stderr, "expression per line from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s eval '2 + 3 * 4'\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  %s eval --json 'log(2, 1024)'\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  echo 'sqrt(144)' | %s eval\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(defaults.ExitError)
	}
	ui.SetNoColor(*noColor)

	if fs.NArg() > 0 {
		input := strings.Join(fs.Args(), " ")
		os.Exit(evalOne(input, *jsonOut))
	}

	// Stdin mode: evaluate each line, keep going past failures, and exit
	// non-zero if any line failed.
	exit := defaults.ExitOK
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if code := evalOne(line, *jsonOut); code != defaults.ExitOK {
			exit = code
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading stdin: %v\n", err)
		exit = defaults.ExitError
	}
	os.Exit(exit)
}

type evalOutput struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	Formatted  string   `json:"formatted,omitempty"`
	ErrorKind  string   `json:"error_kind,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// evalOne evaluates a single expression and prints the outcome. Returns the
// process exit code for this expression.
func evalOne(input string, jsonOut bool) int {
	value, err := expr.Evaluate(input)
	if err != nil {
		kind := evalErrorKind(err)
		if jsonOut {
			data, _ := jsonutil.Marshal(evalOutput{
				Expression: input,
				ErrorKind:  kind,
				Error:      err.Error(),
			})
			fmt.Println(string(data))
		} else {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorKindStyle(kind).Render(kind+":"), err)
		}
		return defaults.ExitEvalError
	}

	if jsonOut {
		data, _ := jsonutil.Marshal(evalOutput{
			Expression: input,
			Result:     &value,
			Formatted:  mathops.FormatNumber(value),
		})
		fmt.Println(string(data))
	} else {
		fmt.Println(mathops.FormatNumber(value))
	}
	return defaults.ExitOK
}

// evalErrorKind maps an evaluation error to its external kind code.
func evalErrorKind(err error) string {
	var syn *expr.SyntaxError
	var div *mathops.DivisionByZeroError
	var dom *mathops.DomainError
	switch {
	case errors.As(err, &syn):
		return "syntax_error"
	case errors.As(err, &div):
		return "division_by_zero"
	case errors.As(err, &dom):
		return "domain_error"
	default:
		return "error"
	}
}
