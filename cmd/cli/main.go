package main

import (
	"fmt"
	"os"

	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUsage)
	}

	switch os.Args[1] {
	case "mcp", "serve", "server":
		runMCP()
	case "eval", "calc", "calculate":
		runEval()
	case "-v", "--version", "version":
		fmt.Printf("%s %s\n", defaults.ToolName, ui.Version)
		os.Exit(defaults.ExitOK)
	case "-h", "--help", "help":
		printUsage()
		os.Exit(defaults.ExitOK)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(defaults.ExitUsage)
	}
}

func printUsage() {
	out := os.Stderr
	fmt.Fprintf(out, "%s\n\n", ui.TitleStyle.Render(defaults.ToolNameDisplay))
	fmt.Fprintf(out, "Usage: %s <command> [flags]\n\n", defaults.ToolName)
	fmt.Fprintf(out, "%s\n", ui.SectionStyle.Render("Commands:"))
	fmt.Fprintf(out, "  mcp        Start the MCP server (stdio or HTTP transport)\n")
	fmt.Fprintf(out, "  eval       Evaluate an expression from the command line\n")
	fmt.Fprintf(out, "  version    Print the version\n\n")
	fmt.Fprintf(out, "%s\n", ui.SectionStyle.Render("Examples:"))
	fmt.Fprintf(out, "  %s mcp --stdio\n", defaults.ToolName)
	fmt.Fprintf(out, "  %s mcp --http :8080\n", defaults.ToolName)
	fmt.Fprintf(out, "  %s eval '2 + 3 * 4'\n", defaults.ToolName)
	fmt.Fprintf(out, "  %s eval --json 'sqrt(2 + 2) * (3 + 4)'\n\n", defaults.ToolName)
	fmt.Fprintf(out, "%s\n", ui.HelpStyle.Render("Run '"+defaults.ToolName+" <command> --help' for command flags."))
}

// envOrDefault returns the environment variable value if set, otherwise the default.
func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
