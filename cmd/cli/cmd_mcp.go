package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mathmcp/mathmcp/pkg/config"
	"github.com/mathmcp/mathmcp/pkg/defaults"
	"github.com/mathmcp/mathmcp/pkg/mcpserver"
	"github.com/mathmcp/mathmcp/pkg/ui"
)

// runMCP starts the MCP (Model Context Protocol) server.
// Supports two transport modes:
//   - --stdio (default): For IDE integrations (VS Code, Claude Desktop, Cursor)
//   - --http <addr>:     For remote/Docker deployments with session management
func runMCP() {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)

	stdio := fs.Bool("stdio", true, "Use stdio transport (default, for IDE integration)")
	httpAddr := fs.String("http", "", "HTTP address to listen on (e.g. :8080). Disables stdio.")
	configPath := fs.String("config", envOrDefault("MATH_MCP_CONFIG", ""), "Path to YAML config file")
	silent := fs.Bool("silent", false, "Suppress the banner")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s mcp [flags]\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Start an MCP server exposing math tools to AI agents.\n\n")
		fmt.Fprintf(os.Stderr, "Transports:\n")
		fmt.Fprintf(os.Stderr, "  --stdio          Stdio transport for IDE integration (default)\n")
		fmt.Fprintf(os.Stderr, "  --http <addr>    Streamable HTTP transport for remote/Docker\n\n")
		fmt.Fprintf(os.Stderr, "Environment variables:\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_CONFIG              Config file path (same as --config)\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_HTTP_ADDR           HTTP listen address (same as --http)\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_RATE_LIMIT          Requests per second across all clients\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_MAX_EXPRESSION_LEN  Expression length limit in bytes\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_MAX_STATS_INPUT     Dataset size limit for the stats tool\n")
		fmt.Fprintf(os.Stderr, "  MATH_MCP_METRICS             Enable the /metrics endpoint (true/false)\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s mcp --stdio\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  %s mcp --http :8080\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  MATH_MCP_RATE_LIMIT=50 %s mcp --http :8080\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(defaults.ExitError)
	}

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(defaults.ExitError)
	}

	// Flag beats config file and environment.
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	srv := mcpserver.New(cfg)
	srv.MarkReady()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.HTTPAddr != "" {
		// HTTP transport mode
		*stdio = false

		ui.PrintBanner()
		ui.PrintConfigBanner(map[string]string{
			"Transport":       "http",
			"Listen":          cfg.HTTPAddr,
			"Rate Limit":      strconv.Itoa(cfg.RateLimit) + "/s",
			"Metrics":         strconv.FormatBool(cfg.Metrics),
			"Max Expression":  strconv.Itoa(cfg.MaxExpressionLen),
			"Max Stats Input": strconv.Itoa(cfg.MaxStatsInput),
		})

		httpSrv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           srv.HTTPHandler(),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			// WriteTimeout intentionally 0: SSE streams are long-lived and
			// any non-zero value sets an absolute deadline that kills SSE
			// connections. ReadHeaderTimeout + ReadTimeout protect against
			// slowloris.
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		}

		go func() {
			<-ctx.Done()
			// Graceful shutdown: drain in-flight requests within 15 seconds
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer shutdownCancel()
			fmt.Fprintf(os.Stderr, "%s shutting down gracefully…\n", ui.UserAgent())
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
			}
		}()

		fmt.Fprintf(os.Stderr, "%s MCP server listening on %s (HTTP transport)\n",
			ui.UserAgent(), cfg.HTTPAddr)

		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(defaults.ExitError)
		}
		return
	}

	// Stdio transport mode (default). The protocol owns stdout, so no banner.
	if *stdio {
		if err := srv.RunStdio(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(defaults.ExitError)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "error: no transport selected — use --stdio or --http <addr>\n")
	os.Exit(defaults.ExitError)
}
