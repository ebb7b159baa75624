// Package mcpserver exposes the math evaluation engine over the Model
// Context Protocol. It registers the calculator and numeric tools,
// domain-knowledge resources, and guided prompts on an mcp.Server, and
// provides stdio and HTTP transports.
//
// The stdio transport is the primary mode for IDE integrations (VS Code,
// Claude Desktop, Cursor). The HTTP handler serves the streamable HTTP
// transport plus a legacy SSE endpoint, a /health probe, and an optional
// Prometheus /metrics endpoint.
package mcpserver
