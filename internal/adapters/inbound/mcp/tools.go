package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitelint/sitelint/internal/adapters/outbound/config"
	"github.com/sitelint/sitelint/internal/adapters/outbound/history"
	"github.com/sitelint/sitelint/internal/adapters/outbound/homepage"
	"github.com/sitelint/sitelint/internal/adapters/outbound/probe"
	"github.com/sitelint/sitelint/internal/adapters/outbound/scanner"
	"github.com/sitelint/sitelint/internal/application"
)

// registerTools registers all sitelint MCP tools on the given server.
func registerTools(s *server.MCPServer, sitePath string) {
	// 1. sitelint_audit
	s.AddTool(
		mcplib.NewTool("sitelint_audit",
			mcplib.WithDescription("Run a full structural audit of the site and return the result as JSON (score, issues, inbound-link histogram, external links)"),
		),
		handleAudit(sitePath),
	)

	// 2. sitelint_history
	s.AddTool(
		mcplib.NewTool("sitelint_history",
			mcplib.WithDescription("Return the persisted audit history for the site"),
		),
		handleHistory(sitePath),
	)
}

// newService creates the standard set of outbound adapters and the
// audit service.
func newService() *application.AuditService {
	return application.NewAuditService(
		config.New(),
		homepage.New(),
		scanner.New(),
		scanner.NewOracle(),
		probe.New(),
	)
}

func handleAudit(sitePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res, err := newService().Audit(ctx, sitePath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleHistory(sitePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(sitePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
