package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitelint/sitelint/internal/adapters/outbound/config"
)

// registerResources registers all sitelint MCP resources on the given server.
func registerResources(s *server.MCPServer, sitePath string) {
	// 1. sitelint://report - current audit result
	s.AddResource(
		mcplib.NewResource(
			"sitelint://report",
			"Audit Report",
			mcplib.WithResourceDescription("Current structural health audit for the site"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(sitePath),
	)

	// 2. sitelint://config - effective audit configuration
	s.AddResource(
		mcplib.NewResource(
			"sitelint://config",
			"Audit Configuration",
			mcplib.WithResourceDescription("Effective audit configuration (defaults plus .sitelint.yaml overlay)"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(sitePath),
	)
}

func handleReportResource(sitePath string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		res, err := newService().Audit(ctx, sitePath)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "sitelint://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleConfigResource(sitePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(sitePath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		view := map[string]any{
			"base_url":               cfg.BaseURL,
			"ignore_dirs":            cfg.IgnoreDirs,
			"ignore_file_substrings": cfg.IgnoreFileSubstrings,
			"ignore_href_prefixes":   cfg.IgnoreHrefPrefixes,
			"penalties":              cfg.Penalties,
			"workers":                cfg.Workers,
			"timeout":                cfg.Timeout.String(),
		}

		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "sitelint://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
