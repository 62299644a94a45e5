package cli

import (
	mcpadapter "github.com/sitelint/sitelint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the sitelint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var sitePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start sitelint MCP server (stdio)",
		Long:  "Start the sitelint MCP server using stdio transport. This allows AI assistants to run site audits and read the audit configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sitePath == "" {
				sitePath = "."
			}
			s := mcpadapter.NewSitelintMCPServer(sitePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&sitePath, "path", "", "Site path (defaults to current working directory)")

	return cmd
}
