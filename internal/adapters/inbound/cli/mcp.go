package cli

import (
	mcpadapter "github.com/auditkraft/auditkraft/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the AuditKraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var workspacePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start AuditKraft MCP server (stdio)",
		Long:  "Start the AuditKraft MCP server using stdio transport. This lets AI assistants verify specs, trigger repairs, and read summaries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workspacePath == "" {
				workspacePath = "."
			}
			s, err := mcpadapter.NewAuditKraftMCPServer(workspacePath)
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workspacePath, "path", "", "Workspace path (defaults to current working directory)")

	return cmd
}
