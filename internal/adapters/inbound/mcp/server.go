package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAuditKraftMCPServer creates a new MCP server with all AuditKraft tools
// and resources registered. The workspacePath is the directory holding specs,
// results, and the blueprint.
func NewAuditKraftMCPServer(workspacePath string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		"auditkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	if err := registerTools(s, workspacePath); err != nil {
		return nil, err
	}
	registerResources(s, workspacePath)

	return s, nil
}
