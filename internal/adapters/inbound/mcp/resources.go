package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/blueprintfile"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/history"
)

// registerResources registers all AuditKraft MCP resources on the given
// server.
func registerResources(s *server.MCPServer, workspacePath string) {
	// 1. auditkraft://blueprint - the approved evidence blueprint
	s.AddResource(
		mcplib.NewResource(
			"auditkraft://blueprint",
			"Evidence Blueprint",
			mcplib.WithResourceDescription("Approved blueprint of required metrics and units"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBlueprintResource(workspacePath),
	)

	// 2. auditkraft://history - stored summary snapshots
	s.AddResource(
		mcplib.NewResource(
			"auditkraft://history",
			"Summary History",
			mcplib.WithResourceDescription("Readiness and compliance history for the workspace"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(workspacePath),
	)
}

func handleBlueprintResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		blueprint, err := blueprintfile.New().Load(filepath.Join(workspacePath, "blueprint.yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading blueprint: %w", err)
		}

		data, err := json.MarshalIndent(blueprint, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling blueprint: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "auditkraft://blueprint",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(workspacePath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "auditkraft://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
