package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/blueprintfile"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/config"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/provider"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/resultstore"
	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/application"
	"github.com/auditkraft/auditkraft/internal/domain"
)

// registerTools registers all AuditKraft MCP tools on the given server.
func registerTools(s *server.MCPServer, workspacePath string) error {
	store, err := specstore.New()
	if err != nil {
		return fmt.Errorf("initializing spec store: %w", err)
	}

	// 1. auditkraft_verify
	s.AddTool(
		mcplib.NewTool("auditkraft_verify",
			mcplib.WithDescription("Run the guardrail gates over a pipeline spec file and return the gate report as JSON"),
			mcplib.WithString("spec",
				mcplib.Required(),
				mcplib.Description("Path to the spec file, relative to the workspace"),
			),
		),
		handleVerify(workspacePath, store),
	)

	// 2. auditkraft_repair
	s.AddTool(
		mcplib.NewTool("auditkraft_repair",
			mcplib.WithDescription("Repair a failing pipeline spec and return the repaired document. Does not save; the caller persists the result."),
			mcplib.WithString("spec",
				mcplib.Required(),
				mcplib.Description("Path to the spec file, relative to the workspace"),
			),
		),
		handleRepair(workspacePath, store),
	)

	// 3. auditkraft_summarize
	s.AddTool(
		mcplib.NewTool("auditkraft_summarize",
			mcplib.WithDescription("Aggregate stored extraction results into readiness score, compliance opinion, and remediation actions"),
			mcplib.WithString("results",
				mcplib.Required(),
				mcplib.Description("Directory of FileResult JSON documents, relative to the workspace"),
			),
			mcplib.WithString("blueprint",
				mcplib.Description("Blueprint path (default: blueprint.yaml)"),
			),
		),
		handleSummarize(workspacePath),
	)

	return nil
}

func handleVerify(workspacePath string, store *specstore.Store) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		specPath, err := request.RequireString("spec")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewVerifyService(store)
		_, report, err := svc.VerifyFile(filepath.Join(workspacePath, specPath))
		if err != nil {
			return errorResult(fmt.Sprintf("verification failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRepair(workspacePath string, store *specstore.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		specPath, err := request.RequireString("spec")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(workspacePath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		spec, err := store.Load(filepath.Join(workspacePath, specPath))
		if err != nil {
			return errorResult(fmt.Sprintf("loading spec: %v", err)), nil
		}

		var repairProvider domain.RepairProvider
		if cfg.Provider.RepairURL != "" {
			repairProvider = provider.NewRepairClient(
				cfg.Provider.RepairURL,
				time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
			)
		}

		svc := application.NewRepairService(repairProvider, cfg.Repair.MaxAttempts)
		repaired, report, err := svc.RepairUntilValid(ctx, spec)
		if err != nil {
			return errorResult(fmt.Sprintf("repair failed: %v", err)), nil
		}

		return jsonResult(struct {
			Spec   domain.PipelineSpec       `json:"spec"`
			Report domain.VerificationReport `json:"report"`
		}{repaired, report})
	}
}

func handleSummarize(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		resultsDir, err := request.RequireString("results")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		blueprintPath := request.GetString("blueprint", "blueprint.yaml")

		blueprint, err := blueprintfile.New().Load(filepath.Join(workspacePath, blueprintPath))
		if err != nil {
			return errorResult(fmt.Sprintf("loading blueprint: %v", err)), nil
		}

		results, err := resultstore.New().LoadDir(filepath.Join(workspacePath, resultsDir))
		if err != nil {
			return errorResult(fmt.Sprintf("loading results: %v", err)), nil
		}

		report := application.NewSummarizeService().Summarize(blueprint, results)
		return jsonResult(report)
	}
}

// jsonResult returns an indented JSON content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
