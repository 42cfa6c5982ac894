package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/auditkraft/auditkraft/internal/adapters/inbound/mcp"
)

func TestNewAuditKraftMCPServer(t *testing.T) {
	s, err := mcpadapter.NewAuditKraftMCPServer(".")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s, err := mcpadapter.NewAuditKraftMCPServer(".")
	require.NoError(t, err)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"auditkraft_verify",
		"auditkraft_repair",
		"auditkraft_summarize",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
