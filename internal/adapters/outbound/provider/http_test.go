package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/provider"
	"github.com/auditkraft/auditkraft/internal/domain"
)

func TestRepairClient_PostsSpecAndErrors(t *testing.T) {
	var got struct {
		Spec   domain.PipelineSpec `json:"spec"`
		Errors []string            `json:"errors"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(domain.SpecPatch{EvidenceType: "utility_bill"})
	}))
	defer srv.Close()

	client := provider.NewRepairClient(srv.URL, time.Second)
	patch, err := client.Patch(context.Background(),
		domain.PipelineSpec{ID: "spec-1", Version: "1.0.0"},
		[]string{"Input schema is empty. No fields detected for extraction."})

	require.NoError(t, err)
	assert.Equal(t, "utility_bill", patch.EvidenceType)
	assert.Equal(t, "spec-1", got.Spec.ID)
	require.Len(t, got.Errors, 1)
}

func TestRepairClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := provider.NewRepairClient(srv.URL, time.Second).Patch(context.Background(), domain.PipelineSpec{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestExtractionClient_NormalizesSilentFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(domain.FileResult{ID: "f1", Success: false})
	}))
	defer srv.Close()

	result, err := provider.NewExtractionClient(srv.URL, time.Second).
		Extract(context.Background(), "bill.pdf", domain.PipelineSpec{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{domain.UnknownFailure}, result.Validation.Errors)
	assert.Equal(t, "bill.pdf", result.File, "document name backfills a missing file field")
}

func TestExtractionClient_PassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Document string `json:"document"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(domain.FileResult{
			ID:      "f1",
			File:    req.Document,
			Success: true,
			Metrics: map[string]domain.MetricValue{"energyConsumed": domain.NumberValue(120)},
		})
	}))
	defer srv.Close()

	result, err := provider.NewExtractionClient(srv.URL, time.Second).
		Extract(context.Background(), "bill.pdf", domain.PipelineSpec{})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 120.0, result.Metrics["energyConsumed"].Number)
}

func TestExtractionClient_UnreachableEndpoint(t *testing.T) {
	client := provider.NewExtractionClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := client.Extract(context.Background(), "bill.pdf", domain.PipelineSpec{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction provider")
}
