// Package provider holds HTTP adapters for the opaque extraction and repair
// collaborators. Both speak plain JSON over POST; the engine treats their
// internals as a black box and only enforces its own invariants on what
// comes back.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// RepairClient implements domain.RepairProvider against a remote patch
// endpoint.
type RepairClient struct {
	url    string
	client *http.Client
}

func NewRepairClient(url string, timeout time.Duration) *RepairClient {
	return &RepairClient{url: url, client: &http.Client{Timeout: timeout}}
}

type patchRequest struct {
	Spec   domain.PipelineSpec `json:"spec"`
	Errors []string            `json:"errors"`
}

func (c *RepairClient) Patch(ctx context.Context, spec domain.PipelineSpec, gateErrors []string) (domain.SpecPatch, error) {
	var patch domain.SpecPatch
	err := postJSON(ctx, c.client, c.url, patchRequest{Spec: spec, Errors: gateErrors}, &patch)
	if err != nil {
		return domain.SpecPatch{}, fmt.Errorf("repair provider: %w", err)
	}
	return patch, nil
}

// ExtractionClient implements domain.ExtractionProvider against a remote
// extraction endpoint.
type ExtractionClient struct {
	url    string
	client *http.Client
}

func NewExtractionClient(url string, timeout time.Duration) *ExtractionClient {
	return &ExtractionClient{url: url, client: &http.Client{Timeout: timeout}}
}

type extractRequest struct {
	Document string              `json:"document"`
	Spec     domain.PipelineSpec `json:"spec"`
}

func (c *ExtractionClient) Extract(ctx context.Context, document string, spec domain.PipelineSpec) (domain.FileResult, error) {
	var result domain.FileResult
	err := postJSON(ctx, c.client, c.url, extractRequest{Document: document, Spec: spec}, &result)
	if err != nil {
		return domain.FileResult{}, fmt.Errorf("extraction provider: %w", err)
	}
	// Providers must report failures as failed results with at least one
	// error; normalize ones that do not.
	if !result.Success && len(result.Validation.Errors) == 0 {
		result.Validation.Errors = []string{domain.UnknownFailure}
	}
	if result.File == "" {
		result.File = document
	}
	return result, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
