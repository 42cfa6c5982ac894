package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/application"
	"github.com/auditkraft/auditkraft/internal/domain"
)

// scriptedProvider returns each patch in order, then repeats the last one.
type scriptedProvider struct {
	patches []domain.SpecPatch
	err     error
	calls   int
}

func (p *scriptedProvider) Patch(_ context.Context, _ domain.PipelineSpec, _ []string) (domain.SpecPatch, error) {
	p.calls++
	if p.err != nil {
		return domain.SpecPatch{}, p.err
	}
	idx := p.calls - 1
	if idx >= len(p.patches) {
		idx = len(p.patches) - 1
	}
	return p.patches[idx], nil
}

func blockedSpec() domain.PipelineSpec {
	return domain.PipelineSpec{
		ID:           "spec-9",
		EvidenceType: "x",
		Version:      "1.0.0",
	}
}

func TestRepairUntilValid_ConvergesAndReportsValid(t *testing.T) {
	provider := &scriptedProvider{patches: []domain.SpecPatch{{
		EvidenceType:  "utility_bill",
		InputSchema:   []domain.SchemaField{{Key: "kwh", Type: "number", Required: true}},
		OutputMetrics: []string{"energyConsumed"},
	}}}
	svc := application.NewRepairService(provider, 3)

	repaired, report, err := svc.RepairUntilValid(context.Background(), blockedSpec())

	require.NoError(t, err)
	assert.True(t, report.IsValid)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "1.1", repaired.Version)
	assert.Len(t, repaired.RepairHistory, 1)
}

func TestRepairUntilValid_StopsAtAttemptBound(t *testing.T) {
	// The provider keeps returning a patch that fixes nothing.
	provider := &scriptedProvider{patches: []domain.SpecPatch{{}}}
	svc := application.NewRepairService(provider, 2)

	repaired, report, err := svc.RepairUntilValid(context.Background(), blockedSpec())

	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Equal(t, 2, provider.calls)
	assert.Len(t, repaired.RepairHistory, 2, "one history entry per attempt")
}

func TestRepairUntilValid_ValidSpecSkipsRepair(t *testing.T) {
	provider := &scriptedProvider{patches: []domain.SpecPatch{{}}}
	svc := application.NewRepairService(provider, 3)
	spec := domain.PipelineSpec{
		ID:            "spec-ok",
		EvidenceType:  "utility_bill",
		InputSchema:   []domain.SchemaField{{Key: "kwh", Type: "number"}},
		OutputMetrics: []string{"energyConsumed"},
		Version:       "1.0.0",
	}

	repaired, report, err := svc.RepairUntilValid(context.Background(), spec)

	require.NoError(t, err)
	assert.True(t, report.IsValid)
	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, "1.0.0", repaired.Version, "untouched spec keeps its version")
}

func TestRepairUntilValid_ProviderFailureReturnsOriginal(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("model unavailable")}
	svc := application.NewRepairService(provider, 3)
	spec := blockedSpec()

	returned, report, err := svc.RepairUntilValid(context.Background(), spec)

	require.Error(t, err)
	assert.ErrorContains(t, err, "repair attempt 1")
	assert.Equal(t, spec, returned)
	assert.False(t, report.IsValid)
}

func TestNewRepairService_ClampsAttemptsToOne(t *testing.T) {
	provider := &scriptedProvider{patches: []domain.SpecPatch{{}}}
	svc := application.NewRepairService(provider, 0)

	_, _, err := svc.RepairUntilValid(context.Background(), blockedSpec())

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}
