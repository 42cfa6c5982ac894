package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/application"
	"github.com/auditkraft/auditkraft/internal/domain"
)

func TestSummarize_MixedBatchProducesFullReport(t *testing.T) {
	blueprint := domain.EvidenceBlueprint{
		Company: "acme",
		RequiredMetrics: []domain.RequiredMetric{
			{ID: "m1", Unit: "kWh"},
		},
	}
	results := []domain.FileResult{
		{ID: "f1", Success: true, Metrics: map[string]domain.MetricValue{"m1": domain.NumberValue(100)}},
		{ID: "f2", Success: false, Validation: domain.ValidationOutcome{Errors: []string{"E1"}}},
	}

	report := application.NewSummarizeService().Summarize(blueprint, results)

	require.NotNil(t, report)
	assert.Equal(t, 2, report.Summary.TotalFiles)
	assert.Equal(t, 1, report.Summary.SuccessCount)
	assert.Equal(t, 1, report.Summary.FailCount)

	agg, ok := report.Summary.MetricAggregates["m1"]
	require.True(t, ok)
	assert.Equal(t, 100.0, agg.Total)
	assert.Equal(t, 1, agg.Count)
	assert.Equal(t, "kWh", agg.Unit)

	assert.Equal(t, map[string]int{"E1": 1}, report.Summary.FailureBreakdown)

	var reprocess int
	for _, a := range report.Actions {
		if a.Type == domain.ActionReprocess {
			reprocess++
			assert.Contains(t, a.Description, "E1")
		}
	}
	assert.Equal(t, 1, reprocess)
}

func TestSummarize_EmptyBatchFailsClosed(t *testing.T) {
	report := application.NewSummarizeService().Summarize(domain.EvidenceBlueprint{}, nil)

	assert.Equal(t, 0, report.Summary.TotalFiles)
	assert.Equal(t, 0.0, report.ReadinessScore)
	assert.Equal(t, domain.OpinionFail, report.Opinion)
	assert.Empty(t, report.Actions)
	assert.Empty(t, report.Summary.MetricAggregates)
}

func TestSummarize_EachCallGetsFreshBatchID(t *testing.T) {
	svc := application.NewSummarizeService()
	results := []domain.FileResult{{ID: "f1", Success: true}}

	first := svc.Summarize(domain.EvidenceBlueprint{}, results)
	second := svc.Summarize(domain.EvidenceBlueprint{}, results)

	assert.NotEmpty(t, first.Summary.BatchID)
	assert.NotEqual(t, first.Summary.BatchID, second.Summary.BatchID)
	assert.False(t, first.Summary.Timestamp.IsZero())
}

func TestSummarize_AnomaliesDowngradeToConditional(t *testing.T) {
	results := []domain.FileResult{
		{ID: "f1", Success: true, Validation: domain.ValidationOutcome{Warnings: []string{"late upload"}}},
		{ID: "f2", Success: true},
		{ID: "f3", Success: true},
	}

	report := application.NewSummarizeService().Summarize(domain.EvidenceBlueprint{}, results)

	assert.Equal(t, 100.0, report.ReadinessScore)
	assert.Equal(t, domain.OpinionConditional, report.Opinion)
	require.Len(t, report.Summary.Anomalies, 1)
	assert.Equal(t, "[WARN] late upload", report.Summary.Anomalies[0])
}
