package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/auditkraft/auditkraft/internal/domain"
	"github.com/auditkraft/auditkraft/internal/domain/actions"
	"github.com/auditkraft/auditkraft/internal/domain/aggregate"
	"github.com/auditkraft/auditkraft/internal/domain/scoring"
)

// SummarizeService orchestrates the aggregation pipeline: collect validation
// stats, fold metrics, score, classify, and recommend actions.
type SummarizeService struct {
	clock func() time.Time
	newID func() string
}

func NewSummarizeService() *SummarizeService {
	return &SummarizeService{clock: time.Now, newID: uuid.NewString}
}

// Summarize folds a result batch into an immutable summary snapshot plus the
// readiness score, compliance opinion, and remediation actions derived from
// it. Inputs are read-only; the snapshot is recomputed on every call.
func (s *SummarizeService) Summarize(blueprint domain.EvidenceBlueprint, results []domain.FileResult) *domain.AuditReport {
	stats := aggregate.Collect(results)

	summary := domain.BatchSummary{
		BatchID:          s.newID(),
		TotalFiles:       len(results),
		SuccessCount:     stats.SuccessCount,
		FailCount:        stats.FailCount,
		MetricAggregates: aggregate.AggregateMetrics(blueprint, results),
		FailureBreakdown: stats.FailureBreakdown,
		Anomalies:        stats.Anomalies,
		TopRisks:         stats.TopRisks,
		Timestamp:        s.clock(),
	}

	score := scoring.ReadinessScore(summary.TotalFiles, summary.SuccessCount, summary.FailCount)
	opinion := scoring.ClassifyCompliance(score, summary.TotalFiles, summary.FailCount, len(summary.Anomalies))

	return &domain.AuditReport{
		Summary:        summary,
		ReadinessScore: score,
		Opinion:        opinion,
		Actions:        actions.Recommend(summary),
	}
}
