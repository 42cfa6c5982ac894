package domain

import "time"

// MetricAggregate is the folded total for one metric-id across a batch.
// Totals accumulate only from successful results; a metric-id never observed
// with a numeric value must not appear at all.
type MetricAggregate struct {
	Total             float64 `json:"total"`
	Count             int     `json:"count"`
	Unit              string  `json:"unit"`
	AnomaliesDetected int     `json:"anomalies_detected"`
}

// RiskCount pairs a flagged risk with its occurrence count.
type RiskCount struct {
	Risk  string `json:"risk"`
	Count int    `json:"count"`
}

// BatchSummary is the immutable snapshot of one aggregation pass over a
// result batch. Recomputed per pass, never mutated in place.
type BatchSummary struct {
	BatchID          string                     `json:"batch_id,omitempty"`
	TotalFiles       int                        `json:"total_files"`
	SuccessCount     int                        `json:"success_count"`
	FailCount        int                        `json:"fail_count"`
	MetricAggregates map[string]MetricAggregate `json:"metric_aggregates"`
	FailureBreakdown map[string]int             `json:"failure_breakdown"`
	Anomalies        []string                   `json:"anomalies,omitempty"`
	TopRisks         []RiskCount                `json:"top_risks,omitempty"`
	Timestamp        time.Time                  `json:"timestamp"`
	CommitHash       string                     `json:"commit_hash,omitempty"`
}

// ComplianceOpinion is the ternary compliance classification.
type ComplianceOpinion string

const (
	OpinionPass        ComplianceOpinion = "PASS"
	OpinionConditional ComplianceOpinion = "CONDITIONAL"
	OpinionFail        ComplianceOpinion = "FAIL"
)

// AuditReport bundles everything summarize produces for one batch.
type AuditReport struct {
	Summary        BatchSummary      `json:"summary"`
	ReadinessScore float64           `json:"readiness_score"`
	Opinion        ComplianceOpinion `json:"opinion"`
	Actions        []Action          `json:"actions,omitempty"`
}

// SummaryEntry is one line of the persisted summary history.
type SummaryEntry struct {
	ID             string  `json:"id"`
	Timestamp      string  `json:"timestamp"`
	CommitHash     string  `json:"commit_hash,omitempty"`
	TotalFiles     int     `json:"total_files"`
	ReadinessScore float64 `json:"readiness_score"`
	Opinion        string  `json:"opinion"`
}
