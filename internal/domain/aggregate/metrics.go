package aggregate

import (
	"github.com/auditkraft/auditkraft/internal/domain"
)

// AggregateMetrics folds per-file numeric metrics into per-metric totals.
// Only successful results contribute, and the key set is exactly the
// metric-ids observed with at least one numeric value in a successful result:
// a required metric that was never observed must not appear with zero totals.
// Non-numeric values are skipped for that file only and counted as anomalies
// on the metric once it exists.
func AggregateMetrics(blueprint domain.EvidenceBlueprint, results []domain.FileResult) map[string]domain.MetricAggregate {
	out := make(map[string]domain.MetricAggregate)
	skippedText := make(map[string]int)

	for _, r := range results {
		if !r.Success {
			continue
		}
		for id, v := range r.Metrics {
			if !v.Numeric {
				skippedText[id]++
				continue
			}
			agg, ok := out[id]
			if !ok {
				agg = domain.MetricAggregate{Unit: blueprint.UnitFor(id)}
			}
			agg.Total += v.Number
			agg.Count++
			out[id] = agg
		}
	}

	// Surface skipped non-numeric observations, but never create a key for a
	// metric that produced no numeric value anywhere.
	for id, n := range skippedText {
		if agg, ok := out[id]; ok {
			agg.AnomaliesDetected += n
			out[id] = agg
		}
	}

	return out
}
