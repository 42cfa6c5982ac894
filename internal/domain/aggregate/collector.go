package aggregate

import (
	"sort"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// topRiskLimit caps how many ranked risks a summary carries.
const topRiskLimit = 3

// ValidationStats is the collector's fold over a result batch: the
// success/failure partition, the failure breakdown by first error, the flat
// anomaly log, and the ranked risk tally.
type ValidationStats struct {
	SuccessCount     int
	FailCount        int
	FailureBreakdown map[string]int
	Anomalies        []string
	RiskTally        map[string]int
	TopRisks         []domain.RiskCount
}

// Collect partitions results by the Success flag alone. Failures feed the
// failure breakdown keyed by first error; successes contribute warnings and
// flagged risks to the anomaly log, with risks additionally tallied and
// ranked. Ties in the ranking keep first-seen order.
func Collect(results []domain.FileResult) ValidationStats {
	stats := ValidationStats{
		FailureBreakdown: make(map[string]int),
		RiskTally:        make(map[string]int),
	}
	var riskOrder []string

	for _, r := range results {
		if !r.Success {
			stats.FailCount++
			stats.FailureBreakdown[r.FirstError()]++
			continue
		}
		stats.SuccessCount++
		for _, w := range r.Validation.Warnings {
			stats.Anomalies = append(stats.Anomalies, "[WARN] "+w)
		}
		for _, risk := range r.Validation.RisksFlagged {
			stats.Anomalies = append(stats.Anomalies, "[RISK] "+risk)
			if _, seen := stats.RiskTally[risk]; !seen {
				riskOrder = append(riskOrder, risk)
			}
			stats.RiskTally[risk]++
		}
	}

	stats.TopRisks = rankRisks(stats.RiskTally, riskOrder)
	return stats
}

func rankRisks(tally map[string]int, firstSeen []string) []domain.RiskCount {
	if len(firstSeen) == 0 {
		return nil
	}
	ranked := make([]domain.RiskCount, 0, len(firstSeen))
	for _, risk := range firstSeen {
		ranked = append(ranked, domain.RiskCount{Risk: risk, Count: tally[risk]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topRiskLimit {
		ranked = ranked[:topRiskLimit]
	}
	return ranked
}
