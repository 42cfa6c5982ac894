// Package actions derives remediation actions from a batch summary.
package actions

import (
	"fmt"
	"sort"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// Recommend maps failure and risk statistics to ordered remediation actions.
// A failing batch yields one reprocess action citing the most frequent
// failure category; a batch with flagged risks yields one ticket action
// citing the top risk. When both apply, reprocess always comes first.
func Recommend(summary domain.BatchSummary) []domain.Action {
	var out []domain.Action

	if summary.FailCount > 0 {
		out = append(out, domain.Action{
			Type:     domain.ActionReprocess,
			Priority: domain.PriorityHigh,
			Topic:    domain.TopicDataIntegrity,
			Description: fmt.Sprintf("Re-run extraction for %d failed file(s); most frequent failure: %s",
				summary.FailCount, TopFailureCategory(summary.FailureBreakdown)),
		})
	}

	if len(summary.TopRisks) > 0 {
		top := summary.TopRisks[0]
		out = append(out, domain.Action{
			Type:     domain.ActionTicket,
			Priority: domain.PriorityMedium,
			Topic:    domain.TopicDataQuality,
			Description: fmt.Sprintf("Open a data-quality ticket: %q flagged %d time(s)",
				top.Risk, top.Count),
		})
	}

	return out
}

// TopFailureCategory consults the breakdown in descending-frequency order,
// breaking count ties lexicographically so the result is deterministic.
func TopFailureCategory(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return domain.UnknownFailure
	}
	cats := make([]string, 0, len(breakdown))
	for c := range breakdown {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if breakdown[cats[i]] != breakdown[cats[j]] {
			return breakdown[cats[i]] > breakdown[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats[0]
}
