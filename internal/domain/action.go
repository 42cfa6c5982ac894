package domain

// Action is a derived remediation step. Actions are recomputed from the
// summary on every pass and are not independently persisted.
type Action struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Topic       string `json:"topic"`
}

const (
	ActionReprocess = "reprocess"
	ActionTicket    = "ticket"
	ActionNotify    = "notify"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	TopicDataIntegrity = "Data Integrity"
	TopicDataQuality   = "Data Quality"
)

// PriorityRank returns a numeric rank for sorting priorities (lower is more
// urgent).
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
