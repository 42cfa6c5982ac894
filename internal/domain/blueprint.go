package domain

// EvidenceBlueprint declares the metrics a company's audit scope requires.
// It is approved once by a human and treated as immutable afterwards.
type EvidenceBlueprint struct {
	Company         string           `yaml:"company" json:"company"`
	EvidenceTypes   []string         `yaml:"evidence_types,omitempty" json:"evidence_types,omitempty"`
	RequiredMetrics []RequiredMetric `yaml:"required_metrics" json:"required_metrics"`
}

// RequiredMetric is one required metric-id with its reporting unit.
type RequiredMetric struct {
	ID          string `yaml:"id" json:"id"`
	Unit        string `yaml:"unit" json:"unit"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// UnitSentinel is used when a metric observed in results has no blueprint entry.
const UnitSentinel = "N/A"

// UnitFor returns the declared unit for a metric-id, or UnitSentinel if the
// blueprint does not mention it.
func (b EvidenceBlueprint) UnitFor(metricID string) string {
	for _, m := range b.RequiredMetrics {
		if m.ID == metricID {
			return m.Unit
		}
	}
	return UnitSentinel
}

// Requires reports whether the blueprint declares the given metric-id.
func (b EvidenceBlueprint) Requires(metricID string) bool {
	for _, m := range b.RequiredMetrics {
		if m.ID == metricID {
			return true
		}
	}
	return false
}
