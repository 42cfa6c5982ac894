package scoring

import "github.com/auditkraft/auditkraft/internal/domain"

// Thresholds for the compliance classification. Downstream remediation
// routing depends on these exact values.
const (
	failScoreThreshold = 60
	passScoreThreshold = 85
	failRatioThreshold = 0.2
)

// ClassifyCompliance turns a readiness score plus failure/anomaly counts into
// the ternary compliance opinion. FAIL is evaluated first and short-circuits;
// an empty batch therefore always fails (score 0 < 60).
func ClassifyCompliance(score float64, totalFiles, failCount, anomalyCount int) domain.ComplianceOpinion {
	if score < failScoreThreshold || float64(failCount) > failRatioThreshold*float64(totalFiles) {
		return domain.OpinionFail
	}
	if score < passScoreThreshold || anomalyCount > 0 {
		return domain.OpinionConditional
	}
	return domain.OpinionPass
}
