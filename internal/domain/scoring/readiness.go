// Package scoring holds the pure scoring and classification functions of the
// audit engine. Both are deterministic over their arguments alone.
package scoring

// ReadinessScore maps batch counts to a 0-100 audit completeness proxy:
// coverage percentage minus a failure penalty of up to 50 points, clamped.
// An empty batch scores 0.
func ReadinessScore(totalFiles, successCount, failCount int) float64 {
	coverage := 0.0
	if totalFiles > 0 {
		coverage = float64(successCount) / float64(totalFiles) * 100
	}

	denom := totalFiles
	if denom < 1 {
		denom = 1
	}
	penalty := float64(failCount) / float64(denom) * 50

	score := coverage - penalty
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
