package repair

import (
	"strings"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// DefaultOutputMetric is the known-safe output metric the fallback resets to
// when a spec defines none.
const DefaultOutputMetric = "documentCount"

// permissiveField is appended when the input schema is empty so extraction
// always has at least one field to populate.
var permissiveField = domain.SchemaField{Key: "raw_text", Type: "string", Required: false}

// FallbackPatch derives a deterministic patch from the gate error texts. It
// never fails: errors it does not recognize simply contribute nothing, and
// the returned descriptor records every fix that was applied.
func FallbackPatch(spec domain.PipelineSpec, gateErrors []string) (domain.SpecPatch, string) {
	var (
		patch domain.SpecPatch
		fixes []string
	)

	for _, e := range gateErrors {
		lower := strings.ToLower(e)
		switch {
		case strings.Contains(lower, "schema"):
			patch.InputSchema = append(append([]domain.SchemaField(nil), spec.InputSchema...), permissiveField)
			fixes = append(fixes, "appended permissive raw_text input field")
		case strings.Contains(lower, "metrics"):
			patch.OutputMetrics = []string{DefaultOutputMetric}
			fixes = append(fixes, "reset output metrics to "+DefaultOutputMetric)
		case strings.Contains(lower, "classification") || strings.Contains(lower, "evidence type"):
			patch.EvidenceType = "general_document"
			fixes = append(fixes, "set evidence type to general_document")
		}
	}

	if len(fixes) == 0 {
		return patch, "no deterministic fix matched; version advanced for retry"
	}
	return patch, strings.Join(fixes, "; ")
}
