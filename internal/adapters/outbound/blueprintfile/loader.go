package blueprintfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// Loader implements domain.BlueprintLoader for YAML blueprint files.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load reads and sanity-checks an evidence blueprint document.
func (l *Loader) Load(path string) (domain.EvidenceBlueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.EvidenceBlueprint{}, fmt.Errorf("reading blueprint: %w", err)
	}

	var bp domain.EvidenceBlueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return domain.EvidenceBlueprint{}, fmt.Errorf("parsing blueprint %s: %w", path, err)
	}

	for i, m := range bp.RequiredMetrics {
		if m.ID == "" {
			return domain.EvidenceBlueprint{}, fmt.Errorf("blueprint %s: required_metrics[%d] has no id", path, i)
		}
	}

	return bp, nil
}
