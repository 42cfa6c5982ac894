package blueprintfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/blueprintfile"
)

func writeBlueprint(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesBlueprint(t *testing.T) {
	path := writeBlueprint(t, `
company: acme
evidence_types:
  - utility_bill
required_metrics:
  - id: energyConsumed
    unit: kWh
  - id: waterUsage
    unit: m3
    description: municipal supply only
`)

	bp, err := blueprintfile.New().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "acme", bp.Company)
	require.Len(t, bp.RequiredMetrics, 2)
	assert.Equal(t, "kWh", bp.UnitFor("energyConsumed"))
	assert.True(t, bp.Requires("waterUsage"))
}

func TestLoad_RejectsMetricWithoutID(t *testing.T) {
	path := writeBlueprint(t, "required_metrics:\n  - unit: kWh\n")

	_, err := blueprintfile.New().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := blueprintfile.New().Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading blueprint")
}
