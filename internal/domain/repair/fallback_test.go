package repair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/domain"
	"github.com/auditkraft/auditkraft/internal/domain/gate"
	"github.com/auditkraft/auditkraft/internal/domain/repair"
)

func TestFallbackPatch_SchemaErrorAppendsPermissiveField(t *testing.T) {
	spec := domain.PipelineSpec{
		InputSchema: []domain.SchemaField{{Key: "kwh", Type: "number"}},
	}

	patch, descriptor := repair.FallbackPatch(spec, []string{gate.MsgEmptyInputSchema})

	require.Len(t, patch.InputSchema, 2, "existing fields stay, permissive field appended")
	assert.Equal(t, "raw_text", patch.InputSchema[1].Key)
	assert.False(t, patch.InputSchema[1].Required)
	assert.Contains(t, descriptor, "raw_text")
}

func TestFallbackPatch_MetricsErrorResetsToDefault(t *testing.T) {
	patch, descriptor := repair.FallbackPatch(domain.PipelineSpec{}, []string{gate.MsgNoOutputMetrics})

	assert.Equal(t, []string{repair.DefaultOutputMetric}, patch.OutputMetrics)
	assert.Contains(t, descriptor, repair.DefaultOutputMetric)
}

func TestFallbackPatch_ClassificationErrorSetsEvidenceType(t *testing.T) {
	patch, _ := repair.FallbackPatch(domain.PipelineSpec{}, []string{gate.MsgInvalidEvidenceType})

	assert.Equal(t, "general_document", patch.EvidenceType)
}

func TestFallbackPatch_UnrecognizedErrorNeverFails(t *testing.T) {
	patch, descriptor := repair.FallbackPatch(domain.PipelineSpec{}, []string{"something novel"})

	assert.Equal(t, domain.SpecPatch{}, patch)
	assert.NotEmpty(t, descriptor)
}
