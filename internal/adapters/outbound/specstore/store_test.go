package specstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkraft/auditkraft/internal/adapters/outbound/specstore"
	"github.com/auditkraft/auditkraft/internal/domain"
)

func newStore(t *testing.T) *specstore.Store {
	t.Helper()
	store, err := specstore.New()
	require.NoError(t, err)
	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(t.TempDir(), "spec.yaml")
	spec := domain.PipelineSpec{
		ID:            "spec-1",
		EvidenceType:  "utility_bill",
		InputSchema:   []domain.SchemaField{{Key: "kwh", Type: "number", Required: true}},
		OutputMetrics: []string{"energyConsumed"},
		Version:       "1.0.0",
		Approved:      true,
	}

	require.NoError(t, store.Save(path, spec))
	loaded, err := store.Load(path)

	require.NoError(t, err)
	assert.Equal(t, spec, loaded)
}

func TestStore_LoadRejectsMissingID(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evidence_type: utility_bill\nversion: \"1.0.0\"\n"), 0644))

	_, err := store.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestStore_LoadRejectsMalformedVersion(t *testing.T) {
	store := newStore(t)
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: spec-1\nversion: not-semv\n"), 0644))

	_, err := store.Load(path)

	require.Error(t, err)
}

func TestStore_IncompleteSpecStillLoads(t *testing.T) {
	// Structural validation only: a spec with no input schema or metrics must
	// load so the gates can block it and a repair can fix it.
	store := newStore(t)
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: spec-1\nversion: \"1.0.0\"\n"), 0644))

	loaded, err := store.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "spec-1", loaded.ID)
	assert.Empty(t, loaded.InputSchema)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newStore(t)

	_, err := store.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading spec")
}
