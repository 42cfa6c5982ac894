package domain

import "context"

// ExtractionProvider turns one raw evidence document into a FileResult using
// a pipeline spec. On failure it must still yield a FileResult with
// Success=false and at least one validation error; the engine never accepts a
// missing result for a submitted document.
type ExtractionProvider interface {
	Extract(ctx context.Context, document string, spec PipelineSpec) (FileResult, error)
}

// RepairProvider produces a patch fragment for a spec that failed gate
// verification. It is an opaque generative collaborator and may fail; the
// coordinator then falls back to a deterministic local patcher.
type RepairProvider interface {
	Patch(ctx context.Context, spec PipelineSpec, gateErrors []string) (SpecPatch, error)
}

// ConfigLoader reads workspace configuration.
type ConfigLoader interface {
	Load(workspacePath string) (EngineConfig, error)
}

// BlueprintLoader reads an approved evidence blueprint.
type BlueprintLoader interface {
	Load(path string) (EvidenceBlueprint, error)
}

// SpecStore loads and persists pipeline specs. Persistence stays outside the
// engine core; the CLI is the caller that saves repaired versions.
type SpecStore interface {
	Load(path string) (PipelineSpec, error)
	Save(path string, spec PipelineSpec) error
}

// ResultStore reads stored FileResult documents for offline summarize runs.
type ResultStore interface {
	LoadDir(dir string) ([]FileResult, error)
}

// SummaryHistory appends summary snapshots to the workspace history.
type SummaryHistory interface {
	Save(workspacePath string, entry SummaryEntry) error
	Load(workspacePath string) ([]SummaryEntry, error)
}

// GitInfo exposes commit provenance for the workspace being audited.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
