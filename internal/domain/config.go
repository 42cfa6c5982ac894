package domain

import "fmt"

// EngineConfig holds workspace-level configuration loaded from .auditkraft.yaml.
type EngineConfig struct {
	Provider ProviderConfig `yaml:"provider" json:"provider,omitempty"`
	Batch    BatchConfig    `yaml:"batch"    json:"batch,omitempty"`
	Repair   RepairConfig   `yaml:"repair"   json:"repair,omitempty"`
	CI       CIConfig       `yaml:"ci"       json:"ci,omitempty"`
}

// ProviderConfig points at the external extraction/repair collaborators.
// Empty URLs mean the deterministic local fallback is used for repair and
// batch processing is unavailable.
type ProviderConfig struct {
	ExtractionURL  string `yaml:"extraction_url" json:"extraction_url,omitempty"`
	RepairURL      string `yaml:"repair_url"     json:"repair_url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// BatchConfig tunes the per-file extraction fan-out.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" json:"concurrency,omitempty"`
}

// RepairConfig bounds the caller-side verify-repair convergence loop.
// The coordinator itself always performs exactly one attempt per call.
type RepairConfig struct {
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts,omitempty"`
}

// CIConfig configures gate behavior for CI pipelines.
type CIConfig struct {
	MinReadiness float64 `yaml:"min_readiness" json:"min_readiness,omitempty"`
}

// DefaultConfig returns the configuration used when no .auditkraft.yaml exists.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Provider: ProviderConfig{TimeoutSeconds: 30},
		Batch:    BatchConfig{Concurrency: 4},
		Repair:   RepairConfig{MaxAttempts: 3},
	}
}

// Validate catches typos and out-of-range values in user config.
func (c EngineConfig) Validate() error {
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch.concurrency must be >= 0, got %d", c.Batch.Concurrency)
	}
	if c.Repair.MaxAttempts < 0 {
		return fmt.Errorf("repair.max_attempts must be >= 0, got %d", c.Repair.MaxAttempts)
	}
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("provider.timeout_seconds must be >= 0, got %d", c.Provider.TimeoutSeconds)
	}
	if c.CI.MinReadiness < 0 || c.CI.MinReadiness > 100 {
		return fmt.Errorf("ci.min_readiness must be within [0,100], got %g", c.CI.MinReadiness)
	}
	return nil
}
