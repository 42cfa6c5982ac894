// Package repair patches a pipeline spec that failed gate verification.
//
// The coordinator performs exactly one repair attempt per call. Convergence
// looping and its attempt bound belong to the caller.
package repair

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// Coordinator obtains a patch from the configured provider (or the
// deterministic local fallback when none is configured) and enforces the
// identity, version, history, and approval invariants on the result.
type Coordinator struct {
	provider domain.RepairProvider
	clock    func() time.Time
	newID    func() string
}

// Option customizes a Coordinator; used by tests to pin the clock and ids.
type Option func(*Coordinator)

func WithClock(clock func() time.Time) Option {
	return func(c *Coordinator) { c.clock = clock }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Coordinator) { c.newID = newID }
}

// NewCoordinator creates a Coordinator. A nil provider selects the
// deterministic local fallback for every repair.
func NewCoordinator(provider domain.RepairProvider, opts ...Option) *Coordinator {
	c := &Coordinator{
		provider: provider,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repair returns a patched copy of spec at the next version. The input spec
// is never mutated; a provider failure aborts the attempt and the caller
// keeps the spec at its last valid version.
func (c *Coordinator) Repair(ctx context.Context, spec domain.PipelineSpec, gateErrors []string) (domain.PipelineSpec, error) {
	if len(gateErrors) == 0 {
		return spec, domain.ErrNothingToRepair
	}

	var (
		patch      domain.SpecPatch
		descriptor string
	)
	if c.provider != nil {
		p, err := c.provider.Patch(ctx, spec, gateErrors)
		if err != nil {
			return spec, fmt.Errorf("repair provider: %w", err)
		}
		patch = p
		descriptor = "provider patch applied"
	} else {
		patch, descriptor = FallbackPatch(spec, gateErrors)
	}

	repaired := spec.Clone()
	applyPatch(&repaired, patch)

	// Identity, version, and approval come from the pre-repair spec, never
	// from the patch.
	repaired.ID = spec.ID
	repaired.Approved = spec.Approved
	repaired.Version = BumpVersion(spec.Version)
	repaired.RepairHistory = append(repaired.RepairHistory, domain.RepairRecord{
		ID:        c.newID(),
		Timestamp: c.clock(),
		Error:     gateErrors[0],
		Fix:       descriptor,
	})

	if err := checkInvariants(spec, repaired); err != nil {
		return spec, err
	}
	return repaired, nil
}

func applyPatch(spec *domain.PipelineSpec, patch domain.SpecPatch) {
	if patch.EvidenceType != "" {
		spec.EvidenceType = patch.EvidenceType
	}
	if len(patch.InputSchema) > 0 {
		spec.InputSchema = append([]domain.SchemaField(nil), patch.InputSchema...)
	}
	if len(patch.Transformations) > 0 {
		spec.Transformations = append([]string(nil), patch.Transformations...)
	}
	if len(patch.Calculations) > 0 {
		spec.Calculations = append([]string(nil), patch.Calculations...)
	}
	if len(patch.Validations) > 0 {
		spec.Validations = append([]string(nil), patch.Validations...)
	}
	if len(patch.OutputMetrics) > 0 {
		spec.OutputMetrics = append([]string(nil), patch.OutputMetrics...)
	}
}

// checkInvariants is defensive only; a failure here is a bug in this package.
func checkInvariants(before, after domain.PipelineSpec) error {
	switch {
	case after.ID != before.ID:
		return fmt.Errorf("%w: id changed from %q to %q", domain.ErrInvariantViolation, before.ID, after.ID)
	case after.Approved != before.Approved:
		return fmt.Errorf("%w: approved flag changed", domain.ErrInvariantViolation)
	case len(after.RepairHistory) != len(before.RepairHistory)+1:
		return fmt.Errorf("%w: history grew by %d entries, want 1",
			domain.ErrInvariantViolation, len(after.RepairHistory)-len(before.RepairHistory))
	case after.Version == before.Version:
		return fmt.Errorf("%w: version did not advance from %q", domain.ErrInvariantViolation, before.Version)
	}
	return nil
}

// BumpVersion advances a version by a fixed +0.1 off its leading
// major.minor pair, formatted with one decimal: "1.0.0" becomes "1.1",
// "1.9" becomes "2.0". Unparsable versions restart from the initial "1.0".
func BumpVersion(version string) string {
	parts := strings.SplitN(version, ".", 3)
	base := parts[0]
	if len(parts) > 1 {
		base = parts[0] + "." + parts[1]
	}
	v, err := strconv.ParseFloat(base, 64)
	if err != nil {
		v = 1.0
	}
	return strconv.FormatFloat(v+0.1, 'f', 1, 64)
}
