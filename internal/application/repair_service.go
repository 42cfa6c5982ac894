package application

import (
	"context"
	"fmt"

	"github.com/auditkraft/auditkraft/internal/domain"
	"github.com/auditkraft/auditkraft/internal/domain/gate"
	"github.com/auditkraft/auditkraft/internal/domain/repair"
)

// RepairService wraps the repair coordinator with the caller-side
// verify-repair convergence loop. The coordinator itself performs exactly one
// attempt per call; the bound lives here.
type RepairService struct {
	coordinator *repair.Coordinator
	maxAttempts int
}

func NewRepairService(provider domain.RepairProvider, maxAttempts int) *RepairService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RepairService{
		coordinator: repair.NewCoordinator(provider),
		maxAttempts: maxAttempts,
	}
}

// RepairOnce performs a single repair attempt against the supplied gate
// errors. On provider failure the returned spec is the unchanged input.
func (s *RepairService) RepairOnce(ctx context.Context, spec domain.PipelineSpec, gateErrors []string) (domain.PipelineSpec, error) {
	return s.coordinator.Repair(ctx, spec, gateErrors)
}

// RepairUntilValid re-verifies after each repair and stops as soon as the
// gates pass or the attempt bound is reached. The returned report reflects
// the final verification pass.
func (s *RepairService) RepairUntilValid(ctx context.Context, spec domain.PipelineSpec) (domain.PipelineSpec, domain.VerificationReport, error) {
	report := gate.Verify(spec)

	for attempt := 0; !report.IsValid && attempt < s.maxAttempts; attempt++ {
		repaired, err := s.coordinator.Repair(ctx, spec, report.Errors)
		if err != nil {
			return spec, report, fmt.Errorf("repair attempt %d: %w", attempt+1, err)
		}
		spec = repaired
		report = gate.Verify(spec)
	}

	return spec, report, nil
}
