package application

import (
	"fmt"

	"github.com/auditkraft/auditkraft/internal/domain"
	"github.com/auditkraft/auditkraft/internal/domain/gate"
)

// VerifyService runs the guardrail gates over stored or in-memory specs.
type VerifyService struct {
	specs domain.SpecStore
}

func NewVerifyService(specs domain.SpecStore) *VerifyService {
	return &VerifyService{specs: specs}
}

// Verify runs the gates over an in-memory spec.
func (s *VerifyService) Verify(spec domain.PipelineSpec) domain.VerificationReport {
	return gate.Verify(spec)
}

// VerifyFile loads a spec document and runs the gates over it.
func (s *VerifyService) VerifyFile(path string) (domain.PipelineSpec, domain.VerificationReport, error) {
	spec, err := s.specs.Load(path)
	if err != nil {
		return domain.PipelineSpec{}, domain.VerificationReport{}, fmt.Errorf("loading spec: %w", err)
	}
	return spec, gate.Verify(spec), nil
}
