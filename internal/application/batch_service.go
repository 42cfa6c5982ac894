package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// BatchService fans evidence documents out to the extraction provider.
// FileResults are independent, so extraction runs concurrently up to the
// configured limit; aggregation happens only after the join. Sum and count
// are associative and commutative, so completion order does not matter.
type BatchService struct {
	provider    domain.ExtractionProvider
	concurrency int

	// Progress, when set, is called once per resolved document.
	Progress func(document string)
}

func NewBatchService(provider domain.ExtractionProvider, concurrency int) *BatchService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchService{provider: provider, concurrency: concurrency}
}

// ProcessDocuments extracts every document through the spec. A provider error
// for one document still yields a failed FileResult for it; a missing result
// is never accepted for a document that was actually submitted. On
// cancellation, unfinished documents are dropped rather than fabricated, and
// the returned slice holds only files that resolved before the cut.
func (s *BatchService) ProcessDocuments(ctx context.Context, documents []string, spec domain.PipelineSpec) ([]domain.FileResult, error) {
	slots := make([]domain.FileResult, len(documents))
	resolved := make([]bool, len(documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, doc := range documents {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.provider.Extract(gctx, doc, spec)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// The provider contract says failures still yield a failed
				// result; synthesize one if it broke that contract.
				res = domain.FileResult{
					File:    doc,
					Success: false,
					Validation: domain.ValidationOutcome{
						Errors: []string{err.Error()},
					},
				}
			}
			slots[i] = res
			resolved[i] = true
			if s.Progress != nil {
				s.Progress(doc)
			}
			return nil
		})
	}

	err := g.Wait()

	results := make([]domain.FileResult, 0, len(documents))
	for i := range slots {
		if resolved[i] {
			results = append(results, slots[i])
		}
	}
	return results, err
}
