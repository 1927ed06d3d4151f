// Package classify runs the catalog type backfill: every product that has
// not been through classification yet gets a type, batch by batch. Batches
// run sequentially with a fixed size — this preprocessing job is the only
// bulk consumer of the store and must not saturate it.
package classify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/repository/catalog"
)

// DefaultBatchSize is the fixed backfill batch size.
const DefaultBatchSize = 200

// Stats summarizes one backfill run.
type Stats struct {
	Processed  int
	Classified int
	Batches    int
}

// Service is the backfill runner.
type Service struct {
	repo       Repository
	classifier Classifier
	batchSize  int
	logger     *zap.Logger
}

// New creates a backfill service.
func New(repo Repository, classifier Classifier, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		batchSize:  DefaultBatchSize,
		logger:     logger,
	}
}

// WithBatchSize configures the batch size.
func (s *Service) WithBatchSize(size int) *Service {
	if size > 0 {
		s.batchSize = size
	}
	return s
}

// Run processes unclassified products until none remain. Every product in
// a batch gets an assignment — unmatched ones a nil type — so a batch is
// never re-read.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("backfill interrupted: %w", err)
		}

		batch, err := s.repo.ListUnclassified(ctx, s.batchSize)
		if err != nil {
			return stats, fmt.Errorf("list batch: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		assignments, classified := s.classifyBatch(batch)
		if err := s.repo.ApplyTypes(ctx, assignments); err != nil {
			return stats, fmt.Errorf("apply batch: %w", err)
		}

		stats.Processed += len(batch)
		stats.Classified += classified
		stats.Batches++

		s.logger.Info("backfill batch done",
			zap.Int("batch", stats.Batches),
			zap.Int("size", len(batch)),
			zap.Int("classified", classified),
		)
	}

	return stats, nil
}

func (s *Service) classifyBatch(batch []catalog.UnclassifiedProduct) ([]catalog.TypeAssignment, int) {
	assignments := make([]catalog.TypeAssignment, len(batch))
	classified := 0
	for i, p := range batch {
		typ := s.classifier.Classify(p.Title, p.Content, p.Categories)
		if typ != nil {
			classified++
		}
		assignments[i] = catalog.TypeAssignment{ID: p.ID, Type: typ}
	}
	return assignments, classified
}
