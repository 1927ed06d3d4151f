package classify

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain/producttype"
	"github.com/cadeso/searchapi/internal/repository/catalog"
)

type mockRepo struct {
	batches   [][]catalog.UnclassifiedProduct
	listCalls int
	applied   [][]catalog.TypeAssignment
	applyErr  error
}

func (m *mockRepo) ListUnclassified(_ context.Context, _ int) ([]catalog.UnclassifiedProduct, error) {
	if m.listCalls >= len(m.batches) {
		return nil, nil
	}
	batch := m.batches[m.listCalls]
	m.listCalls++
	return batch, nil
}

func (m *mockRepo) ApplyTypes(_ context.Context, assignments []catalog.TypeAssignment) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied = append(m.applied, assignments)
	return nil
}

type mockClassifier struct{}

func (mockClassifier) Classify(title, _ string, _ []string) *producttype.Type {
	if title == "Beeldje danseres" {
		t := producttype.Beeld
		return &t
	}
	return nil
}

func TestRun_ProcessesBatchesSequentially(t *testing.T) {
	repo := &mockRepo{
		batches: [][]catalog.UnclassifiedProduct{
			{
				{ID: 1, Title: "Beeldje danseres"},
				{ID: 2, Title: "Cadeaubon"},
			},
			{
				{ID: 3, Title: "Beeldje danseres"},
			},
		},
	}
	svc := New(repo, mockClassifier{}, zap.NewNop()).WithBatchSize(2)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Processed != 3 || stats.Classified != 2 || stats.Batches != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(repo.applied) != 2 {
		t.Fatalf("expected 2 apply calls, got %d", len(repo.applied))
	}

	// Unmatched products still get an assignment (nil type) so the batch
	// is never re-read.
	first := repo.applied[0]
	if len(first) != 2 {
		t.Fatalf("expected 2 assignments in first batch, got %d", len(first))
	}
	if first[0].Type == nil || *first[0].Type != producttype.Beeld {
		t.Errorf("expected Beeld for product 1, got %v", first[0].Type)
	}
	if first[1].Type != nil {
		t.Errorf("expected nil type for unmatched product, got %v", *first[1].Type)
	}
}

func TestRun_StopsOnApplyError(t *testing.T) {
	repo := &mockRepo{
		batches: [][]catalog.UnclassifiedProduct{
			{{ID: 1, Title: "Beeldje danseres"}},
		},
		applyErr: errors.New("deadlock"),
	}
	svc := New(repo, mockClassifier{}, zap.NewNop())

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected error from apply failure")
	}
}

func TestRun_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockRepo{
		batches: [][]catalog.UnclassifiedProduct{
			{{ID: 1, Title: "Beeldje danseres"}},
		},
	}
	svc := New(repo, mockClassifier{}, zap.NewNop())

	if _, err := svc.Run(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if repo.listCalls != 0 {
		t.Errorf("expected no batch reads after cancellation, got %d", repo.listCalls)
	}
}
