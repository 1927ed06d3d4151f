package advise

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cadeso/searchapi/internal/domain"
)

type mockCompleter struct {
	output string
	err    error
	called bool
}

func (m *mockCompleter) CompleteJSON(_ context.Context, _, _ string) (string, error) {
	m.called = true
	return m.output, m.err
}

func products(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{ID: int64(i + 1), Title: "Product", Price: 10}
	}
	return out
}

func TestAdvise_ZeroResultsUsesTemplateWithoutProvider(t *testing.T) {
	mc := &mockCompleter{output: `{"message":"should not be used"}`}
	svc := New(mc)

	adv := svc.Advise(context.Background(), "draak", 0, nil)

	if mc.called {
		t.Error("zero results must not call the provider")
	}
	if adv.Message != ZeroResultsMessage {
		t.Errorf("expected zero-result template, got %q", adv.Message)
	}
	if len(adv.Highlighted) != 0 {
		t.Errorf("expected no highlights, got %v", adv.Highlighted)
	}
}

func TestAdvise_ProviderFailureFallsBackPerBucket(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{2, "goed bij je zoekopdracht"},
		{10, "resultaten gevonden voor je zoekopdracht"},
		{80, "Verfijn je zoekopdracht"},
	}

	for _, tc := range tests {
		mc := &mockCompleter{err: errors.New("boom")}
		svc := New(mc)

		adv := svc.Advise(context.Background(), "hart", tc.total, products(3))

		if !strings.Contains(adv.Message, tc.want) {
			t.Errorf("total=%d: expected template containing %q, got %q", tc.total, tc.want, adv.Message)
		}
		if len(adv.Highlighted) != 0 {
			t.Errorf("total=%d: degraded advice must not highlight items", tc.total)
		}
	}
}

func TestAdvise_MalformedOutputFallsBack(t *testing.T) {
	mc := &mockCompleter{output: "sorry, geen JSON"}
	svc := New(mc)

	adv := svc.Advise(context.Background(), "hart", 5, products(5))

	if !strings.Contains(adv.Message, "5 resultaten") {
		t.Errorf("expected count template, got %q", adv.Message)
	}
}

func TestAdvise_ValidOutputPassesThrough(t *testing.T) {
	mc := &mockCompleter{output: `{"message":"Het hartenbeeldje past perfect.","highlighted":[0,2]}`}
	svc := New(mc)

	adv := svc.Advise(context.Background(), "hart", 3, products(3))

	if adv.Message != "Het hartenbeeldje past perfect." {
		t.Errorf("unexpected message: %q", adv.Message)
	}
	if len(adv.Highlighted) != 2 || adv.Highlighted[0] != 0 || adv.Highlighted[1] != 2 {
		t.Errorf("unexpected highlights: %v", adv.Highlighted)
	}
}

func TestAdvise_OutOfRangeHighlightsDropped(t *testing.T) {
	mc := &mockCompleter{output: `{"message":"Kijk eens naar deze.","highlighted":[0,7,-1]}`}
	svc := New(mc)

	adv := svc.Advise(context.Background(), "hart", 3, products(3))

	if len(adv.Highlighted) != 1 || adv.Highlighted[0] != 0 {
		t.Errorf("expected only index 0 to survive, got %v", adv.Highlighted)
	}
}

func TestAdvise_CapsItemsOfferedToProvider(t *testing.T) {
	// Index 4 is the last item the provider may reference with the
	// default cap of 5; higher indices are invalid even though more rows
	// were returned.
	mc := &mockCompleter{output: `{"message":"Mooi.","highlighted":[4,5]}`}
	svc := New(mc)

	adv := svc.Advise(context.Background(), "hart", 20, products(10))

	if len(adv.Highlighted) != 1 || adv.Highlighted[0] != 4 {
		t.Errorf("expected highlight capped to item window, got %v", adv.Highlighted)
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		total int
		want  bucket
	}{
		{0, bucketZero},
		{1, bucketFew},
		{3, bucketFew},
		{4, bucketSome},
		{24, bucketSome},
		{25, bucketMany},
	}
	for _, tc := range tests {
		if got := bucketFor(tc.total); got != tc.want {
			t.Errorf("bucketFor(%d) = %v, want %v", tc.total, got, tc.want)
		}
	}
}
