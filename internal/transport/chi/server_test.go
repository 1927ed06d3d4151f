package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/producttype"
	"github.com/cadeso/searchapi/internal/domain/search"
	"github.com/cadeso/searchapi/internal/usecase/advise"
	"github.com/cadeso/searchapi/internal/usecase/health"
	"github.com/cadeso/searchapi/internal/usecase/pipeline"
)

// --- Mocks ---

type stubParser struct{ f filter.Filter }

func (s stubParser) Parse(_ context.Context, _ string) filter.Filter { return s.f }

type stubCatalog struct {
	items []domain.Product
	total int
	err   error
}

func (s stubCatalog) Search(_ context.Context, _ filter.Filter, _ search.Page) ([]domain.Product, int, error) {
	return s.items, s.total, s.err
}

type stubAdvisor struct{ advice advise.Advice }

func (s stubAdvisor) Advise(_ context.Context, _ string, _ int, _ []domain.Product) advise.Advice {
	return s.advice
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func newTestServer(catalog stubCatalog) *httptest.Server {
	typ := producttype.Beeld
	f := filter.New("beeldje met hart", filter.Params{
		Type:        &typ,
		Keywords:    []string{"hart"},
		UseKeywords: true,
		Confidence:  0.9,
	})

	p := pipeline.New(
		stubParser{f: f},
		catalog,
		stubAdvisor{advice: advise.Advice{Message: "Mooi.", Highlighted: []int{0}}},
	)
	h := health.New(stubPinger{}, nil)
	srv := NewServer(p, h, zap.NewNop())

	r := chirouter.NewRouter()
	srv.Register(r)
	return httptest.NewServer(r)
}

// --- Tests ---

func TestSearch_Success(t *testing.T) {
	artist := "Gustav Klimt"
	old := 60.0
	sold := 12
	ts := newTestServer(stubCatalog{
		items: []domain.Product{{
			ID: 1, Title: "Hartenbeeldje", Price: 45, OldPrice: &old,
			Artist: &artist, StockSold: &sold, Visible: true,
		}},
		total: 7,
	})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json",
		strings.NewReader(`{"query":"beeldje met hart","limit":10}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body successResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !body.Success {
		t.Error("expected success=true")
	}
	if body.Query.Original != "beeldje met hart" {
		t.Errorf("unexpected original query: %q", body.Query.Original)
	}
	if body.Query.Parsed.Type == nil || *body.Query.Parsed.Type != "Beeld" {
		t.Errorf("unexpected parsed type: %v", body.Query.Parsed.Type)
	}
	if body.Results.Total != 7 || body.Results.Showing != 1 {
		t.Errorf("unexpected counts: %+v", body.Results)
	}
	if body.Results.Items[0].OnSale != true {
		t.Error("expected on_sale derived from old_price")
	}
	if body.Results.Items[0].DiscountPercent != 25 {
		t.Errorf("expected 25%% discount, got %d", body.Results.Items[0].DiscountPercent)
	}
	if body.Results.Advice != "Mooi." {
		t.Errorf("unexpected advice: %q", body.Results.Advice)
	}
	if body.Results.Limit != 10 {
		t.Errorf("expected limit 10, got %d", body.Results.Limit)
	}
}

func TestSearch_InvalidBody(t *testing.T) {
	ts := newTestServer(stubCatalog{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "invalid_request" {
		t.Errorf("unexpected error code: %q", body.Error)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	ts := newTestServer(stubCatalog{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json", strings.NewReader(`{"query":""}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSearch_StoreErrorReturnsStructuredError(t *testing.T) {
	ts := newTestServer(stubCatalog{err: domain.ErrQueryFailed})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json",
		strings.NewReader(`{"query":"beeldje"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Error != "query_error" {
		t.Errorf("unexpected error code: %q", body.Error)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(stubCatalog{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "ok" || body.Checks["catalog"] != "ok" {
		t.Errorf("unexpected health response: %+v", body)
	}
}
