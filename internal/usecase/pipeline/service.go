// Package pipeline sequences one search request through its stages:
// parsing, store execution (which compiles, filters and ranks), advising,
// responding. Every stage is timed independent of success; timing metadata
// is returned on every path, including errors.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/search"
	"github.com/cadeso/searchapi/internal/logger"
	"github.com/cadeso/searchapi/internal/metrics"
)

// DefaultConfidenceThreshold marks a query as unclear below this parser
// confidence. Unclear queries get a suggestion, never an error.
const DefaultConfidenceThreshold = 0.4

// UnclearQuerySuggestion is attached to low-confidence responses.
const UnclearQuerySuggestion = "Probeer je zoekopdracht specifieker te maken, " +
	"bijvoorbeeld met een productsoort of een prijs."

// Request is one pipeline invocation.
type Request struct {
	Query  string
	Limit  int
	Offset int
}

// Timings carries per-stage wall-clock milliseconds. Populated on every
// path, including fatal store errors.
type Timings struct {
	ParseMS  int64
	SearchMS int64
	AdviseMS int64
	TotalMS  int64
}

// Response is the assembled pipeline outcome.
type Response struct {
	Query      string
	Filter     filter.Filter
	Page       search.Page
	Result     search.Result
	Suggestion string
	Timings    Timings
}

// Service orchestrates the pipeline.
type Service struct {
	parser       Parser
	catalog      Catalog
	advisor      Advisor
	defaultLimit int
	maxLimit     int
	threshold    float64
}

// New creates a pipeline service.
func New(parser Parser, catalog Catalog, advisor Advisor) *Service {
	return &Service{
		parser:       parser,
		catalog:      catalog,
		advisor:      advisor,
		defaultLimit: search.DefaultLimit,
		maxLimit:     search.MaxLimit,
		threshold:    DefaultConfidenceThreshold,
	}
}

// WithPagination configures the default and maximum page size.
func (s *Service) WithPagination(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithConfidenceThreshold configures the unclear-query threshold.
func (s *Service) WithConfidenceThreshold(t float64) *Service {
	if t > 0 {
		s.threshold = t
	}
	return s
}

// Run executes one request. Parser and advisor failures degrade inside
// their services; only a store failure is fatal, and even then the
// response carries the stage timings collected so far.
func (s *Service) Run(ctx context.Context, req Request) (resp Response, err error) {
	start := time.Now()
	resp.Query = strings.TrimSpace(req.Query)
	defer func() { resp.Timings.TotalMS = time.Since(start).Milliseconds() }()

	if resp.Query == "" {
		return resp, fmt.Errorf("query is required: %w", domain.ErrInvalidRequest)
	}

	log := logger.FromContext(ctx)

	// Parsing — degrades internally, never fails.
	parseStart := time.Now()
	f := s.parser.Parse(ctx, resp.Query)
	resp.Timings.ParseMS = time.Since(parseStart).Milliseconds()
	observeStage("parse", parseStart, true)
	resp.Filter = f

	// Compiling, executing, ranking — one store round trip. Fatal on error.
	resp.Page = search.NewPage(req.Limit, req.Offset, s.defaultLimit, s.maxLimit)
	searchStart := time.Now()
	items, total, err := s.catalog.Search(ctx, f, resp.Page)
	resp.Timings.SearchMS = time.Since(searchStart).Milliseconds()
	if err != nil {
		observeStage("search", searchStart, false)
		log.Error("catalog search failed", zap.Error(err), zap.String("query", resp.Query))
		return resp, fmt.Errorf("search: %w", err)
	}
	observeStage("search", searchStart, true)
	metrics.SearchResultsTotal.Observe(float64(total))
	resp.Result = search.NewResult(total, items, "", nil)

	// Advising — degrades internally, never fails.
	adviseStart := time.Now()
	advice := s.advisor.Advise(ctx, resp.Query, total, items)
	resp.Timings.AdviseMS = time.Since(adviseStart).Milliseconds()
	observeStage("advise", adviseStart, true)
	resp.Result = resp.Result.WithAdvice(advice.Message, advice.Highlighted)

	if f.Confidence() < s.threshold {
		resp.Suggestion = UnclearQuerySuggestion
	}

	log.Info("pipeline done",
		zap.String("query", resp.Query),
		zap.Int("total", total),
		zap.Int("showing", resp.Result.Showing()),
		zap.Float64("confidence", f.Confidence()),
		zap.Int64("parse_ms", resp.Timings.ParseMS),
		zap.Int64("search_ms", resp.Timings.SearchMS),
		zap.Int64("advise_ms", resp.Timings.AdviseMS),
	)

	return resp, nil
}

func observeStage(stage string, start time.Time, ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	metrics.PipelineStageDuration.WithLabelValues(stage, status).Observe(time.Since(start).Seconds())
}
