// Package parse turns a free-text shopper query into a validated Filter.
// Extraction is delegated to a completion provider; the output passes
// through allow-list validation before it can reach the condition
// compiler. Any provider failure degrades to the deterministic fallback
// filter — this path never aborts the pipeline.
package parse

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/producttype"
	"github.com/cadeso/searchapi/internal/logger"
	"github.com/cadeso/searchapi/internal/metrics"
)

// Service is the query parser.
type Service struct {
	completer Completer
	vocab     *Vocabulary
}

// New creates a parser service with an injected read-only vocabulary.
func New(completer Completer, vocab *Vocabulary) *Service {
	if vocab == nil {
		vocab = NewVocabulary(nil)
	}
	return &Service{completer: completer, vocab: vocab}
}

// completionPayload is the JSON shape expected from the provider.
// use_keywords is a pointer: an absent field defaults to true.
type completionPayload struct {
	Type        *string  `json:"type"`
	Keywords    []string `json:"keywords"`
	UseKeywords *bool    `json:"use_keywords"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	Artist      *string  `json:"artist"`
	Confidence  float64  `json:"confidence"`
}

// Parse converts a raw query into a Filter. It always produces a usable
// filter: provider failures, timeouts and malformed output all degrade to
// filter.Fallback(query).
func (s *Service) Parse(ctx context.Context, query string) filter.Filter {
	log := logger.FromContext(ctx)
	query = strings.TrimSpace(query)

	raw, err := s.completer.CompleteJSON(ctx, systemPrompt, buildUserPrompt(query, s.vocab))
	if err != nil {
		log.Warn("query extraction failed, using fallback filter", zap.Error(err))
		metrics.ParseFallbacksTotal.Inc()
		return filter.Fallback(query)
	}

	payload, ok := decodePayload(raw)
	if !ok {
		log.Warn("unparseable extraction output, using fallback filter",
			zap.String("output", truncate(raw, 200)))
		metrics.ParseFallbacksTotal.Inc()
		return filter.Fallback(query)
	}

	return s.validate(query, payload)
}

// validate repairs the payload against the canonical vocabulary. Unknown
// types and artists are dropped, never passed through; an artist
// constraint forces the type to null regardless of what the provider
// suggested.
func (s *Service) validate(query string, p completionPayload) filter.Filter {
	params := filter.Params{
		Keywords:    p.Keywords,
		UseKeywords: p.UseKeywords == nil || *p.UseKeywords,
		Confidence:  p.Confidence,
	}

	if p.Type != nil {
		if t, ok := producttype.Parse(*p.Type); ok {
			params.Type = &t
		}
	}

	if p.Artist != nil {
		if canonical, ok := s.vocab.MatchArtist(*p.Artist); ok {
			params.Artist = &canonical
		}
	}

	// Artist queries are never type-constrained.
	if params.Artist != nil {
		params.Type = nil
	}

	if p.PriceMin != nil && *p.PriceMin >= 0 {
		params.PriceMin = p.PriceMin
	}
	if p.PriceMax != nil && *p.PriceMax > 0 {
		params.PriceMax = p.PriceMax
	}

	return filter.New(query, params)
}

// decodePayload unmarshals the completion output, repairing the common
// deviations first: markdown code fences and prose around the object.
func decodePayload(raw string) (completionPayload, bool) {
	var p completionPayload

	obj, ok := extractJSONObject(raw)
	if !ok {
		return p, false
	}
	if err := json.Unmarshal([]byte(obj), &p); err != nil {
		return p, false
	}
	return p, true
}

// extractJSONObject returns the outermost {...} block of s.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
