// Package advise produces the short natural-language summary attached to
// a result set. Generation is delegated to a completion provider; any
// failure degrades to a deterministic template selected by count bucket.
// This path never returns an error.
package advise

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/logger"
	"github.com/cadeso/searchapi/internal/metrics"
)

// DefaultMaxItems is how many top results the provider gets to see.
const DefaultMaxItems = 5

// Advice is the generator output: a message plus indices of the items the
// message references.
type Advice struct {
	Message     string
	Highlighted []int
}

// Service generates advisory messages.
type Service struct {
	completer Completer
	maxItems  int
}

// New creates an advisory service.
func New(completer Completer) *Service {
	return &Service{completer: completer, maxItems: DefaultMaxItems}
}

// WithMaxItems configures how many top results are offered to the provider.
func (s *Service) WithMaxItems(n int) *Service {
	if n > 0 {
		s.maxItems = n
	}
	return s
}

const advisePrompt = `You write one short, friendly Dutch message (max two
sentences) summarizing webshop search results for the shopper.

Respond with ONE JSON object, nothing else:
{"message": string, "highlighted": [int]}

Rules by result count:
- A handful of results (3 or fewer): name one or two specific items with a
  short reason why they fit the query; put their indices in "highlighted".
- Many results (more than 24): suggest narrowing down by theme or price;
  "highlighted" stays empty.
- Otherwise: a short neutral summary; "highlighted" stays empty.

"highlighted" may only contain indices of the listed items.`

// Advise produces the advisory message for one result set. Zero results
// always get the fixed template; provider failures degrade to the bucket
// template. Highlighted indices are validated against the item window.
func (s *Service) Advise(ctx context.Context, query string, total int, items []domain.Product) Advice {
	b := bucketFor(total)
	if b == bucketZero {
		return Advice{Message: templateFor(b, total), Highlighted: []int{}}
	}

	if len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	raw, err := s.completer.CompleteJSON(ctx, advisePrompt, buildAdvisePrompt(query, total, items))
	if err != nil {
		logger.FromContext(ctx).Warn("advisory generation failed, using template", zap.Error(err))
		metrics.AdvisoryFallbacksTotal.Inc()
		return Advice{Message: templateFor(b, total), Highlighted: []int{}}
	}

	advice, ok := decodeAdvice(raw, len(items))
	if !ok {
		logger.FromContext(ctx).Warn("unparseable advisory output, using template")
		metrics.AdvisoryFallbacksTotal.Inc()
		return Advice{Message: templateFor(b, total), Highlighted: []int{}}
	}
	return advice
}

func buildAdvisePrompt(query string, total int, items []domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\nTotal results: %d\nTop items:\n", query, total)
	for i, p := range items {
		fmt.Fprintf(&b, "%d. %s (%s, € %.2f)\n", i, p.Title, p.TypeLabel(), p.Price)
	}
	return b.String()
}

func decodeAdvice(raw string, itemCount int) (Advice, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return Advice{}, false
	}

	var payload struct {
		Message     string `json:"message"`
		Highlighted []int  `json:"highlighted"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return Advice{}, false
	}
	if strings.TrimSpace(payload.Message) == "" {
		return Advice{}, false
	}

	valid := make([]int, 0, len(payload.Highlighted))
	for _, idx := range payload.Highlighted {
		if idx >= 0 && idx < itemCount {
			valid = append(valid, idx)
		}
	}
	return Advice{Message: payload.Message, Highlighted: valid}, true
}
