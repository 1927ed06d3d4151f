// Package filter defines the structured, validated representation of a
// parsed catalog query. A Filter is created once per request by the query
// parser, consumed by the condition compiler, then discarded.
package filter

import (
	"strings"

	"github.com/cadeso/searchapi/internal/domain/producttype"
)

// MaxKeywords caps the keyword set; broad category queries generate the
// most variants (up to 35).
const MaxKeywords = 35

// FallbackConfidence is the confidence assigned when parsing degrades to
// the raw query text.
const FallbackConfidence = 0.5

// Filter is an immutable parsed query.
type Filter struct {
	productType *producttype.Type
	keywords    []string
	useKeywords bool
	priceMin    *float64
	priceMax    *float64
	artist      *string
	confidence  float64
}

// Params carries the raw parser output into New.
type Params struct {
	Type        *producttype.Type
	Keywords    []string
	UseKeywords bool
	PriceMin    *float64
	PriceMax    *float64
	Artist      *string
	Confidence  float64
}

// New normalizes parser output into a Filter. Keywords are trimmed,
// deduplicated case-insensitively and capped at MaxKeywords; an empty set
// falls back to the raw query text so the keyword list is never empty.
// Confidence is clamped to [0, 1].
func New(rawQuery string, p Params) Filter {
	keywords := normalizeKeywords(p.Keywords)
	if len(keywords) == 0 {
		keywords = []string{strings.TrimSpace(rawQuery)}
	}

	confidence := p.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Filter{
		productType: p.Type,
		keywords:    keywords,
		useKeywords: p.UseKeywords,
		priceMin:    p.PriceMin,
		priceMax:    p.PriceMax,
		artist:      p.Artist,
		confidence:  confidence,
	}
}

// Fallback is the deterministic degraded filter: the raw query as the only
// keyword, no type, no bounds, confidence 0.5. Returned whenever the
// completion call fails, times out or produces unusable output.
func Fallback(rawQuery string) Filter {
	return Filter{
		keywords:    []string{strings.TrimSpace(rawQuery)},
		useKeywords: true,
		confidence:  FallbackConfidence,
	}
}

// Type returns the product type constraint, nil when unconstrained.
func (f Filter) Type() *producttype.Type { return f.productType }

// Keywords returns the keyword set. Never empty.
func (f Filter) Keywords() []string { return f.keywords }

// UseKeywords reports whether the keywords constrain the query beyond the
// type filter. False when the keywords are pure type synonyms.
func (f Filter) UseKeywords() bool { return f.useKeywords }

// PriceMin returns the lower price bound, nil when absent.
func (f Filter) PriceMin() *float64 { return f.priceMin }

// PriceMax returns the upper price bound, nil when absent.
func (f Filter) PriceMax() *float64 { return f.priceMax }

// Artist returns the artist constraint, nil when absent.
func (f Filter) Artist() *string { return f.artist }

// Confidence returns the parser confidence in [0, 1].
func (f Filter) Confidence() float64 { return f.confidence }

func normalizeKeywords(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, kw)
		if len(out) == MaxKeywords {
			break
		}
	}
	return out
}
