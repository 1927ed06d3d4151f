package search

import "github.com/cadeso/searchapi/internal/domain"

// Result is the envelope returned by one pipeline run.
type Result struct {
	total       int
	items       []domain.Product
	advice      string
	highlighted []int
}

// NewResult assembles a result envelope. Highlighted indices outside the
// item window are dropped so the advice can never reference a missing item.
func NewResult(total int, items []domain.Product, advice string, highlighted []int) Result {
	valid := make([]int, 0, len(highlighted))
	for _, idx := range highlighted {
		if idx >= 0 && idx < len(items) {
			valid = append(valid, idx)
		}
	}
	return Result{total: total, items: items, advice: advice, highlighted: valid}
}

// Total returns the full match count, ignoring pagination.
func (r Result) Total() int { return r.total }

// Items returns the returned page of products.
func (r Result) Items() []domain.Product { return r.items }

// Showing returns the number of rows actually returned.
func (r Result) Showing() int { return len(r.items) }

// Advice returns the advisory message.
func (r Result) Advice() string { return r.advice }

// Highlighted returns indices into Items referenced by the advice.
func (r Result) Highlighted() []int { return r.highlighted }

// WithAdvice returns a copy carrying the advisory output. Used by the
// orchestrator, which fetches rows before generating advice.
func (r Result) WithAdvice(advice string, highlighted []int) Result {
	return NewResult(r.total, r.items, advice, highlighted)
}
