package pipeline

import (
	"context"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/search"
	"github.com/cadeso/searchapi/internal/usecase/advise"
)

// Parser converts a raw query into a Filter. Never fails: it degrades to
// the fallback filter internally.
type Parser interface {
	Parse(ctx context.Context, query string) filter.Filter
}

// Catalog runs the compiled item and count queries.
type Catalog interface {
	Search(ctx context.Context, f filter.Filter, page search.Page) (items []domain.Product, total int, err error)
}

// Advisor produces the result summary. Never fails: it degrades to a
// template internally.
type Advisor interface {
	Advise(ctx context.Context, query string, total int, items []domain.Product) advise.Advice
}
