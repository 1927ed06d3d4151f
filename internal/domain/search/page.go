// Package search holds the pagination and result envelope types of the
// catalog search pipeline.
package search

// Pagination defaults, used when the caller provides none.
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// Page is a normalized limit/offset pair.
type Page struct {
	limit  int
	offset int
}

// NewPage normalizes pagination parameters: non-positive limits take the
// default, limits above max are clamped, negative offsets become zero.
func NewPage(limit, offset, defaultLimit, maxLimit int) Page {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{limit: limit, offset: offset}
}

// Limit returns the page size.
func (p Page) Limit() int { return p.limit }

// Offset returns the number of rows skipped.
func (p Page) Offset() int { return p.offset }
