package classify

import (
	"context"

	"github.com/cadeso/searchapi/internal/domain/producttype"
	"github.com/cadeso/searchapi/internal/repository/catalog"
)

// Repository reads unclassified products and writes type assignments.
type Repository interface {
	ListUnclassified(ctx context.Context, batchSize int) ([]catalog.UnclassifiedProduct, error)
	ApplyTypes(ctx context.Context, assignments []catalog.TypeAssignment) error
}

// Classifier assigns a product type from text, or nil when nothing matches.
type Classifier interface {
	Classify(title, content string, categories []string) *producttype.Type
}
