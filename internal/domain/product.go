// Package domain holds the catalog entities and sentinel errors shared
// across the pipeline.
package domain

import (
	"math"

	"github.com/cadeso/searchapi/internal/domain/producttype"
)

// Product is a catalog row. It is written by the upstream catalog sync;
// this service only reads it. The full-text search vector is a generated
// column in the store and never leaves the repository layer.
type Product struct {
	ID          int64
	Title       string
	FullTitle   string
	Description string
	Content     string
	Brand       string
	Artist      *string
	Type        *producttype.Type
	Price       float64
	OldPrice    *float64
	Stock       int
	StockSold   *int
	Image       string
	URL         string
	Visible     bool
}

// OnSale reports whether the product has a discounted price.
// Derived from price/old_price, never stored.
func (p *Product) OnSale() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// DiscountPercent returns the rounded discount percentage, 0 when not on sale.
func (p *Product) DiscountPercent() int {
	if !p.OnSale() || *p.OldPrice <= 0 {
		return 0
	}
	return int(math.Round((1 - p.Price / *p.OldPrice) * 100))
}

// TypeLabel renders the product type for display, "Overig" when unclassified.
func (p *Product) TypeLabel() string {
	return producttype.Label(p.Type)
}
