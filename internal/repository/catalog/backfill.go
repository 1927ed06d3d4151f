package catalog

import (
	"context"
	"fmt"

	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/producttype"
)

// UnclassifiedProduct is the slice of a product the type backfill needs.
type UnclassifiedProduct struct {
	ID         int64
	Title      string
	Content    string
	Categories []string
}

// TypeAssignment is one backfill outcome. A nil Type marks the product as
// classified-but-unmatched so it is not picked up again.
type TypeAssignment struct {
	ID   int64
	Type *producttype.Type
}

// ListUnclassified returns the next batch of products that have not been
// through type classification yet, in stable id order.
func (r *Repo) ListUnclassified(ctx context.Context, batchSize int) ([]UnclassifiedProduct, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, COALESCE(p.content, p.description, ''),
		        COALESCE(array_agg(c.name) FILTER (WHERE c.name IS NOT NULL), '{}')
		 FROM products p
		 LEFT JOIN product_categories pc ON pc.product_id = p.id
		 LEFT JOIN categories c ON c.id = pc.category_id
		 WHERE p.type_checked_at IS NULL
		 GROUP BY p.id
		 ORDER BY p.id
		 LIMIT $1`,
		batchSize,
	)
	if err != nil {
		return nil, fmt.Errorf("query unclassified: %w: %w", err, domain.ErrQueryFailed)
	}
	defer rows.Close()

	var out []UnclassifiedProduct
	for rows.Next() {
		var u UnclassifiedProduct
		if err := rows.Scan(&u.ID, &u.Title, &u.Content, &u.Categories); err != nil {
			return nil, fmt.Errorf("scan unclassified: %w: %w", err, domain.ErrQueryFailed)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unclassified: %w: %w", err, domain.ErrQueryFailed)
	}
	return out, nil
}

// ApplyTypes writes one batch of classification outcomes in a single
// transaction, stamping type_checked_at so the batch is not re-read.
func (r *Repo) ApplyTypes(ctx context.Context, assignments []TypeAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w: %w", err, domain.ErrQueryFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, a := range assignments {
		var typeVal *string
		if a.Type != nil {
			s := string(*a.Type)
			typeVal = &s
		}
		_, err := tx.Exec(ctx,
			`UPDATE products SET type = $1, type_checked_at = NOW() WHERE id = $2`,
			typeVal, a.ID,
		)
		if err != nil {
			return fmt.Errorf("update product %d: %w: %w", a.ID, err, domain.ErrQueryFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w: %w", err, domain.ErrQueryFailed)
	}
	return nil
}
