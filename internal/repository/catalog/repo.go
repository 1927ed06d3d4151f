// Package catalog is the pgx repository over the product catalog store.
// Products are written by the upstream sync; this repository only reads
// them, except for the type backfill used by the reindex run.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadeso/searchapi/internal/db"
	"github.com/cadeso/searchapi/internal/domain"
	"github.com/cadeso/searchapi/internal/domain/filter"
	"github.com/cadeso/searchapi/internal/domain/producttype"
	"github.com/cadeso/searchapi/internal/domain/search"
)

const productColumns = `id, title, full_title, description, content, brand, artist,
	type, price, old_price, stock, stock_sold, image, url, visible`

// Default order: popularity first, cheapest first on ties. Unsold products
// (NULL stock_sold) sort last.
const defaultOrder = "ORDER BY stock_sold DESC NULLS LAST, price ASC"

// Repo reads the product catalog.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Search runs the item query and the count query for one filter. Both
// queries share the exact same compiled condition set; they differ only in
// projection, ordering and limit/offset.
func (r *Repo) Search(ctx context.Context, f filter.Filter, page search.Page) ([]domain.Product, int, error) {
	itemSQL, countSQL, condArgs := buildQueries(f)

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, condArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w: %w", err, domain.ErrQueryFailed)
	}

	// Limit/offset bind after the shared condition parameters.
	itemArgs := append(append([]any{}, condArgs...), page.Limit(), page.Offset())
	rows, err := r.pool.Query(ctx, itemSQL, itemArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w: %w", err, domain.ErrQueryFailed)
	}
	defer rows.Close()

	items, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("scan products: %w: %w", err, domain.ErrQueryFailed)
	}
	return items, total, nil
}

// buildQueries compiles a filter into the item and count SQL plus the
// shared condition parameters. The item query carries two extra positional
// parameters for limit and offset.
func buildQueries(f filter.Filter) (itemSQL, countSQL string, condArgs []any) {
	set := compileConditions(f)
	where := set.WhereClause()
	condArgs = set.Args()

	countSQL = fmt.Sprintf("SELECT COUNT(*) FROM products %s", where)
	itemSQL = fmt.Sprintf(
		"SELECT %s FROM products %s %s LIMIT $%d OFFSET $%d",
		productColumns, where, defaultOrder, len(condArgs)+1, len(condArgs)+2,
	)
	return itemSQL, countSQL, condArgs
}

// compileConditions maps a filter onto the typed condition set. The
// visibility predicate is always present; keywords only constrain the
// query when the parser marked them as adding context beyond the type.
func compileConditions(f filter.Filter) *db.ConditionSet {
	set := db.NewConditions().Literal("visible = TRUE")

	if t := f.Type(); t != nil {
		set.Equal("type", string(*t))
	}
	if f.UseKeywords() {
		set.FullTextAny("search_vector", f.Keywords())
	}
	if min := f.PriceMin(); min != nil {
		set.GreaterOrEqual("price", *min)
	}
	if max := f.PriceMax(); max != nil {
		set.LessOrEqual("price", *max)
	}
	if artist := f.Artist(); artist != nil {
		set.EqualFold("artist", *artist)
	}
	return set
}

// Artists lists the distinct artist names of visible products, for the
// parser vocabulary.
func (r *Repo) Artists(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT artist FROM products
		 WHERE visible = TRUE AND artist IS NOT NULL AND artist <> ''
		 ORDER BY artist`,
	)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w: %w", err, domain.ErrQueryFailed)
	}
	defer rows.Close()

	var artists []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan artist: %w: %w", err, domain.ErrQueryFailed)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w: %w", err, domain.ErrQueryFailed)
	}
	return artists, nil
}

// Ping checks store availability.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", err, domain.ErrStoreUnavailable)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	items := []domain.Product{}
	for rows.Next() {
		var (
			p       domain.Product
			typeRaw *string
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.FullTitle, &p.Description, &p.Content,
			&p.Brand, &p.Artist, &typeRaw, &p.Price, &p.OldPrice,
			&p.Stock, &p.StockSold, &p.Image, &p.URL, &p.Visible,
		)
		if err != nil {
			return nil, err
		}
		if typeRaw != nil {
			if t, ok := producttype.Parse(*typeRaw); ok {
				p.Type = &t
			}
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
