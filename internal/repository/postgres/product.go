package postgres

import (
	"context"
	"database/sql"

	"pricetimeline/internal/domain"
)

// ProductRepo implements repository.ProductRepository
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Upsert inserts a product or, when the slug already exists, refreshes its
// mutable fields. Returns the product ID either way.
func (r *ProductRepo) Upsert(ctx context.Context, product domain.Product) (int64, error) {
	query := `
		INSERT INTO products (slug, name, source_url, regular_price_text, crawled_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			source_url = EXCLUDED.source_url,
			regular_price_text = EXCLUDED.regular_price_text,
			crawled_at = EXCLUDED.crawled_at,
			updated_at = NOW()
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		product.Slug, product.Name, product.SourceURL, product.RegularPriceText, product.CrawledAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetBySlug returns a product without its offers.
// Returns nil when no product has the slug.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	query := `
		SELECT id, slug, name, source_url, regular_price_text, crawled_at, created_at, updated_at
		FROM products
		WHERE slug = $1
	`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.Name, &p.SourceURL, &p.RegularPriceText,
		&p.CrawledAt, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// List returns all products with their current offer counts,
// most recently crawled first.
func (r *ProductRepo) List(ctx context.Context) ([]domain.ProductSummary, error) {
	query := `
		SELECT p.slug, p.name, COUNT(o.id), p.crawled_at
		FROM products p
		LEFT JOIN offers o ON o.product_id = p.id
		GROUP BY p.id
		ORDER BY p.crawled_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ProductSummary
	for rows.Next() {
		var s domain.ProductSummary
		if err := rows.Scan(&s.Slug, &s.Name, &s.OfferCount, &s.CrawledAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// Delete removes a product; offers go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound when the slug does not exist.
func (r *ProductRepo) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE slug = $1`, slug)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
