package postgres

import (
	"context"
	"database/sql"
	"time"

	"pricetimeline/internal/domain"
)

// OfferRepo implements repository.OfferRepository
type OfferRepo struct {
	db *sql.DB
}

// NewOfferRepo creates a new offer repository
func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

// ListByProduct returns a product's offers in insertion order.
// Validity dates come back as midnight-UTC civil days (DATE columns).
func (r *OfferRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Offer, error) {
	query := `
		SELECT id, product_id, retailer_name, retailer_url, logo_url,
			price_text, price_value, currency, unit,
			discount_text, discount_pct,
			valid_from, valid_to, flyer_url, store_count, created_at
		FROM offers
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

// ReplaceForProduct swaps a product's offer set wholesale in one
// transaction, matching the crawler's snapshot-per-crawl model.
func (r *OfferRepo) ReplaceForProduct(ctx context.Context, productID int64, offers []domain.Offer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM offers WHERE product_id = $1`, productID); err != nil {
		return err
	}

	insert := `
		INSERT INTO offers (product_id, retailer_name, retailer_url, logo_url,
			price_text, price_value, currency, unit,
			discount_text, discount_pct,
			valid_from, valid_to, flyer_url, store_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	for _, o := range offers {
		_, err := tx.ExecContext(ctx, insert,
			productID, o.RetailerName, o.RetailerURL, o.LogoURL,
			o.PriceText, o.PriceValue, o.Currency, o.Unit,
			o.DiscountText, o.DiscountPct,
			o.ValidFrom, o.ValidTo, o.FlyerURL, o.StoreCount,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteEndedBefore deletes offers whose validity ended before the cutoff
// day. Offers without an end date are kept (they are never active, but the
// next crawl replaces them anyway). Returns the number of deleted rows.
func (r *OfferRepo) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE valid_to < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanOffer(rows *sql.Rows) (domain.Offer, error) {
	var o domain.Offer
	var priceValue sql.NullFloat64
	var discountPct, storeCount sql.NullInt64
	var validFrom, validTo sql.NullTime

	err := rows.Scan(
		&o.ID, &o.ProductID, &o.RetailerName, &o.RetailerURL, &o.LogoURL,
		&o.PriceText, &priceValue, &o.Currency, &o.Unit,
		&o.DiscountText, &discountPct,
		&validFrom, &validTo, &o.FlyerURL, &storeCount, &o.CreatedAt,
	)
	if err != nil {
		return domain.Offer{}, err
	}

	if priceValue.Valid {
		o.PriceValue = &priceValue.Float64
	}
	if discountPct.Valid {
		pct := int(discountPct.Int64)
		o.DiscountPct = &pct
	}
	if storeCount.Valid {
		count := int(storeCount.Int64)
		o.StoreCount = &count
	}
	if validFrom.Valid {
		from := validFrom.Time.UTC()
		o.ValidFrom = &from
	}
	if validTo.Valid {
		to := validTo.Time.UTC()
		o.ValidTo = &to
	}

	return o, nil
}
