package repository

import (
	"context"
	"time"

	"pricetimeline/internal/domain"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Upsert(ctx context.Context, product domain.Product) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.ProductSummary, error)
	Delete(ctx context.Context, slug string) error
}

// OfferRepository defines offer data operations
type OfferRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]domain.Offer, error)
	ReplaceForProduct(ctx context.Context, productID int64, offers []domain.Offer) error
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
