package testutil

import (
	"time"

	"pricetimeline/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Date builds a civil day (midnight UTC) for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr builds an optional civil day for validity bounds.
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// NewTestOffer creates an offer with a validity window
func NewTestOffer(retailer string, from, to *time.Time) domain.Offer {
	return domain.Offer{
		RetailerName: retailer,
		PriceText:    "19,90 Kč",
		Currency:     "CZK",
		ValidFrom:    from,
		ValidTo:      to,
		CreatedAt:    time.Now(),
	}
}

// NewTestProduct creates a product with the given offers
func NewTestProduct(id int64, slug string, offers ...domain.Offer) *domain.Product {
	return &domain.Product{
		ID:        id,
		Slug:      slug,
		Name:      slug,
		SourceURL: "https://www.kupi.cz/sleva/" + slug,
		Offers:    offers,
		CrawledAt: time.Now(),
	}
}
