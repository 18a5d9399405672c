package service

import (
	"context"
	"time"

	"pricetimeline/internal/domain"
	"pricetimeline/internal/repository"
	"pricetimeline/internal/timeline"
)

// TimelineService computes calendar-grid layouts for stored products.
// "Today" comes from an injectable clock resolved in the configured zone,
// so axis boundaries are deterministic in tests and stable across DST.
type TimelineService struct {
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	loc         *time.Location
	now         func() time.Time
}

// NewTimelineService creates a new timeline service. The location decides
// which calendar day counts as "today" at any given instant.
func NewTimelineService(
	productRepo repository.ProductRepository,
	offerRepo repository.OfferRepository,
	loc *time.Location,
) *TimelineService {
	return &TimelineService{
		productRepo: productRepo,
		offerRepo:   offerRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (s *TimelineService) WithClock(now func() time.Time) *TimelineService {
	s.now = now
	return s
}

// GetTimeline builds the timeline for one product. A non-nil pinned day
// replaces "today" wholesale, which keeps renders reproducible.
func (s *TimelineService) GetTimeline(ctx context.Context, slug string, pinned *time.Time) (*timeline.Timeline, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	offers, err := s.offerRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	today := timeline.Day(s.now().In(s.loc))
	if pinned != nil {
		today = timeline.Day(*pinned)
	}

	tl := timeline.Build(offers, today)
	return &tl, nil
}
