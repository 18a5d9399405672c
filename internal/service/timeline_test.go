package service

import (
	"context"
	"testing"
	"time"

	"pricetimeline/internal/domain"
	"pricetimeline/internal/testutil"
	"pricetimeline/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pragueLocation(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/Prague")
	assert.NoError(t, err)
	return loc
}

func TestTimelineService_GetTimeline(t *testing.T) {
	productRepo := new(testutil.MockProductRepository)
	offerRepo := new(testutil.MockOfferRepository)

	product := testutil.NewTestProduct(7, "banany")
	offers := []domain.Offer{
		testutil.NewTestOffer("Lidl", testutil.DatePtr(2025, time.December, 15), testutil.DatePtr(2025, time.December, 17)),
		testutil.NewTestOffer("Albert", nil, nil),
	}
	productRepo.On("GetBySlug", mock.Anything, "banany").Return(product, nil)
	offerRepo.On("ListByProduct", mock.Anything, int64(7)).Return(offers, nil)

	loc := pragueLocation(t)
	svc := NewTimelineService(productRepo, offerRepo, loc).
		WithClock(func() time.Time {
			return time.Date(2025, time.December, 15, 10, 30, 0, 0, loc)
		})

	tl, err := svc.GetTimeline(context.Background(), "banany", nil)

	assert.NoError(t, err)
	assert.NotNil(t, tl)
	assert.Equal(t, testutil.Date(2025, time.December, 15), tl.Axis[0])
	assert.Len(t, tl.Axis, 3)
	assert.Equal(t, []timeline.Span{{StartIndex: 0, Length: 3}}, tl.Rows[0].Spans)
	assert.Empty(t, tl.Rows[1].Spans)

	productRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
}

func TestTimelineService_GetTimeline_PinnedDay(t *testing.T) {
	productRepo := new(testutil.MockProductRepository)
	offerRepo := new(testutil.MockOfferRepository)

	product := testutil.NewTestProduct(7, "banany")
	offers := []domain.Offer{
		testutil.NewTestOffer("Lidl", testutil.DatePtr(2025, time.December, 15), testutil.DatePtr(2025, time.December, 17)),
	}
	productRepo.On("GetBySlug", mock.Anything, "banany").Return(product, nil)
	offerRepo.On("ListByProduct", mock.Anything, int64(7)).Return(offers, nil)

	svc := NewTimelineService(productRepo, offerRepo, pragueLocation(t))

	pinned := testutil.Date(2025, time.December, 16)
	tl, err := svc.GetTimeline(context.Background(), "banany", &pinned)

	assert.NoError(t, err)
	assert.Equal(t, pinned, tl.Axis[0])
	assert.Len(t, tl.Axis, 2)
	assert.Equal(t, []timeline.Span{{StartIndex: 0, Length: 2}}, tl.Rows[0].Spans)
}

func TestTimelineService_GetTimeline_ProductMissing(t *testing.T) {
	productRepo := new(testutil.MockProductRepository)
	productRepo.On("GetBySlug", mock.Anything, "neexistuje").Return(nil, nil)

	svc := NewTimelineService(productRepo, new(testutil.MockOfferRepository), pragueLocation(t))

	tl, err := svc.GetTimeline(context.Background(), "neexistuje", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, tl)
}

// Just before Prague midnight the UTC calendar date lags one day behind;
// "today" must follow the configured zone, not UTC.
func TestTimelineService_GetTimeline_DayRollover(t *testing.T) {
	productRepo := new(testutil.MockProductRepository)
	offerRepo := new(testutil.MockOfferRepository)

	product := testutil.NewTestProduct(7, "banany")
	productRepo.On("GetBySlug", mock.Anything, "banany").Return(product, nil)
	offerRepo.On("ListByProduct", mock.Anything, int64(7)).Return([]domain.Offer{}, nil)

	loc := pragueLocation(t)
	svc := NewTimelineService(productRepo, offerRepo, loc).
		WithClock(func() time.Time {
			// 23:30 UTC on Dec 15 is already Dec 16 in Prague.
			return time.Date(2025, time.December, 15, 23, 30, 0, 0, time.UTC)
		})

	tl, err := svc.GetTimeline(context.Background(), "banany", nil)

	assert.NoError(t, err)
	assert.Equal(t, testutil.Date(2025, time.December, 16), tl.Axis[0])
}
