package timeline

import (
	"testing"
	"time"

	"pricetimeline/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	today := date(2025, time.December, 15)
	offers := []domain.Offer{
		{
			RetailerName: "Lidl",
			ValidFrom:    datePtr(2025, time.December, 15),
			ValidTo:      datePtr(2025, time.December, 17),
		},
		{
			RetailerName: "Albert",
			ValidFrom:    datePtr(2025, time.December, 20),
			ValidTo:      datePtr(2025, time.December, 20),
		},
		{
			RetailerName: "Billa",
		},
	}

	tl := Build(offers, today)

	assert.Len(t, tl.Axis, 6)
	assert.Len(t, tl.Days, 6)
	assert.Len(t, tl.Rows, 3)

	// Rows keep the offers' input order.
	assert.Equal(t, "Lidl", tl.Rows[0].Offer.RetailerName)
	assert.Equal(t, []Span{{StartIndex: 0, Length: 3}}, tl.Rows[0].Spans)

	assert.Equal(t, "Albert", tl.Rows[1].Offer.RetailerName)
	assert.Equal(t, []Span{{StartIndex: 5, Length: 1}}, tl.Rows[1].Spans)

	assert.Equal(t, "Billa", tl.Rows[2].Offer.RetailerName)
	assert.Empty(t, tl.Rows[2].Spans)
}

func TestBuild_NoOffers(t *testing.T) {
	today := date(2025, time.December, 15)

	tl := Build(nil, today)

	assert.Equal(t, []time.Time{today}, tl.Axis)
	assert.Len(t, tl.Days, 1)
	assert.True(t, tl.Days[0].FirstOfMonth)
	assert.Empty(t, tl.Rows)
}

func TestBuild_Idempotent(t *testing.T) {
	today := date(2025, time.December, 15)
	offers := []domain.Offer{
		{
			RetailerName: "Kaufland",
			ValidFrom:    datePtr(2025, time.December, 16),
			ValidTo:      datePtr(2025, time.December, 28),
		},
	}

	assert.Equal(t, Build(offers, today), Build(offers, today))
}
