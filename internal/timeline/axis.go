// Package timeline computes compact calendar-grid layouts for offer
// validity windows: a shared day axis, per-offer runs of active days
// collapsed into spans, and per-day calendar metadata for the renderer.
// Everything here is a pure function over already-normalized civil days
// (time.Time at midnight UTC); "today" is always an explicit parameter.
package timeline

import (
	"time"

	"pricetimeline/internal/domain"
)

// Day normalizes an arbitrary instant to a civil day: the calendar date of
// t in its own location, pinned to midnight UTC. All axis entries and
// validity bounds are expected in this form.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildAxis returns every civil day from today through the latest ValidTo
// across offers, inclusive. Offers without a validity window, or whose
// window ends before today, never extend the axis; with no future end date
// the axis is just [today]. Advancement uses AddDate so month and year
// rollovers follow the real calendar.
func BuildAxis(offers []domain.Offer, today time.Time) []time.Time {
	start := Day(today)

	end := start
	for _, o := range offers {
		if o.ValidTo == nil {
			continue
		}
		if to := Day(*o.ValidTo); to.After(end) {
			end = to
		}
	}

	axis := []time.Time{start}
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		axis = append(axis, d)
	}
	return axis
}
