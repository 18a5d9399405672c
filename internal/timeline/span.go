package timeline

import (
	"time"

	"pricetimeline/internal/domain"
)

// Span is one maximal contiguous run of active days for a single offer,
// expressed as axis indices. The renderer turns each span into one grid
// cell spanning Length columns starting at StartIndex.
type Span struct {
	StartIndex int `json:"start_index"`
	Length     int `json:"length"`
}

// CompactSpans run-length-encodes the offer's active days over the axis.
// Spans come out in ascending index order, never overlapping and never
// adjacent. An offer missing either validity bound, or with a start after
// its end, produces no spans.
func CompactSpans(offer domain.Offer, axis []time.Time) []Span {
	var spans []Span
	var open *Span

	for i, day := range axis {
		switch {
		case offer.ActiveOn(day) && open == nil:
			open = &Span{StartIndex: i, Length: 1}
		case offer.ActiveOn(day):
			open.Length++
		case open != nil:
			spans = append(spans, *open)
			open = nil
		}
	}
	if open != nil {
		spans = append(spans, *open)
	}
	return spans
}
