package timeline

import (
	"time"

	"pricetimeline/internal/domain"
)

// Row pairs one offer with its compacted spans on the shared axis.
type Row struct {
	Offer domain.Offer `json:"offer"`
	Spans []Span       `json:"spans"`
}

// Timeline is the complete layout for one product: the shared day axis,
// one row per offer in input order, and per-day calendar metadata.
type Timeline struct {
	Axis []time.Time `json:"axis"`
	Days []DayInfo   `json:"days"`
	Rows []Row       `json:"rows"`
}

// Build assembles the full timeline for a set of offers rendered together.
// The axis is computed once and shared; each offer is compacted against it
// independently, so rows keep the offers' input order.
func Build(offers []domain.Offer, today time.Time) Timeline {
	axis := BuildAxis(offers, today)

	rows := make([]Row, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, Row{Offer: o, Spans: CompactSpans(o, axis)})
	}

	return Timeline{
		Axis: axis,
		Days: DeriveDayInfos(axis),
		Rows: rows,
	}
}
