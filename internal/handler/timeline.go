package handler

import (
	"net/http"
	"time"

	"pricetimeline/internal/timeline"

	"github.com/go-chi/chi/v5"
)

// DayInfoResponse is per-column calendar metadata for the grid renderer.
type DayInfoResponse struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Weekday      int    `json:"weekday"`
	FirstOfMonth bool   `json:"first_of_month"`
	Weekend      bool   `json:"weekend"`
}

// TimelineRowResponse pairs one offer with its merged-cell spans. The
// renderer draws each span as one cell spanning `length` columns from
// `start_index`, plain cells for uncovered columns, and skips columns
// inside a span.
type TimelineRowResponse struct {
	Offer OfferResponse   `json:"offer"`
	Spans []timeline.Span `json:"spans"`
}

// TimelineResponse is the full layout for one product.
type TimelineResponse struct {
	Slug string                `json:"slug"`
	Axis []string              `json:"axis"`
	Days []DayInfoResponse     `json:"days"`
	Rows []TimelineRowResponse `json:"rows"`
}

// getTimeline handles GET /products/{slug}/timeline.
// An optional ?date=YYYY-MM-DD pins "today" for deterministic rendering.
func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var pinned *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		t, err := time.Parse(dayFormat, raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date; use YYYY-MM-DD"})
			return
		}
		pinned = &t
	}

	tl, err := h.timelineService.GetTimeline(r.Context(), slug, pinned)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTimelineResponse(slug, tl))
}

func toTimelineResponse(slug string, tl *timeline.Timeline) TimelineResponse {
	resp := TimelineResponse{
		Slug: slug,
		Axis: make([]string, 0, len(tl.Axis)),
		Days: make([]DayInfoResponse, 0, len(tl.Days)),
		Rows: make([]TimelineRowResponse, 0, len(tl.Rows)),
	}

	for _, d := range tl.Axis {
		resp.Axis = append(resp.Axis, d.Format(dayFormat))
	}
	for _, d := range tl.Days {
		resp.Days = append(resp.Days, DayInfoResponse{
			Date:         d.Date.Format(dayFormat),
			Day:          d.Day,
			Month:        d.Month,
			Year:         d.Year,
			Weekday:      int(d.Weekday),
			FirstOfMonth: d.FirstOfMonth,
			Weekend:      d.Weekend,
		})
	}
	for _, row := range tl.Rows {
		spans := row.Spans
		if spans == nil {
			spans = []timeline.Span{}
		}
		resp.Rows = append(resp.Rows, TimelineRowResponse{
			Offer: toOfferResponse(row.Offer),
			Spans: spans,
		})
	}

	return resp
}
