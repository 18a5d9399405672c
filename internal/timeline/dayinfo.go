package timeline

import "time"

// DayInfo is per-axis-index calendar metadata for the renderer.
// Month is zero-based; FirstOfMonth marks the first axis entry and every
// entry whose month differs from the previous one, so the grid can draw
// month boundaries.
type DayInfo struct {
	Date         time.Time    `json:"date"`
	Day          int          `json:"day"`
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	Weekday      time.Weekday `json:"weekday"`
	FirstOfMonth bool         `json:"first_of_month"`
	Weekend      bool         `json:"weekend"`
}

// DeriveDayInfos returns one DayInfo per axis entry, in axis order.
func DeriveDayInfos(axis []time.Time) []DayInfo {
	infos := make([]DayInfo, 0, len(axis))
	for i, d := range axis {
		wd := d.Weekday()
		infos = append(infos, DayInfo{
			Date:         d,
			Day:          d.Day(),
			Month:        int(d.Month()) - 1,
			Year:         d.Year(),
			Weekday:      wd,
			FirstOfMonth: i == 0 || d.Month() != axis[i-1].Month(),
			Weekend:      wd == time.Saturday || wd == time.Sunday,
		})
	}
	return infos
}
