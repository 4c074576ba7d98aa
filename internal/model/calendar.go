package model

import "time"

// MonthMarkers reports, for each day of the given month, whether at least
// one task exists on that date. Keys are day numbers starting at 1.
func MonthMarkers(tasks []Task, year int, month time.Month) map[int]bool {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	dates := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		dates[t.Date] = true
	}

	out := make(map[int]bool, days)
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		out[d] = dates[date]
	}
	return out
}

// StripDate is one entry of the quick-pick date strip.
type StripDate struct {
	Date    string
	Weekday string
	Day     int
}

// DateStrip returns the five-day quick-pick window, two days either side
// of the given anchor. The anchor is always the actual current date, not
// the selected one.
func DateStrip(today time.Time) []StripDate {
	out := make([]StripDate, 0, 5)
	for offset := -2; offset <= 2; offset++ {
		d := today.AddDate(0, 0, offset)
		out = append(out, StripDate{
			Date:    d.Format(DateLayout),
			Weekday: d.Format("Mon"),
			Day:     d.Day(),
		})
	}
	return out
}
