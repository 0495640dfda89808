// Package analytics turns sparse per-day registration counts into the
// dense daily series the admin dashboard charts.
package analytics

import (
	"errors"
	"time"
)

// DayFormat is the calendar-day key format used for observations and
// series entries.
const DayFormat = "2006-01-02"

// ErrInvalidWindow is returned when a window's start falls after its end.
var ErrInvalidWindow = errors.New("invalid window: start after end")

// DailyCount is one entry of a dense daily series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FillDailySeries walks every calendar day from start to end inclusive
// and emits one entry per day: the observed count for days present in
// observations, zero otherwise. Comparisons are by UTC calendar date;
// the time-of-day of both bounds is discarded. Observation keys that
// fall outside the window, or that are not well-formed day strings,
// are simply never matched.
func FillDailySeries(start, end time.Time, observations map[string]int) ([]DailyCount, error) {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	if startDay.After(endDay) {
		return nil, ErrInvalidWindow
	}

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	series := make([]DailyCount, 0, days)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayFormat)
		series = append(series, DailyCount{Date: key, Count: observations[key]})
	}

	return series, nil
}

// truncateToDay drops the time-of-day, pinning the instant to midnight UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
