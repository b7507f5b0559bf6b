// Package daily maps calendar dates to official puzzle day numbers.
package daily

import "time"

// Epoch is the date of puzzle day 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD for t in its own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayNumber returns the puzzle number for the calendar date of t, as seen in
// t's location. Dates before Epoch give negative numbers.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}
