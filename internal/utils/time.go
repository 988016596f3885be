package util

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from `from` to `to`. Rounding
// absorbs DST transitions where a day is 23 or 25 hours long.
func DaysBetween(from, to time.Time) int {
	a := StartOfDay(from)
	b := StartOfDay(to)
	return int(math.Round(b.Sub(a).Hours() / 24))
}
