package util

import "time"

// TruncateToDay drops the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the whole number of days from "now" to "target", both
// compared at day granularity. Zero means the target is today, negative means
// it has passed.
func DaysUntil(now, target time.Time) int {
	from := TruncateToDay(now.In(time.UTC))
	to := TruncateToDay(target.In(time.UTC))
	return int(to.Sub(from).Hours() / 24)
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
