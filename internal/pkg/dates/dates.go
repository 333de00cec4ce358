// Package dates holds calendar-date helpers. All dates in this service are
// local calendar dates formatted YYYY-MM-DD; no timezone conversion happens
// anywhere, and the "yesterday" boundary uses the server's local clock.
package dates

import (
	"time"
)

const Layout = "2006-01-02"

// Truncate drops the time-of-day component, keeping the location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current local calendar date.
func Today() time.Time {
	return Truncate(time.Now())
}

// Yesterday returns the local calendar date before today.
func Yesterday() time.Time {
	return Today().AddDate(0, 0, -1)
}

// Parse parses a YYYY-MM-DD string in local time.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// Format renders a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Range returns every calendar date from start through end, inclusive.
func Range(start, end time.Time) []time.Time {
	var days []time.Time
	for d := Truncate(start); !d.After(Truncate(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// At combines a calendar date with a wall-clock "15:04" string. The zero time
// and false are returned when the clock string does not parse.
func At(date time.Time, clock string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}
