// Package adapter defines the date capability consumed by the calendar
// helpers and provides TimeAdapter, the default implementation over
// time.Time.
package adapter

import "time"

// Unit is the granularity of a date difference.
type Unit int

const (
	Milliseconds Unit = iota
	Days
	Weeks
	Months
	Years
)

// Adapter is a pluggable date-capability provider. The calendar helpers
// never touch time.Time arithmetic directly; they go through an Adapter so
// that the notion of "today", the first day of the week, the time zone and
// the locale stay under the caller's control.
//
// The zero time.Time is the invalid date.
type Adapter interface {
	// Date returns the current instant.
	Date() time.Time

	// ParseISO parses an ISO 8601 date or date-time.
	ParseISO(value string) (time.Time, error)

	// ToISO returns the ISO 8601 calendar date (YYYY-MM-DD) of t.
	ToISO(t time.Time) string

	// Format formats t with a Go reference-time layout.
	Format(t time.Time, layout string) string

	IsValid(t time.Time) bool
	IsSameDay(a, b time.Time) bool
	IsSameMonth(a, b time.Time) bool
	IsBefore(a, b time.Time) bool
	IsAfter(a, b time.Time) bool

	// IsWithinRange reports whether t lies in [start, end].
	IsWithinRange(t, start, end time.Time) bool

	// Diff returns a-b in whole units, truncated toward zero.
	Diff(a, b time.Time, unit Unit) int64

	AddDays(t time.Time, n int) time.Time
	StartOfDay(t time.Time) time.Time
	StartOfWeek(t time.Time) time.Time
	StartOfYear(t time.Time) time.Time

	Year(t time.Time) int
	Month(t time.Time) time.Month
	Day(t time.Time) int

	// Weekdays returns the seven short weekday names, starting with the
	// first day of the week.
	Weekdays() []string
}
