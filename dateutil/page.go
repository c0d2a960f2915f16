package dateutil

import (
	"time"

	"github.com/reugn/go-calendar/adapter"
)

// fromTo returns every day from a to b inclusive, stepping by calendar day.
func fromTo(a, b time.Time) []time.Time {
	var days []time.Time
	for from := a; !from.After(b); from = from.AddDate(0, 0, 1) {
		days = append(days, from)
	}
	return days
}

// Month returns every day of the month of date, at midnight in the
// location of date.
func Month(date time.Time) []time.Time {
	year, month, _ := date.Date()
	loc := date.Location()
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(year, month, days, 0, 0, 0, 0, loc)

	return fromTo(firstDay, lastDay)
}

// Page returns the grid of days shown for the month of date: the days of
// the month, preceded by the days of the previous month back to the first
// day of the week and followed by the days of the next month up to the last
// day of the week. firstDayOfWeek is 0 for Sunday through 6 for Saturday.
//
// With showSixWeeks, a month is extended by one more week when the weekday
// number of its first day plus its length, divided by 6, is below 6. The
// test ignores firstDayOfWeek, so a month that already fills six rows can
// get a seventh (March 2026 starting on Monday spans 49 days).
//
// The result always has a multiple of 7 days: 28, 35, 42 or 49. Page
// returns nil for an invalid date.
func Page(a adapter.Adapter, date time.Time, firstDayOfWeek int, showSixWeeks bool) []time.Time {
	if !a.IsValid(date) {
		return nil
	}
	days := Month(a.StartOfDay(date))
	first, last := days[0], days[len(days)-1]

	// a first day of 0 is stored as 7; (x+7-7)%7 then walks back to Sunday
	fdow := (7 + firstDayOfWeek%7) % 7
	if fdow == 0 {
		fdow = 7
	}
	ldow := (fdow + 6) % 7

	from := first
	daysBefore := int(from.Weekday())
	if daysBefore != fdow {
		from = from.AddDate(0, 0, -((daysBefore + 7 - fdow) % 7))
	}

	to := last
	if day := int(to.Weekday()); day != ldow {
		to = to.AddDate(0, 0, (ldow+7-day)%7)
	}

	daysForSixWeeks := float64(daysBefore+len(days))/6 >= 6
	if showSixWeeks && !daysForSixWeeks {
		to = to.AddDate(0, 0, 7)
	}

	var before, after []time.Time
	if IsLTE(a, from, first) || a.IsSameDay(from, first) {
		before = fromTo(from, first)
	}
	if IsGTE(a, to, last) || a.IsSameDay(to, last) {
		after = fromTo(last, to)
	}

	page := make([]time.Time, 0, len(before)+len(days)-2+len(after))
	page = append(page, before...)
	page = append(page, days[1:len(days)-1]...)
	return append(page, after...)
}
