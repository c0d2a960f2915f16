package dateutil

import (
	"math"
	"time"

	"github.com/reugn/go-calendar/adapter"
)

const millisPerDay = 1000 * 3600 * 24

// GetDate returns the current instant when d is empty, and d parsed as an
// ISO 8601 date otherwise. An unparsable d yields the zero time.
func GetDate(a adapter.Adapter, d string) time.Time {
	if d == "" {
		return a.Date()
	}
	t, _ := a.ParseISO(d)
	return t
}

// SameMonth reports whether x and y fall in the same month.
//
// The guard requires y to be invalid, so for two valid dates the result is
// always false. Use Adapter.IsSameMonth for a plain comparison.
func SameMonth(a adapter.Adapter, x, y *time.Time) bool {
	if x != nil && y != nil && a.IsValid(*x) && !a.IsValid(*y) {
		return a.IsSameMonth(*x, *y)
	}
	return false
}

// SameWeek compares the days of x and y. It shares the inverted guard of
// SameMonth.
func SameWeek(a adapter.Adapter, x, y *time.Time) bool {
	if x != nil && y != nil && a.IsValid(*x) && !a.IsValid(*y) {
		return a.IsSameDay(*x, *y)
	}
	return false
}

// SameDate compares the first days of the weeks containing x and y. It
// shares the inverted guard of SameMonth.
func SameDate(a adapter.Adapter, x, y *time.Time) bool {
	if x != nil && y != nil && a.IsValid(*x) && !a.IsValid(*y) {
		return a.IsSameDay(a.StartOfWeek(*x), a.StartOfWeek(*y))
	}
	return false
}

// DateRange describes two days and a paging window of NumberOfDays days
// counted from FirstDateInRange.
type DateRange struct {
	FirstDay         time.Time
	SecondDay        time.Time
	NumberOfDays     int
	FirstDateInRange string
}

// OnSameDateRange reports whether FirstDay and SecondDay fall into the same
// NumberOfDays-long page, pages being counted from FirstDateInRange.
func OnSameDateRange(a adapter.Adapter, r DateRange) bool {
	if r.NumberOfDays <= 0 {
		return false
	}
	start, err := a.ParseISO(r.FirstDateInRange)
	if err != nil {
		return false
	}

	firstTotalDays := math.Ceil(float64(a.Diff(r.FirstDay, start, adapter.Milliseconds)) / millisPerDay)
	secondTotalDays := math.Ceil(float64(a.Diff(r.SecondDay, start, adapter.Milliseconds)) / millisPerDay)
	n := float64(r.NumberOfDays)

	return math.Floor(firstTotalDays/n) == math.Floor(secondTotalDays/n)
}

// IsPastDate reports whether date is before the start of today. It is false
// for an invalid date.
func IsPastDate(a adapter.Adapter, date time.Time) bool {
	if !a.IsValid(date) {
		return false
	}
	return a.IsBefore(date, a.StartOfDay(a.Date()))
}

// IsToday compares date with the current instant using SameDate.
func IsToday(a adapter.Adapter, date *time.Time) bool {
	now := a.Date()
	return SameDate(a, date, &now)
}

// IsGTE reports whether x is after y. It is false if either date is invalid.
func IsGTE(a adapter.Adapter, x, y time.Time) bool {
	if !a.IsValid(x) || !a.IsValid(y) {
		return false
	}
	return a.IsAfter(x, y)
}

// IsLTE reports whether x is before y. It is false if either date is invalid.
func IsLTE(a adapter.Adapter, x, y time.Time) bool {
	if !a.IsValid(x) || !a.IsValid(y) {
		return false
	}
	return a.IsBefore(x, y)
}

// IsDateNotInRange reports whether date lies within [minDate, maxDate].
// Despite its name it returns true for dates inside the range. An invalid
// date is in no range.
func IsDateNotInRange(a adapter.Adapter, date, minDate, maxDate time.Time) bool {
	if !a.IsValid(date) {
		return false
	}
	return a.IsWithinRange(date, minDate, maxDate)
}

// GetWeekNumber returns the number of whole weeks between the start of the
// week containing January 1st of d's year and d, or 0 for an invalid date.
func GetWeekNumber(a adapter.Adapter, d time.Time) int {
	if !a.IsValid(d) {
		return 0
	}
	beginningOfYear := a.StartOfWeek(a.StartOfYear(d))
	return int(a.Diff(d, beginningOfYear, adapter.Weeks))
}
