package dateutil

import (
	"time"

	"github.com/reugn/go-calendar/adapter"
)

// DefaultPartialWeekDays is the number of days PartialWeekDates returns
// when asked for zero days.
const DefaultPartialWeekDays = 7

// WeekDates returns the seven consecutive days of the week containing date,
// the week starting on firstDay (0 for Sunday through 6 for Saturday, taken
// modulo 7). It returns nil when date is empty or cannot be parsed.
func WeekDates(a adapter.Adapter, date string, firstDay int) []time.Time {
	if date == "" {
		return nil
	}
	d, err := a.ParseISO(date)
	if err != nil || !a.IsValid(d) {
		return nil
	}

	dayOfTheWeek := (int(d.Weekday()) - firstDay%7 + 7) % 7
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = a.AddDays(d, i-dayOfTheWeek)
	}
	return days
}

// FormatWeekDates returns WeekDates formatted with layout.
func FormatWeekDates(a adapter.Adapter, date string, firstDay int, layout string) []string {
	days := WeekDates(a, date, firstDay)
	if days == nil {
		return nil
	}
	formatted := make([]string, len(days))
	for i, d := range days {
		formatted[i] = a.Format(d, layout)
	}
	return formatted
}

// PartialWeekDates returns the marking format of numberOfDays consecutive
// days starting at date, or at today when date is empty. Zero days means
// DefaultPartialWeekDays.
func PartialWeekDates(a adapter.Adapter, date string, numberOfDays int) []string {
	if numberOfDays == 0 {
		numberOfDays = DefaultPartialWeekDays
	}

	origin := GetDate(a, date)
	partialWeek := make([]string, 0, max(numberOfDays, 0))
	for index := 0; index < numberOfDays; index++ {
		partialWeek = append(partialWeek, GenerateDay(a, origin, index))
	}
	return partialWeek
}

// GenerateDay returns the marking format of origin shifted by daysOffset
// days, or the empty string for an invalid origin.
func GenerateDay(a adapter.Adapter, origin time.Time, daysOffset int) string {
	if !a.IsValid(origin) {
		return ""
	}
	return ToMarkingFormat(a, a.AddDays(origin, daysOffset))
}

// GenerateDayString is GenerateDay for an ISO 8601 origin.
func GenerateDayString(a adapter.Adapter, origin string, daysOffset int) string {
	d, err := a.ParseISO(origin)
	if err != nil {
		return ""
	}
	return GenerateDay(a, d, daysOffset)
}
