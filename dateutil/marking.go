package dateutil

import (
	"time"

	"github.com/reugn/go-calendar/adapter"
)

// DateData is a snapshot of a calendar day as handed to calendar callbacks.
type DateData struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Timestamp  int64  `json:"timestamp"`
	DateString string `json:"dateString"`
}

// GetDateData returns the DateData of date. Month is 1-based and Timestamp
// is in Unix milliseconds. An invalid date gives the zero DateData.
func GetDateData(a adapter.Adapter, date time.Time) DateData {
	if !a.IsValid(date) {
		return DateData{}
	}
	return DateData{
		Year:       a.Year(date),
		Month:      int(a.Month(date)),
		Day:        a.Day(date),
		Timestamp:  date.UnixMilli(),
		DateString: ToMarkingFormat(a, date),
	}
}

// ToMarkingFormat returns the YYYY-MM-DD key of the calendar cell of d, or
// the empty string for an invalid date.
func ToMarkingFormat(a adapter.Adapter, d time.Time) string {
	if !a.IsValid(d) {
		return ""
	}
	return a.ToISO(d)
}
