package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reugn/go-calendar/logger"
)

// DefaultLocale is the locale used when Options.Locale is empty.
const DefaultLocale = "en-US"

// isoDateLayout is the marking format of a calendar day.
const isoDateLayout = "2006-01-02"

// Layouts accepted by ParseISO. Local layouts are parsed in the adapter
// location, zoned layouts carry their own offset.
var (
	localLayouts = []string{
		isoDateLayout,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	zonedLayouts = []string{
		time.RFC3339,
		time.RFC3339Nano,
	}
)

// sunday is a known Sunday used to derive localized weekday names.
var sunday = time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

// Options configures a TimeAdapter.
type Options struct {
	// Location is the time zone in which calendar days are evaluated.
	// UTC if nil.
	Location *time.Location

	// FirstDayOfWeek is the day StartOfWeek and Weekdays start from.
	FirstDayOfWeek time.Weekday

	// Locale is a BCP 47 language tag (e.g. "fr-FR" or "de"), used for
	// weekday names. DefaultLocale if empty.
	Locale string

	// Clock returns the current instant. time.Now if nil.
	Clock func() time.Time

	// Logger receives debug records for rejected input. No-op if nil.
	Logger logger.Logger
}

// TimeAdapter implements the [Adapter] interface over time.Time values.
type TimeAdapter struct {
	location       *time.Location
	firstDayOfWeek time.Weekday
	tag            language.Tag
	locale         monday.Locale
	weekdays       []string
	clock          func() time.Time
	logger         logger.Logger
}

var _ Adapter = (*TimeAdapter)(nil)

// NewTimeAdapter returns a new TimeAdapter configured as specified.
func NewTimeAdapter(opts Options) (*TimeAdapter, error) {
	if opts.FirstDayOfWeek < time.Sunday || opts.FirstDayOfWeek > time.Saturday {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, opts.FirstDayOfWeek)
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}

	tag, locale, err := resolveLocale(opts.Locale)
	if err != nil {
		return nil, err
	}

	a := &TimeAdapter{
		location:       opts.Location,
		firstDayOfWeek: opts.FirstDayOfWeek,
		tag:            tag,
		locale:         locale,
		clock:          opts.Clock,
		logger:         logger.OrNoOp(opts.Logger).With("component", "adapter"),
	}
	a.weekdays = a.localizedWeekdays()

	a.logger.Trace("adapter created", "locale", string(locale),
		"location", opts.Location.String(), "firstDayOfWeek", opts.FirstDayOfWeek.String())
	return a, nil
}

// NewDefault returns a TimeAdapter for the en-US locale in UTC with weeks
// starting on Sunday.
func NewDefault() *TimeAdapter {
	a, err := NewTimeAdapter(Options{})
	if err != nil {
		panic(err)
	}
	return a
}

// resolveLocale maps a language tag to a locale known to the weekday
// name tables. A tag without a region uses the most likely region for the
// language.
func resolveLocale(value string) (language.Tag, monday.Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, "", unsupportedLocaleError(value)
	}

	base, _ := tag.Base()
	region, _ := tag.Region()
	wanted := base.String() + "_" + region.String()

	var fallback monday.Locale
	for _, l := range monday.ListLocales() {
		if string(l) == wanted {
			return tag, l, nil
		}
		if fallback == "" && strings.HasPrefix(string(l), base.String()+"_") {
			fallback = l
		}
	}
	if fallback != "" {
		return tag, fallback, nil
	}

	return language.Und, "", unsupportedLocaleError(value)
}

func (a *TimeAdapter) localizedWeekdays() []string {
	caser := cases.Title(a.tag)
	names := make([]string, 7)
	for i := range names {
		day := sunday.AddDate(0, 0, (int(a.firstDayOfWeek)+i)%7)
		names[i] = caser.String(monday.Format(day, "Mon", a.locale))
	}
	return names
}

// Location returns the time zone of the adapter.
func (a *TimeAdapter) Location() *time.Location {
	return a.location
}

// FirstDayOfWeek returns the first day of the week of the adapter.
func (a *TimeAdapter) FirstDayOfWeek() time.Weekday {
	return a.firstDayOfWeek
}

// Locale returns the resolved locale name, e.g. "fr_FR".
func (a *TimeAdapter) Locale() string {
	return string(a.locale)
}

// Date returns the current instant in the adapter location.
func (a *TimeAdapter) Date() time.Time {
	return a.clock().In(a.location)
}

// ParseISO parses an ISO 8601 date or date-time. Values without an offset
// are interpreted in the adapter location.
func (a *TimeAdapter) ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value != "" {
		for _, layout := range localLayouts {
			if t, err := time.ParseInLocation(layout, value, a.location); err == nil {
				return t, nil
			}
		}
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.In(a.location), nil
			}
		}
	}

	err := invalidDateError(value)
	a.logger.Debug("rejected date", "value", value, "error", err)
	return time.Time{}, err
}

// ToISO returns the calendar date of t in the adapter location.
func (a *TimeAdapter) ToISO(t time.Time) string {
	return t.In(a.location).Format(isoDateLayout)
}

// Format formats t in the adapter location and locale.
func (a *TimeAdapter) Format(t time.Time, layout string) string {
	return monday.Format(t.In(a.location), layout, a.locale)
}

// IsValid reports whether t is a valid date.
func (a *TimeAdapter) IsValid(t time.Time) bool {
	return !t.IsZero()
}

// IsSameDay reports whether x and y fall on the same calendar day.
func (a *TimeAdapter) IsSameDay(x, y time.Time) bool {
	xy, xm, xd := x.In(a.location).Date()
	yy, ym, yd := y.In(a.location).Date()
	return xy == yy && xm == ym && xd == yd
}

// IsSameMonth reports whether x and y fall in the same month of the same year.
func (a *TimeAdapter) IsSameMonth(x, y time.Time) bool {
	xy, xm, _ := x.In(a.location).Date()
	yy, ym, _ := y.In(a.location).Date()
	return xy == yy && xm == ym
}

// IsBefore reports whether x is strictly before y.
func (a *TimeAdapter) IsBefore(x, y time.Time) bool {
	return x.Before(y)
}

// IsAfter reports whether x is strictly after y.
func (a *TimeAdapter) IsAfter(x, y time.Time) bool {
	return x.After(y)
}

// IsWithinRange reports whether t lies in the closed interval [start, end].
func (a *TimeAdapter) IsWithinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Diff returns x-y in whole units, truncated toward zero. Days, weeks,
// months and years are calendar based, so a day that is 23 or 25 hours
// long across a DST change still counts as one day.
func (a *TimeAdapter) Diff(x, y time.Time, unit Unit) int64 {
	switch unit {
	case Milliseconds:
		return x.Sub(y).Milliseconds()
	case Days:
		return a.diffDays(x, y)
	case Weeks:
		return a.diffDays(x, y) / 7
	case Months:
		return a.diffMonths(x, y)
	case Years:
		return a.diffMonths(x, y) / 12
	}
	return 0
}

func (a *TimeAdapter) diffDays(x, y time.Time) int64 {
	x, y = x.In(a.location), y.In(a.location)
	days := civilDay(x) - civilDay(y)
	switch {
	case days > 0 && timeOfDay(x) < timeOfDay(y):
		days--
	case days < 0 && timeOfDay(x) > timeOfDay(y):
		days++
	}
	return days
}

func (a *TimeAdapter) diffMonths(x, y time.Time) int64 {
	x, y = x.In(a.location), y.In(a.location)
	months := (x.Year()-y.Year())*12 + int(x.Month()) - int(y.Month())
	switch {
	case months > 0 && y.AddDate(0, months, 0).After(x):
		months--
	case months < 0 && y.AddDate(0, months, 0).Before(x):
		months++
	}
	return int64(months)
}

// civilDay returns the number of days since the Unix epoch of the wall
// clock date of t.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// AddDays adds n calendar days to t, keeping the wall clock time.
func (a *TimeAdapter) AddDays(t time.Time, n int) time.Time {
	return t.In(a.location).AddDate(0, 0, n)
}

// StartOfDay returns midnight of the day of t.
func (a *TimeAdapter) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(a.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.location)
}

// StartOfWeek returns midnight of the first day of the week containing t.
func (a *TimeAdapter) StartOfWeek(t time.Time) time.Time {
	day := a.StartOfDay(t)
	offset := (int(day.Weekday()) - int(a.firstDayOfWeek) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfYear returns midnight of January 1st of the year of t.
func (a *TimeAdapter) StartOfYear(t time.Time) time.Time {
	return time.Date(t.In(a.location).Year(), time.January, 1, 0, 0, 0, 0, a.location)
}

func (a *TimeAdapter) Year(t time.Time) int {
	return t.In(a.location).Year()
}

func (a *TimeAdapter) Month(t time.Time) time.Month {
	return t.In(a.location).Month()
}

func (a *TimeAdapter) Day(t time.Time) int {
	return t.In(a.location).Day()
}

// Weekdays returns the localized short weekday names starting with the
// first day of the week.
func (a *TimeAdapter) Weekdays() []string {
	names := make([]string, len(a.weekdays))
	copy(names, a.weekdays)
	return names
}
