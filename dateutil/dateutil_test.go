package dateutil_test

import (
	"testing"
	"time"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/dateutil"
	"github.com/reugn/go-calendar/internal/assert"
)

// Sunday, October 18th 2026.
var fixedNow = time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)

func newAdapter(t *testing.T) adapter.Adapter {
	t.Helper()
	a, err := adapter.NewTimeAdapter(adapter.Options{
		Clock: func() time.Time { return fixedNow },
	})
	assert.IsNil(t, err)
	return a
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetDate(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)

	assert.Equal(t, dateutil.GetDate(a, ""), fixedNow)
	assert.Equal(t, dateutil.GetDate(a, "2024-03-10"), day(2024, time.March, 10))
	assert.True(t, dateutil.GetDate(a, "2024-03-32").IsZero())
}

func TestSameMonth(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)
	x := day(2024, time.March, 1)
	y := day(2024, time.March, 31)
	invalid := time.Time{}
	firstCentury := time.Date(1, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, dateutil.SameMonth(a, nil, &y))
	assert.False(t, dateutil.SameMonth(a, &x, nil))
	// two valid dates never pass the guard
	assert.False(t, dateutil.SameMonth(a, &x, &y))
	assert.False(t, dateutil.SameMonth(a, &invalid, &y))
	// only an invalid second date reaches the comparison
	assert.True(t, dateutil.SameMonth(a, &firstCentury, &invalid))
	assert.False(t, dateutil.SameMonth(a, &x, &invalid))
}

func TestSameWeekAndSameDate(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)
	x := day(2024, time.March, 11)
	y := day(2024, time.March, 13)
	invalid := time.Time{}
	noon := time.Date(1, time.January, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, dateutil.SameWeek(a, &x, &y))
	assert.False(t, dateutil.SameDate(a, &x, &y))
	assert.False(t, dateutil.SameWeek(a, nil, nil))
	assert.False(t, dateutil.SameDate(a, nil, &y))

	assert.True(t, dateutil.SameWeek(a, &noon, &invalid))
	assert.True(t, dateutil.SameDate(a, &noon, &invalid))
}

func TestIsToday(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)
	now := a.Date()

	assert.False(t, dateutil.IsToday(a, nil))
	assert.False(t, dateutil.IsToday(a, &now))
}

func TestIsPastDate(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)

	assert.False(t, dateutil.IsPastDate(a, a.Date()))
	assert.False(t, dateutil.IsPastDate(a, a.StartOfDay(a.Date())))
	assert.True(t, dateutil.IsPastDate(a, a.StartOfDay(a.Date()).Add(-time.Nanosecond)))
	assert.True(t, dateutil.IsPastDate(a, day(2026, time.October, 17)))
	assert.False(t, dateutil.IsPastDate(a, day(2026, time.October, 19)))
	assert.False(t, dateutil.IsPastDate(a, time.Time{}))
}

func TestIsGTEAndIsLTE(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)
	x := day(2024, time.March, 10)
	y := day(2024, time.March, 11)
	invalid := time.Time{}

	tests := []struct {
		name string
		x, y time.Time
		gte  bool
		lte  bool
	}{
		{"before", x, y, false, true},
		{"after", y, x, true, false},
		{"same instant", x, x, false, false},
		{"invalid first", invalid, y, false, false},
		{"invalid second", y, invalid, false, false},
		{"both invalid", invalid, invalid, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, dateutil.IsGTE(a, tt.x, tt.y), tt.gte)
			assert.Equal(t, dateutil.IsLTE(a, tt.x, tt.y), tt.lte)
		})
	}
}

func TestIsDateNotInRange(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)
	minDate := day(2024, time.March, 1)
	maxDate := day(2024, time.March, 31)

	assert.True(t, dateutil.IsDateNotInRange(a, day(2024, time.March, 15), minDate, maxDate))
	assert.True(t, dateutil.IsDateNotInRange(a, minDate, minDate, maxDate))
	assert.True(t, dateutil.IsDateNotInRange(a, maxDate, minDate, maxDate))
	assert.False(t, dateutil.IsDateNotInRange(a, day(2024, time.April, 1), minDate, maxDate))
	assert.False(t, dateutil.IsDateNotInRange(a, time.Time{}, time.Time{}, maxDate))
}

func TestGetWeekNumber(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)

	assert.Equal(t, dateutil.GetWeekNumber(a, day(2026, time.January, 1)), 0)
	assert.Equal(t, dateutil.GetWeekNumber(a, day(2026, time.January, 3)), 0)
	assert.Equal(t, dateutil.GetWeekNumber(a, day(2026, time.January, 4)), 1)
	assert.Equal(t, dateutil.GetWeekNumber(a, day(2026, time.October, 18)), 42)
	assert.Equal(t, dateutil.GetWeekNumber(a, time.Time{}), 0)
}

func TestOnSameDateRange(t *testing.T) {
	t.Parallel()
	a := newAdapter(t)

	tests := []struct {
		name     string
		r        dateutil.DateRange
		expected bool
	}{
		{
			name: "same page",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 3),
				SecondDay:        day(2024, time.March, 7),
				NumberOfDays:     7,
				FirstDateInRange: "2024-03-01",
			},
			expected: true,
		},
		{
			name: "next page",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 3),
				SecondDay:        day(2024, time.March, 8),
				NumberOfDays:     7,
				FirstDateInRange: "2024-03-01",
			},
			expected: false,
		},
		{
			name: "partial days round up",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 3),
				SecondDay:        time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC),
				NumberOfDays:     7,
				FirstDateInRange: "2024-03-01",
			},
			expected: false,
		},
		{
			name: "three day pages",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 4),
				SecondDay:        day(2024, time.March, 6),
				NumberOfDays:     3,
				FirstDateInRange: "2024-03-01",
			},
			expected: true,
		},
		{
			name: "days before the range start",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.February, 27),
				SecondDay:        day(2024, time.February, 29),
				NumberOfDays:     3,
				FirstDateInRange: "2024-03-01",
			},
			expected: true,
		},
		{
			name: "invalid range start",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 3),
				SecondDay:        day(2024, time.March, 3),
				NumberOfDays:     7,
				FirstDateInRange: "",
			},
			expected: false,
		},
		{
			name: "empty page",
			r: dateutil.DateRange{
				FirstDay:         day(2024, time.March, 3),
				SecondDay:        day(2024, time.March, 3),
				FirstDateInRange: "2024-03-01",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, dateutil.OnSameDateRange(a, tt.r), tt.expected)
		})
	}
}
