package view_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/internal/assert"
	"github.com/reugn/go-calendar/marking"
	"github.com/reugn/go-calendar/view"
)

func newAdapter(t *testing.T, now time.Time) adapter.Adapter {
	t.Helper()
	a, err := adapter.NewTimeAdapter(adapter.Options{
		Clock: func() time.Time { return now },
	})
	assert.IsNil(t, err)
	return a
}

func TestWeekDaysNames(t *testing.T) {
	t.Parallel()
	a := adapter.NewDefault()

	labels := view.WeekDaysNames(a, view.Style{Width: 3})
	assert.Len(t, labels, 7)
	for i, label := range labels {
		assert.Equal(t, label.Key, i)
		assert.Equal(t, label.Text, a.Weekdays()[i])
		assert.False(t, label.AllowFontScaling)
		assert.Equal(t, label.NumberOfLines, 1)
		assert.Equal(t, label.AccessibilityLabel, "")
		assert.Equal(t, label.Style, view.Style{Width: 3})
	}
}

func TestRenderLabels(t *testing.T) {
	t.Parallel()
	a := adapter.NewDefault()

	var b bytes.Buffer
	assert.IsNil(t, view.RenderLabels(&b, view.WeekDaysNames(a, view.Style{Width: 2})))
	assert.Equal(t, b.String(), "Su Mo Tu We Th Fr Sa\n")

	b.Reset()
	assert.IsNil(t, view.RenderLabels(&b, view.WeekDaysNames(a, view.Style{Width: 5, Align: view.AlignCenter})))
	assert.Equal(t, b.String(), " Sun   Mon   Tue   Wed   Thu   Fri   Sat \n")
}

func TestLabelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    view.Label
		expected string
	}{
		{view.Label{Text: "Mon\nday", NumberOfLines: 1}, "Mon day"},
		{view.Label{Text: "Mon\nday", NumberOfLines: 2}, "Mon\nday"},
		{view.Label{Text: "日曜日", NumberOfLines: 1, Style: view.Style{Width: 4}}, "日曜"},
		{view.Label{Text: "日", NumberOfLines: 1, Style: view.Style{Width: 4, Align: view.AlignRight}}, "  日"},
		{view.Label{Text: "Wed", NumberOfLines: 1, Style: view.Style{Width: 4}}, "Wed "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label.String(), tt.expected)
	}
}

func TestRenderPage(t *testing.T) {
	t.Parallel()
	a := newAdapter(t, time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC))

	var b bytes.Buffer
	err := view.RenderPage(&b, a, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), view.PageOptions{
		MinDate:     time.Date(2026, time.February, 3, 12, 0, 0, 0, time.UTC),
		MarkedDates: marking.MarkedDates{"2026-02-14": {Marked: true}},
	})
	assert.IsNil(t, err)

	expected := strings.Join([]string{
		"          February 2026",
		" Sun  Mon  Tue  Wed  Thu  Fri  Sat",
		"( 1) ( 2)   3    4    5    6    7",
		"  8    9  >10   11   12   13   14*",
		" 15   16   17   18   19   20   21",
		" 22   23   24   25   26   27   28",
	}, "\n") + "\n"
	assert.Equal(t, b.String(), expected)
}

func TestRenderPageOptions(t *testing.T) {
	t.Parallel()
	a := newAdapter(t, time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC))
	march := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	var b bytes.Buffer
	err := view.RenderPage(&b, a, march, view.PageOptions{
		FirstDay:      1,
		HideExtraDays: true,
		MaxDate:       time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC),
		MarkedDates:   marking.MarkedDates{}.Select("2026-03-02"),
	})
	assert.IsNil(t, err)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, lines[1], " Mon  Tue  Wed  Thu  Fri  Sat  Sun")
	assert.Equal(t, lines[2], strings.Repeat(" ", 30)+"  1")
	assert.True(t, strings.HasPrefix(lines[3], "  2+   3 "), lines[3])
	assert.Equal(t, lines[7], " 30  (31)")

	b.Reset()
	err = view.RenderPage(&b, a, march, view.PageOptions{ShowWeekNumbers: true})
	assert.IsNil(t, err)
	lines = strings.Split(b.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "     Sun"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  9   1 "), lines[2])
}

func TestRenderPageInvalid(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	assert.IsNil(t, view.RenderPage(&b, adapter.NewDefault(), time.Time{}, view.PageOptions{}))
	assert.Equal(t, b.Len(), 0)
}
