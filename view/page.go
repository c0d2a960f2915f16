package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/dateutil"
	"github.com/reugn/go-calendar/logger"
	"github.com/reugn/go-calendar/marking"
)

const (
	defaultCellWidth = 4
	weekNumberWidth  = 3
	titleLayout      = "January 2006"
)

// PageOptions configures RenderPage.
type PageOptions struct {
	// FirstDay is the first column of the grid, 0 for Sunday.
	FirstDay int

	// ShowSixWeeks pads the page with an extra week, see dateutil.Page.
	ShowSixWeeks bool

	// HideExtraDays leaves the cells of adjacent months blank.
	HideExtraDays bool

	// ShowWeekNumbers prefixes every row with its week number.
	ShowWeekNumbers bool

	// MinDate and MaxDate bound the enabled days; a zero value is unbounded.
	MinDate time.Time
	MaxDate time.Time

	// MarkedDates decorates days by marking format key.
	MarkedDates marking.MarkedDates

	// CellWidth is the width of a day column. Defaults to 4.
	CellWidth int

	Logger logger.Logger
}

// RenderPage writes the month of date as a grid: a title, the weekday
// header and one row per week of the page.
//
// A day cell shows the day of month. Today is prefixed with '>', marked
// days are suffixed with '*' and selected days with '+'. Days outside
// [MinDate, MaxDate] or marked disabled are shown in parentheses.
func RenderPage(w io.Writer, a adapter.Adapter, date time.Time, opts PageOptions) error {
	log := logger.OrNoOp(opts.Logger).With("component", "view")
	if !a.IsValid(date) {
		log.Debug("skipping invalid page date")
		return nil
	}
	if opts.CellWidth < defaultCellWidth {
		opts.CellWidth = defaultCellWidth
	}

	page := dateutil.Page(a, date, opts.FirstDay, opts.ShowSixWeeks)
	log.Trace("render page", "month", a.Format(date, "2006-01"), "cells", len(page))

	var b strings.Builder
	gutter := ""
	if opts.ShowWeekNumbers {
		gutter = strings.Repeat(" ", weekNumberWidth+1)
	}

	rowWidth := 7*opts.CellWidth + 6
	title := fit(a.Format(date, titleLayout), Style{Width: rowWidth, Align: AlignCenter})
	b.WriteString(gutter + strings.TrimRight(title, " ") + "\n")

	b.WriteString(gutter)
	if err := RenderLabels(&b, headerLabels(a, opts)); err != nil {
		return err
	}

	now := a.Date()
	for row := 0; row+7 <= len(page); row += 7 {
		week := page[row : row+7]
		if opts.ShowWeekNumbers {
			fmt.Fprintf(&b, "%*d ", weekNumberWidth, dateutil.GetWeekNumber(a, week[0]))
		}
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = dayCell(a, d, date, now, opts)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// headerLabels returns the weekday labels rotated so that the first label
// matches the first column of the grid.
func headerLabels(a adapter.Adapter, opts PageOptions) []Label {
	labels := WeekDaysNames(a, Style{Width: opts.CellWidth, Align: AlignRight})
	shift := 0
	if fa, ok := a.(interface{ FirstDayOfWeek() time.Weekday }); ok {
		shift = int(fa.FirstDayOfWeek())
	}
	offset := ((opts.FirstDay-shift)%7 + 7) % 7
	rotated := make([]Label, 0, len(labels))
	rotated = append(rotated, labels[offset:]...)
	rotated = append(rotated, labels[:offset]...)
	for i := range rotated {
		rotated[i].Key = i
	}
	return rotated
}

func dayCell(a adapter.Adapter, d, month, now time.Time, opts PageOptions) string {
	if opts.HideExtraDays && !a.IsSameMonth(d, month) {
		return strings.Repeat(" ", opts.CellWidth)
	}

	m, _ := opts.MarkedDates.Get(a, d)
	disabled := m.Disabled ||
		(a.IsValid(opts.MinDate) && a.IsBefore(d, a.StartOfDay(opts.MinDate))) ||
		(a.IsValid(opts.MaxDate) && a.IsAfter(d, a.StartOfDay(opts.MaxDate)))

	prefix, suffix := " ", " "
	switch {
	case disabled:
		prefix, suffix = "(", ")"
	case a.IsSameDay(d, now):
		prefix = ">"
	}
	if !disabled {
		switch {
		case m.Selected:
			suffix = "+"
		case m.Marked:
			suffix = "*"
		}
	}

	cell := fmt.Sprintf("%s%2d%s", prefix, a.Day(d), suffix)
	return fit(cell, Style{Width: opts.CellWidth, Align: AlignRight})
}
