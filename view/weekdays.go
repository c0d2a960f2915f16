// Package view renders calendar headers and month grids for terminals.
package view

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/reugn/go-calendar/adapter"
)

// Alignment of a label within its cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style controls how a label is laid out. A zero Width leaves the text
// unpadded.
type Style struct {
	Width int
	Align Alignment
}

// Label is a single line of text in a header row.
type Label struct {
	Key                int
	Text               string
	AllowFontScaling   bool
	NumberOfLines      int
	AccessibilityLabel string
	Style              Style
}

// WeekDaysNames returns one label per weekday name provided by the adapter,
// in adapter order and keyed by position. Labels do not scale, are limited
// to one line and carry an empty accessibility label.
func WeekDaysNames(a adapter.Adapter, style Style) []Label {
	dayNames := a.Weekdays()
	labels := make([]Label, len(dayNames))
	for index, day := range dayNames {
		labels[index] = Label{
			Key:                index,
			Text:               day,
			AllowFontScaling:   false,
			NumberOfLines:      1,
			AccessibilityLabel: "",
			Style:              style,
		}
	}
	return labels
}

// String returns the label text fitted to its style.
func (l Label) String() string {
	text := l.Text
	if l.NumberOfLines == 1 {
		text = strings.Join(strings.Fields(text), " ")
	}
	return fit(text, l.Style)
}

// RenderLabels writes the labels on a single line separated by spaces.
func RenderLabels(w io.Writer, labels []Label) error {
	cells := make([]string, len(labels))
	for i, label := range labels {
		cells[i] = label.String()
	}
	_, err := io.WriteString(w, strings.Join(cells, " ")+"\n")
	return err
}

// fit truncates or pads text to style.Width terminal cells.
func fit(text string, style Style) string {
	if style.Width <= 0 {
		return text
	}
	text = runewidth.Truncate(text, style.Width, "")
	switch style.Align {
	case AlignRight:
		return runewidth.FillLeft(text, style.Width)
	case AlignCenter:
		pad := style.Width - runewidth.StringWidth(text)
		left := strings.Repeat(" ", pad/2)
		return runewidth.FillRight(left+text, style.Width)
	}
	return runewidth.FillRight(text, style.Width)
}
