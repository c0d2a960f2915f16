// Package marking builds the marked-dates table of a calendar: a map from
// the marking format of a day to the way that day is decorated. Dates can
// be marked explicitly or expanded from recurrence rules written as cron
// expressions.
package marking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/dateutil"
)

// ErrInvalidRule is returned for a rule that cannot be parsed.
var ErrInvalidRule = errors.New("invalid marking rule")

// Marking describes the decoration of a single day.
type Marking struct {
	Marked   bool     `json:"marked,omitempty"`
	Selected bool     `json:"selected,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
	DotColor string   `json:"dotColor,omitempty"`
	Rules    []string `json:"rules,omitempty"`
}

// MarkedDates maps marking-format keys to day decorations.
type MarkedDates map[string]Marking

// Rule marks every day on which its cron expression fires.
type Rule struct {
	Name     string `toml:"name"`
	Cron     string `toml:"cron"`
	DotColor string `toml:"dot_color"`
}

// ParseRule parses a rule in the "name=cron expression" form. The name is
// optional; without it the expression names the rule.
func ParseRule(value string) (Rule, error) {
	name, expr, found := strings.Cut(value, "=")
	if !found {
		name, expr = "", name
	}
	rule := Rule{
		Name: strings.TrimSpace(name),
		Cron: strings.TrimSpace(expr),
	}
	if rule.Name == "" {
		rule.Name = rule.Cron
	}
	if err := rule.Validate(); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// Validate checks that the rule has a parsable cron expression.
func (r Rule) Validate() error {
	_, err := r.compile()
	return err
}

func (r Rule) compile() (*cronexpr.Expression, error) {
	if r.Cron == "" {
		return nil, fmt.Errorf("%w: %s: empty expression", ErrInvalidRule, r.Name)
	}
	expr, err := cronexpr.Parse(r.Cron)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.Name, err)
	}
	return expr, nil
}

// Expand returns the days in [from, to] on which any of the rules fires.
// A day matched by several rules is listed once with every rule name.
// Bounds are whole days in the adapter location.
func Expand(a adapter.Adapter, rules []Rule, from, to time.Time) (MarkedDates, error) {
	marked := make(MarkedDates)
	if !a.IsValid(from) || !a.IsValid(to) {
		return marked, nil
	}

	start := a.StartOfDay(from)
	end := a.AddDays(a.StartOfDay(to), 1)

	for _, rule := range rules {
		expr, err := rule.compile()
		if err != nil {
			return nil, err
		}

		next := expr.Next(start.Add(-time.Nanosecond))
		for !next.IsZero() && next.Before(end) {
			key := dateutil.ToMarkingFormat(a, next)
			m := marked[key]
			m.Marked = true
			m.Rules = append(m.Rules, rule.Name)
			if m.DotColor == "" {
				m.DotColor = rule.DotColor
			}
			marked[key] = m

			// at most one entry per day: resume at the end of this day
			next = expr.Next(a.AddDays(a.StartOfDay(next), 1).Add(-time.Nanosecond))
		}
	}
	return marked, nil
}

// FromDates marks each of the given ISO 8601 dates.
func FromDates(a adapter.Adapter, dates []string) (MarkedDates, error) {
	marked := make(MarkedDates, len(dates))
	for _, date := range dates {
		d, err := a.ParseISO(date)
		if err != nil {
			return nil, err
		}
		key := dateutil.ToMarkingFormat(a, d)
		m := marked[key]
		m.Marked = true
		marked[key] = m
	}
	return marked, nil
}

// Get returns the marking of the day of d.
func (m MarkedDates) Get(a adapter.Adapter, d time.Time) (Marking, bool) {
	marking, ok := m[dateutil.ToMarkingFormat(a, d)]
	return marking, ok
}

// Select flags the given keys as selected.
func (m MarkedDates) Select(keys ...string) MarkedDates {
	for _, key := range keys {
		marking := m[key]
		marking.Selected = true
		m[key] = marking
	}
	return m
}

// Disable flags the given keys as disabled.
func (m MarkedDates) Disable(keys ...string) MarkedDates {
	for _, key := range keys {
		marking := m[key]
		marking.Disabled = true
		m[key] = marking
	}
	return m
}

// Merge folds other into m. Flags are or-ed, rule names concatenated and
// an existing dot color wins.
func (m MarkedDates) Merge(other MarkedDates) MarkedDates {
	for key, o := range other {
		marking := m[key]
		marking.Marked = marking.Marked || o.Marked
		marking.Selected = marking.Selected || o.Selected
		marking.Disabled = marking.Disabled || o.Disabled
		if marking.DotColor == "" {
			marking.DotColor = o.DotColor
		}
		marking.Rules = append(marking.Rules, o.Rules...)
		m[key] = marking
	}
	return m
}

// Keys returns the marked keys in calendar order.
func (m MarkedDates) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
