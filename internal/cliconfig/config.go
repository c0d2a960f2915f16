// Package cliconfig holds the configuration of the calpage command: its
// defaults, the TOML config file, CALPAGE_* environment overrides and the
// precedence of explicitly set flags over both.
package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/logger"
	"github.com/reugn/go-calendar/marking"
)

// ErrInvalidConfig is returned by Validate for an unusable configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds CLI configuration for calpage.
type Config struct {
	Locale   string
	Timezone string
	FirstDay int

	ShowSixWeeks    bool
	HideExtraDays   bool
	ShowWeekNumbers bool

	MinDate string
	MaxDate string

	// Marks are recurrence rules in the "name=cron" form.
	Marks []string
	// Rules are recurrence rules read from the config file.
	Rules []marking.Rule
	// Marked are explicitly marked ISO 8601 dates.
	Marked []string

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Locale:   adapter.DefaultLocale,
		Timezone: "Local",
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.FirstDay < 0 || c.FirstDay > 6 {
		return fmt.Errorf("%w: first day %d is out of range [0, 6]", ErrInvalidConfig, c.FirstDay)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	a, err := c.NewAdapter(nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	minDate, err := c.parseBound(a, "min date", c.MinDate)
	if err != nil {
		return err
	}
	maxDate, err := c.parseBound(a, "max date", c.MaxDate)
	if err != nil {
		return err
	}
	if a.IsValid(minDate) && a.IsValid(maxDate) && a.IsAfter(minDate, maxDate) {
		return fmt.Errorf("%w: min date %s is after max date %s", ErrInvalidConfig, c.MinDate, c.MaxDate)
	}

	if _, err := c.MarkingRules(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, d := range c.Marked {
		if _, err := a.ParseISO(d); err != nil {
			return fmt.Errorf("%w: marked date: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c *Config) parseBound(a adapter.Adapter, name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := a.ParseISO(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}
	return t, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// AdapterOptions returns the adapter options for the configured locale,
// time zone and first day of the week.
func (c *Config) AdapterOptions(log logger.Logger) (adapter.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return adapter.Options{}, err
	}
	return adapter.Options{
		Location:       loc,
		FirstDayOfWeek: time.Weekday(c.FirstDay),
		Locale:         c.Locale,
		Logger:         log,
	}, nil
}

// NewAdapter returns a date adapter built from AdapterOptions.
func (c *Config) NewAdapter(log logger.Logger) (*adapter.TimeAdapter, error) {
	opts, err := c.AdapterOptions(log)
	if err != nil {
		return nil, err
	}
	return adapter.NewTimeAdapter(opts)
}

// MarkingRules returns the file rules followed by the parsed Marks.
func (c *Config) MarkingRules() ([]marking.Rule, error) {
	rules := make([]marking.Rule, 0, len(c.Rules)+len(c.Marks))
	for _, rule := range c.Rules {
		if rule.Name == "" {
			rule.Name = rule.Cron
		}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	for _, mark := range c.Marks {
		rule, err := marking.ParseRule(mark)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer, so that zero can be configured.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setStringsFromString splits a sep-separated list and sets the destination.
func (s *configSetter) setStringsFromString(flag, value, sep string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var items []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}
