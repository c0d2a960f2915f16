package cliconfig

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/marking"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "monday first in paris",
			mutate: func(c *Config) { c.FirstDay = 1; c.Timezone = "Europe/Paris"; c.Locale = "fr-FR" },
		},
		{
			name:    "first day out of range",
			mutate:  func(c *Config) { c.FirstDay = 7 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown time zone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unsupported locale",
			mutate:  func(c *Config) { c.Locale = "not a locale" },
			wantErr: adapter.ErrUnsupportedLocale,
		},
		{
			name:    "invalid min date",
			mutate:  func(c *Config) { c.MinDate = "2026-02-30" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "min date after max date",
			mutate:  func(c *Config) { c.MinDate = "2026-10-20"; c.MaxDate = "2026-10-01" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "invalid mark",
			mutate:  func(c *Config) { c.Marks = []string{"broken=not a cron"} },
			wantErr: marking.ErrInvalidRule,
		},
		{
			name:    "invalid file rule",
			mutate:  func(c *Config) { c.Rules = []marking.Rule{{Name: "empty"}} },
			wantErr: marking.ErrInvalidRule,
		},
		{
			name:    "invalid marked date",
			mutate:  func(c *Config) { c.Marked = []string{"tomorrow"} },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewAdapter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Asia/Tokyo"
	cfg.FirstDay = 1
	cfg.Locale = "en-GB"

	a, err := cfg.NewAdapter(nil)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", a.Location().String())
	assert.Equal(t, time.Monday, a.FirstDayOfWeek())
	assert.Equal(t, "Mon", a.Weekdays()[0])
}

func TestMarkingRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []marking.Rule{{Cron: "0 0 1 * *", DotColor: "blue"}}
	cfg.Marks = []string{"payday=0 0 25 * *"}

	rules, err := cfg.MarkingRules()
	require.NoError(t, err)
	assert.Equal(t, []marking.Rule{
		{Name: "0 0 1 * *", Cron: "0 0 1 * *", DotColor: "blue"},
		{Name: "payday", Cron: "0 0 25 * *"},
	}, rules)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"

	var b bytes.Buffer
	log, err := cfg.NewLogger(&b)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Zero(t, b.Len())
	log.Warn("shown", "key", "value")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), "value")

	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger(&b)
	assert.Error(t, err)
}
