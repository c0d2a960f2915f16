package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/reugn/go-calendar/marking"
)

// FileConfig mirrors Config with optional scalars, so that a zero value in
// the file can be told apart from an absent key.
type FileConfig struct {
	Locale          string         `toml:"locale"`
	Timezone        string         `toml:"timezone"`
	FirstDay        *int           `toml:"first_day"`
	ShowSixWeeks    *bool          `toml:"six_weeks"`
	HideExtraDays   *bool          `toml:"hide_extra_days"`
	ShowWeekNumbers *bool          `toml:"week_numbers"`
	MinDate         string         `toml:"min_date"`
	MaxDate         string         `toml:"max_date"`
	Marks           []string       `toml:"marks"`
	Rules           []marking.Rule `toml:"rules"`
	Marked          []string       `toml:"marked"`
	LogLevel        string         `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.calpage/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".calpage", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("locale", fc.Locale, &cfg.Locale)
	s.setString("timezone", fc.Timezone, &cfg.Timezone)
	s.setInt("first-day", fc.FirstDay, &cfg.FirstDay)

	s.setBool("six-weeks", fc.ShowSixWeeks, &cfg.ShowSixWeeks)
	s.setBool("hide-extra-days", fc.HideExtraDays, &cfg.HideExtraDays)
	s.setBool("week-numbers", fc.ShowWeekNumbers, &cfg.ShowWeekNumbers)

	s.setString("min-date", fc.MinDate, &cfg.MinDate)
	s.setString("max-date", fc.MaxDate, &cfg.MaxDate)
	s.setStrings("mark", fc.Marks, &cfg.Marks)
	s.setStrings("marked", fc.Marked, &cfg.Marked)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if len(fc.Rules) > 0 {
		cfg.Rules = fc.Rules
	}
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
