package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "CALPAGE_"

// ApplyEnvConfig applies CALPAGE_* environment variables to the Config
// struct. Environment values override the config file but never a flag
// that has been explicitly set (changed map).
//
// CALPAGE_MARK and CALPAGE_MARKED hold ';'-separated lists, since cron
// expressions may contain commas.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("locale", os.Getenv(EnvPrefix+"LOCALE"), &cfg.Locale)
	s.setString("timezone", os.Getenv(EnvPrefix+"TIMEZONE"), &cfg.Timezone)
	if err := s.setIntFromString("first-day", os.Getenv(EnvPrefix+"FIRST_DAY"), &cfg.FirstDay); err != nil {
		return err
	}

	s.setBoolFromString("six-weeks", os.Getenv(EnvPrefix+"SIX_WEEKS"), &cfg.ShowSixWeeks)
	s.setBoolFromString("hide-extra-days", os.Getenv(EnvPrefix+"HIDE_EXTRA_DAYS"), &cfg.HideExtraDays)
	s.setBoolFromString("week-numbers", os.Getenv(EnvPrefix+"WEEK_NUMBERS"), &cfg.ShowWeekNumbers)

	s.setString("min-date", os.Getenv(EnvPrefix+"MIN_DATE"), &cfg.MinDate)
	s.setString("max-date", os.Getenv(EnvPrefix+"MAX_DATE"), &cfg.MaxDate)
	s.setStringsFromString("mark", os.Getenv(EnvPrefix+"MARK"), ";", &cfg.Marks)
	s.setStringsFromString("marked", os.Getenv(EnvPrefix+"MARKED"), ";", &cfg.Marked)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
