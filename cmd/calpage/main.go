package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/internal/cliconfig"
	"github.com/reugn/go-calendar/logger"
)

const longHelp = `Render calendar month pages, weeks and day lists in the terminal.

Days can be marked explicitly or from cron style recurrence rules, and the
month view can follow changes of the config file.

Configuration is read from $HOME/.calpage/config.toml, then from CALPAGE_*
environment variables, then from flags, each overriding the previous one.`

var exampleUsage = strings.TrimSpace(`
  calpage month 2026-10-18 --first-day 1 --week-numbers
  calpage month --mark "payday=0 0 25 * *" --mark "standup=0 9 * * 1-5"
  calpage week 2026-10-18 --format "Mon 02 Jan"
  calpage days -n 3
  calpage info 2026-12-25
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the state shared by the calpage commands.
type app struct {
	// flags holds defaults overridden by explicitly set flags only.
	flags   cliconfig.Config
	cfgPath string
	changed map[string]bool

	cfg cliconfig.Config
	log *logger.ZerologLogger

	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

func newApp(out, errOut io.Writer) *app {
	cfg := cliconfig.DefaultConfig()
	return &app{
		flags:  cfg,
		cfg:    cfg,
		log:    logger.NewZerologLogger(errOut, logger.LevelInfo),
		out:    out,
		errOut: errOut,
		now:    time.Now,
	}
}

// configFile returns the config file in use, or the empty string.
func (p *app) configFile() string {
	if p.cfgPath != "" {
		return p.cfgPath
	}
	return cliconfig.DefaultConfigPath()
}

// loadConfig layers the config file and the environment over the flag
// defaults, keeping the value of every explicitly set flag.
func (p *app) loadConfig() error {
	cfg := p.flags

	if cfgFile := p.configFile(); cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&cfg, fc, p.changed)
	} else if p.cfgPath != "" {
		return fmt.Errorf("load config: %w: %s", os.ErrNotExist, p.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, p.changed); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.NewLogger(p.errOut)
	if err != nil {
		return err
	}
	p.cfg = cfg
	p.log = log
	p.log.Debug("configuration", "config", cfg)
	return nil
}

// adapter returns a date adapter for the loaded configuration.
func (p *app) adapter() (*adapter.TimeAdapter, error) {
	opts, err := p.cfg.AdapterOptions(p.log)
	if err != nil {
		return nil, err
	}
	opts.Clock = p.now
	return adapter.NewTimeAdapter(opts)
}

// date returns the date of the optional positional argument, or today.
func (p *app) date(a adapter.Adapter, args []string) (time.Time, error) {
	if len(args) == 0 {
		return a.Date(), nil
	}
	return a.ParseISO(args[0])
}

func newRootCmd(p *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "calpage",
		Short:         "Render calendar month pages in the terminal",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Build set of changed flags
			p.changed = map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { p.changed[f.Name] = true })
			return p.loadConfig()
		},
	}
	root.SetOut(p.out)
	root.SetErr(p.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&p.cfgPath, "config", "", "path to config file (default: $HOME/.calpage/config.toml)")
	flags.StringVar(&p.flags.Locale, "locale", p.flags.Locale, "locale of weekday names and titles (BCP 47)")
	flags.StringVar(&p.flags.Timezone, "timezone", p.flags.Timezone, "IANA time zone in which days are evaluated")
	flags.IntVar(&p.flags.FirstDay, "first-day", p.flags.FirstDay, "first day of the week, 0 for Sunday")
	flags.StringVar(&p.flags.LogLevel, "log-level", p.flags.LogLevel, "log level (trace, debug, info, warn, error, off)")

	root.AddCommand(
		newMonthCmd(p),
		newWeekCmd(p),
		newDaysCmd(p),
		newInfoCmd(p),
	)
	return root
}

func main() {
	p := newApp(os.Stdout, os.Stderr)
	if err := newRootCmd(p).Execute(); err != nil {
		p.log.Error("calpage", "error", err)
		os.Exit(1)
	}
}
