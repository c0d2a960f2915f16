package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reugn/go-calendar/adapter"
	"github.com/reugn/go-calendar/dateutil"
	"github.com/reugn/go-calendar/internal/cliconfig"
	"github.com/reugn/go-calendar/marking"
	"github.com/reugn/go-calendar/view"
)

func newMonthCmd(p *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "month [date]",
		Short: "Render the month page of a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.renderMonth(p.out, args); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return p.watchMonth(ctx, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&p.flags.ShowSixWeeks, "six-weeks", p.flags.ShowSixWeeks, "always render six weeks")
	flags.BoolVar(&p.flags.HideExtraDays, "hide-extra-days", p.flags.HideExtraDays, "leave days of adjacent months blank")
	flags.BoolVar(&p.flags.ShowWeekNumbers, "week-numbers", p.flags.ShowWeekNumbers, "prefix each week with its number")
	flags.StringVar(&p.flags.MinDate, "min-date", p.flags.MinDate, "first enabled date")
	flags.StringVar(&p.flags.MaxDate, "max-date", p.flags.MaxDate, "last enabled date")
	flags.StringArrayVar(&p.flags.Marks, "mark", p.flags.Marks, `mark days matching a "name=cron" rule (repeatable)`)
	flags.StringSliceVar(&p.flags.Marked, "marked", p.flags.Marked, "mark the given dates")
	flags.BoolVar(&watch, "watch", false, "render again whenever the config file changes")
	return cmd
}

// renderMonth renders the month page of the date argument.
func (p *app) renderMonth(w io.Writer, args []string) error {
	a, err := p.adapter()
	if err != nil {
		return err
	}
	date, err := p.date(a, args)
	if err != nil {
		return err
	}
	opts, err := p.pageOptions(a, date)
	if err != nil {
		return err
	}
	return view.RenderPage(w, a, date, opts)
}

func (p *app) pageOptions(a adapter.Adapter, date time.Time) (view.PageOptions, error) {
	opts := view.PageOptions{
		FirstDay:        p.cfg.FirstDay,
		ShowSixWeeks:    p.cfg.ShowSixWeeks,
		HideExtraDays:   p.cfg.HideExtraDays,
		ShowWeekNumbers: p.cfg.ShowWeekNumbers,
		Logger:          p.log,
	}
	var err error
	if p.cfg.MinDate != "" {
		if opts.MinDate, err = a.ParseISO(p.cfg.MinDate); err != nil {
			return opts, err
		}
	}
	if p.cfg.MaxDate != "" {
		if opts.MaxDate, err = a.ParseISO(p.cfg.MaxDate); err != nil {
			return opts, err
		}
	}

	rules, err := p.cfg.MarkingRules()
	if err != nil {
		return opts, err
	}
	page := dateutil.Page(a, date, p.cfg.FirstDay, p.cfg.ShowSixWeeks)
	if len(page) == 0 {
		return opts, nil
	}
	marked, err := marking.Expand(a, rules, page[0], page[len(page)-1])
	if err != nil {
		return opts, err
	}
	explicit, err := marking.FromDates(a, p.cfg.Marked)
	if err != nil {
		return opts, err
	}
	opts.MarkedDates = marked.Merge(explicit)
	p.log.Debug("marked dates", "count", len(opts.MarkedDates))
	return opts, nil
}

// watchMonth renders the month page again after every change of the
// config file, until ctx is done.
func (p *app) watchMonth(ctx context.Context, args []string) error {
	path := p.configFile()
	if path == "" {
		return fmt.Errorf("watch: no config file")
	}
	return cliconfig.Watch(ctx, path, func() {
		if err := p.loadConfig(); err != nil {
			p.log.Error("reload config", "error", err)
			return
		}
		p.log.Info("config reloaded", "path", path)
		if err := p.renderMonth(p.out, args); err != nil {
			p.log.Error("render month", "error", err)
		}
	}, p.log)
}

func newWeekCmd(p *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "List the days of the week of a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := p.adapter()
			if err != nil {
				return err
			}
			date, err := p.date(a, args)
			if err != nil {
				return err
			}

			iso := dateutil.ToMarkingFormat(a, date)
			days := dateutil.FormatWeekDates(a, iso, p.cfg.FirstDay, layout)
			p.log.Debug("week", "date", iso, "number", dateutil.GetWeekNumber(a, date))
			for _, d := range days {
				if _, err := fmt.Fprintln(p.out, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&layout, "format", "2006-01-02", "Go time layout of each day")
	return cmd
}

func newDaysCmd(p *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "days [date]",
		Short: "List consecutive days starting at a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := p.adapter()
			if err != nil {
				return err
			}
			date, err := p.date(a, args)
			if err != nil {
				return err
			}

			for _, d := range dateutil.PartialWeekDates(a, dateutil.ToMarkingFormat(a, date), n) {
				if _, err := fmt.Fprintln(p.out, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "number", "n", dateutil.DefaultPartialWeekDays, "number of days")
	return cmd
}

func newInfoCmd(p *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [date]",
		Short: "Print the date data of a date as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := p.adapter()
			if err != nil {
				return err
			}
			date, err := p.date(a, args)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(p.out)
			enc.SetIndent("", "  ")
			return enc.Encode(dateutil.GetDateData(a, date))
		},
	}
}
