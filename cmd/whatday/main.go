package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lululau/whatday/internal/calendar"
	"github.com/lululau/whatday/internal/config"
	"github.com/lululau/whatday/internal/logger"
	"github.com/lululau/whatday/internal/render"
	"github.com/lululau/whatday/internal/tui"
)

// errInvalidDate is returned after "Invalid date" has been printed so the
// process exits non-zero without printing a second message.
var errInvalidDate = errors.New("invalid date")

type options struct {
	plain     bool
	noGrid    bool
	noColor   bool
	info      bool
	logLevel  string
	logFormat string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errInvalidDate) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	svc := calendar.NewService()

	cmd := &cobra.Command{
		Use:           "whatday [flags] [DAY MONTH YEAR | DATE]",
		Short:         "Show the day of the week for any date from 1800 to 2300",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(3),
		Example: strings.TrimSpace(`
  # Pick a date interactively, starting from today
  whatday

  # Start the picker on a given date
  whatday 14 5 2024

  # Print the weekday once and exit
  whatday -n 2024-05-14
  whatday -n "14 May 2024"

  # Show the app information
  whatday --info
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.info {
				_, err := fmt.Fprintln(out, render.Overlay(render.DetectWidth()))
				return err
			}

			sel := svc.Today()
			if len(args) > 0 {
				parsed, err := parseSelection(args)
				if err != nil {
					return err
				}
				sel = parsed
			}

			if opts.plain || !render.IsInteractive() {
				res, err := render.RunPlain(render.PlainOptions{
					Writer:    out,
					Service:   svc,
					Selection: sel,
					ShowGrid:  !opts.noGrid,
				})
				if err != nil {
					return err
				}
				if !res.Valid {
					return errInvalidDate
				}
				return nil
			}

			if err := calendar.Validate(sel.Year, sel.Month, sel.Day); err != nil {
				return err
			}
			if sel.Year < calendar.MinYear || sel.Year > calendar.MaxYear {
				return calendar.ErrYearOutOfRange
			}
			return tui.Run(svc, sel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.noColor, "no-color", "N", false, "disable all color output")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text, json (overrides "+config.EnvLogFormat+")")
	cmd.Flags().BoolVarP(&opts.plain, "plain", "n", false, "print the result and exit (non-interactive)")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "omit the month grid in plain output")
	cmd.Flags().BoolVar(&opts.info, "info", false, "print the app information and exit")

	cmd.AddCommand(newDaysCmd(out))
	return cmd
}

func newDaysCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "days YEAR MONTH",
		Short: "Print the number of days in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseNumber(args[0], "year")
			if err != nil {
				return err
			}
			month, err := parseNumber(args[1], "month")
			if err != nil {
				return err
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("%w (got %d)", calendar.ErrInvalidMonth, month)
			}
			_, err = fmt.Fprintln(out, calendar.DaysInMonth(year, month))
			return err
		},
	}
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
	}
	if opts.logFormat != "" {
		cfg.LogFormat = strings.ToLower(opts.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	render.SetNoColor(cfg.NoColor)
	render.ApplyColorProfile()

	interactive := cmd.Name() == "whatday" && !opts.plain && !opts.info && render.IsInteractive()
	w, closeLog, err := logger.Output(cfg, interactive)
	if err != nil {
		return err
	}
	cobra.OnFinalize(func() { _ = closeLog() })
	logger.Setup(cfg, w)
	slog.Debug("configuration loaded", "log_level", cfg.LogLevel, "log_format", cfg.LogFormat, "no_color", cfg.NoColor)
	return nil
}

// parseSelection accepts either three numbers (day, month, year) or a single
// date string understood by calendar.ParseDate.
func parseSelection(args []string) (calendar.Selection, error) {
	switch len(args) {
	case 1:
		return calendar.ParseDate(args[0])
	case 3:
		day, err := parseNumber(args[0], "day")
		if err != nil {
			return calendar.Selection{}, err
		}
		month, err := calendar.ParseMonth(args[1])
		if err != nil {
			return calendar.Selection{}, err
		}
		year, err := parseNumber(args[2], "year")
		if err != nil {
			return calendar.Selection{}, err
		}
		return calendar.Selection{Year: year, Month: month, Day: day}, nil
	default:
		return calendar.Selection{}, errors.New("expected DAY MONTH YEAR or a single date, see --help")
	}
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}
