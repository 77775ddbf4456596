package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/whatday/internal/calendar"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer    io.Writer
	Service   *calendar.Service
	Selection calendar.Selection
	Width     int
	ShowGrid  bool
}

// RunPlain renders the weekday for the selection exactly once. The result
// line is always written, "Invalid date" included; the month grid follows
// only for valid dates. The returned WeekdayResult lets callers pick an
// exit status.
func RunPlain(opts PlainOptions) (calendar.WeekdayResult, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}

	sel := opts.Selection
	result := sel.Resolve()
	slog.Debug("resolved weekday",
		"year", sel.Year, "month", sel.Month, "day", sel.Day,
		"valid", result.Valid, "weekday", result.WeekdayName)

	if _, err := fmt.Fprintln(opts.Writer, ResultLine(result)); err != nil {
		return result, err
	}
	if !opts.ShowGrid || !result.Valid {
		return result, nil
	}

	view, err := opts.Service.Month(sel)
	if err != nil {
		// The grid is limited to the picker's year range; the weekday itself
		// is still meaningful outside it.
		slog.Debug("skipping month grid", "error", err)
		return result, nil
	}
	blocks, err := BuildBlocks([]calendar.MonthView{view})
	if err != nil {
		return result, err
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	_, err = fmt.Fprintln(opts.Writer, "\n"+Layout(blocks, width))
	return result, err
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	return 100
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}
