package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/whatday/internal/calendar"
	"github.com/lululau/whatday/internal/textwidth"
)

const (
	cellPadding = 1
	cellWidth   = 2
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// ResultLine renders the outcome of a weekday lookup. Invalid results show
// the literal "Invalid date".
func ResultLine(r calendar.WeekdayResult) string {
	text := r.Display()
	if noColorMode {
		return text
	}
	if !r.Valid {
		return invalidStyle.Render(text)
	}
	return resultStyle.Render(text)
}

// BuildBlocks converts month views into renderable blocks.
func BuildBlocks(views []calendar.MonthView) ([]MonthBlock, error) {
	blocks := make([]MonthBlock, len(views))
	for i, view := range views {
		block, err := buildMonthBlock(view)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return blocks, nil
}

// Layout places blocks side by side while they fit in width, wrapping onto
// new rows otherwise.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	var rows []string
	var row []string
	used := 0
	for _, block := range blocks {
		need := block.Width
		if len(row) > 0 {
			need += 2
		}
		if len(row) > 0 && used+need > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used, need = nil, 0, block.Width
		}
		if len(row) > 0 {
			row = append(row, "  ")
		}
		row = append(row, strings.Join(block.Lines, "\n"))
		used += need
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n\n")
}

func buildMonthBlock(view calendar.MonthView) (MonthBlock, error) {
	if len(view.Weeks) == 0 {
		return MonthBlock{}, fmt.Errorf("month view %q has no weeks", view.Title)
	}
	columns := make([]table.Column, len(weekdays))
	for i, title := range weekdays {
		columns[i] = table.Column{Title: title, Width: cellWidth + cellPadding*2}
	}

	var selected, today int
	rows := make([]table.Row, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		row := make(table.Row, len(week))
		for idx, day := range week {
			if !day.InMonth {
				continue
			}
			row[idx] = fmt.Sprintf("%2d", day.Date.Day())
			if day.IsSelected {
				selected = day.Date.Day()
			}
			if day.IsToday {
				today = day.Date.Day()
			}
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles())
	t.Blur()

	// Cells are styled after the table is drawn because the table measures
	// cell text without accounting for escape sequences.
	grid := strings.TrimRight(t.View(), "\n")
	if today != 0 && today != selected {
		grid = highlightDay(grid, today, todayStyle)
	}
	if selected != 0 {
		grid = highlightDay(grid, selected, selectedStyle)
	}
	grid = Frame(grid)

	lines := append([]string{Title(view.Title), ""}, strings.Split(grid, "\n")...)
	width := 0
	for _, line := range lines {
		width = max(width, textwidth.StringWidth(line))
	}
	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}, nil
}

// highlightDay styles the first cell holding day. Out-of-month cells are
// blank, so day numbers are unique within a grid.
func highlightDay(grid string, day int, style lipgloss.Style) string {
	if noColorMode {
		return grid
	}
	re := regexp.MustCompile(fmt.Sprintf(`(\s)(%2d)(\s|│|$)`, day))
	lines := strings.Split(grid, "\n")
	// The first line is the weekday header.
	for i := 1; i < len(lines); i++ {
		loc := re.FindStringSubmatchIndex(lines[i])
		if loc == nil {
			continue
		}
		lines[i] = lines[i][:loc[4]] + style.Render(lines[i][loc[4]:loc[5]]) + lines[i][loc[5]:]
		break
	}
	return strings.Join(lines, "\n")
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	if noColorMode {
		styles.Header = lipgloss.NewStyle().Padding(0, cellPadding)
	} else {
		styles.Header = headerStyle.Padding(0, cellPadding)
	}
	styles.Selected = lipgloss.NewStyle()
	styles.Cell = lipgloss.NewStyle().Padding(0, cellPadding)
	return styles
}
