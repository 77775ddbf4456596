package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/whatday/internal/calendar"
	"github.com/lululau/whatday/internal/render"
)

type viewMode int

const (
	modePickers viewMode = iota
	modeInput
	modeOverlay
)

var fields = []calendar.Field{calendar.FieldDay, calendar.FieldMonth, calendar.FieldYear}

var (
	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(0, 1).
			Align(lipgloss.Center)
	focusedPickerStyle = pickerStyle.BorderForeground(lipgloss.Color("#34D399"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
)

// Run starts the interactive Bubble Tea UI seeded with sel.
func Run(svc *calendar.Service, sel calendar.Selection) error {
	if svc == nil {
		svc = calendar.NewService()
	}
	prog := tea.NewProgram(newModel(svc, sel), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

type model struct {
	svc       *calendar.Service
	sel       calendar.Selection
	focus     int
	mode      viewMode
	width     int
	height    int
	keys      keyMap
	help      help.Model
	input     textinput.Model
	overlay   viewport.Model
	statusMsg string
}

func newModel(svc *calendar.Service, sel calendar.Selection) model {
	ti := textinput.New()
	ti.Placeholder = "DD-MM-YYYY"
	ti.CharLimit = 32
	ti.Prompt = "> "
	return model{
		svc:     svc,
		sel:     sel.Clamp(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
		overlay: viewport.New(80, 20),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeOverlay()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.handleInputKey(msg)
		case modeOverlay:
			return m.handleOverlayKey(msg)
		}
		return m.handlePickerKey(msg)
	}
	return m, nil
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + len(fields) - 1) % len(fields)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(fields)
	case key.Matches(msg, m.keys.Up):
		m.setSelection(m.sel.Step(m.focused(), -1))
	case key.Matches(msg, m.keys.Down):
		m.setSelection(m.sel.Step(m.focused(), 1))
	case key.Matches(msg, m.keys.PageUp):
		m.setSelection(m.sel.Step(m.focused(), -10))
	case key.Matches(msg, m.keys.PageDown):
		m.setSelection(m.sel.Step(m.focused(), 10))
	case key.Matches(msg, m.keys.Today):
		m.setSelection(m.svc.Today())
	case key.Matches(msg, m.keys.Goto):
		m.mode = modeInput
		m.statusMsg = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Info):
		m.mode = modeOverlay
		m.resizeOverlay()
		m.overlay.GotoTop()
	}
	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "?", "enter":
		m.mode = modePickers
		return m, nil
	}
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "enter a date such as 14-05-2024"
		return
	}
	sel, err := calendar.ParseDate(value)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	if sel.Year < calendar.MinYear || sel.Year > calendar.MaxYear {
		m.statusMsg = calendar.ErrYearOutOfRange.Error()
		return
	}
	if err := calendar.Validate(sel.Year, sel.Month, sel.Day); err != nil {
		// The pickers can only hold real dates, so keep the input open.
		m.statusMsg = calendar.InvalidDateText
		return
	}
	m.setSelection(sel)
	m.closeInput()
}

func (m *model) closeInput() {
	m.mode = modePickers
	m.input.Blur()
}

// setSelection replaces the picker values. The weekday is recomputed from the
// selection on every render, never stored.
func (m *model) setSelection(sel calendar.Selection) {
	m.sel = sel.Clamp()
	m.statusMsg = ""
	res := m.sel.Resolve()
	slog.Debug("selection changed",
		"year", m.sel.Year, "month", m.sel.Month, "day", m.sel.Day,
		"valid", res.Valid, "weekday", res.WeekdayName)
}

func (m model) focused() calendar.Field {
	return fields[m.focus]
}

func (m *model) resizeOverlay() {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	m.overlay.Width = w
	m.overlay.Height = max(h-2, 5)
	m.overlay.SetContent(render.Overlay(min(w-2, 100)))
}

func (m model) View() string {
	switch m.mode {
	case modeOverlay:
		return m.overlay.View() + "\n" + render.Muted("↑/↓ scroll  esc close")
	case modeInput:
		return m.inputView()
	}

	var sb strings.Builder
	sb.WriteString(render.Title("What Day?"))
	sb.WriteString("\n\n")
	sb.WriteString(m.pickersView())
	sb.WriteString("\n\n")
	sb.WriteString(render.ResultLine(m.sel.Resolve()))
	if grid := m.gridView(); grid != "" {
		sb.WriteString("\n\n")
		sb.WriteString(grid)
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styledStatus())
	}
	return sb.String()
}

// pickersView draws the Day, Month and Year wheels, each showing the values
// before and after the current one.
func (m model) pickersView() string {
	cols := make([]string, 0, len(fields)*2)
	for i, f := range fields {
		prev := m.sel.Step(f, -1).Value(f)
		next := m.sel.Step(f, 1).Value(f)
		cur := m.sel.Value(f)
		format := "%02d"
		if f == calendar.FieldYear {
			format = "%04d"
		}
		body := strings.Join([]string{
			render.Muted(fmt.Sprintf(format, prev)),
			fmt.Sprintf(format, cur),
			render.Muted(fmt.Sprintf(format, next)),
		}, "\n")
		style := pickerStyle
		label := f.String()
		if i == m.focus {
			style = focusedPickerStyle
			label = "▸ " + label
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, label, style.Render(body)))
		if i != len(fields)-1 {
			cols = append(cols, "  ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

func (m model) gridView() string {
	view, err := m.svc.Month(m.sel)
	if err != nil {
		return ""
	}
	blocks, err := render.BuildBlocks([]calendar.MonthView{view})
	if err != nil {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 100
	}
	return render.Layout(blocks, width)
}

func (m model) inputView() string {
	label := "Go to date: DD-MM-YYYY, YYYY-MM-DD or 14 May 2024 (enter to confirm / esc to cancel)"
	var sb strings.Builder
	if render.NoColor() {
		sb.WriteString(label)
	} else {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(label))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	if m.statusMsg != "" {
		sb.WriteString("\n\n")
		sb.WriteString(m.styledStatus())
	}
	return sb.String()
}

func (m model) styledStatus() string {
	if render.NoColor() {
		return m.statusMsg
	}
	return statusStyle.Render(m.statusMsg)
}
