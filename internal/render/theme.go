package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag and drops Lip Gloss to the ASCII
// profile so no escape sequences are emitted.
func SetNoColor(disable bool) {
	noColorMode = disable
	if disable {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// NoColor reports whether color output is disabled.
func NoColor() bool {
	return noColorMode
}

// ApplyColorProfile picks the Lip Gloss profile for the terminal. NO_COLOR
// and the no-color flag force ASCII; otherwise termenv's guess is upgraded
// when COLORTERM or TERM advertise more colors than were detected.
func ApplyColorProfile() {
	if noColorMode || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		SetNoColor(true)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case profile == termenv.Ascii:
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		profile = termenv.TrueColor
	case profile == termenv.ANSI && strings.Contains(term, "256color"):
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827")).
			Background(lipgloss.Color("#34D399"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	frameStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(0, 1)
)

// Title renders a heading.
func Title(s string) string {
	if noColorMode {
		return s
	}
	return titleStyle.Render(s)
}

// Muted renders secondary text such as hints.
func Muted(s string) string {
	if noColorMode {
		return s
	}
	return mutedStyle.Render(s)
}

// Frame draws a rounded border around s.
func Frame(s string) string {
	if noColorMode {
		return s
	}
	return frameStyle.Render(s)
}
