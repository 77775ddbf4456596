package render

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/lululau/whatday/internal/promo"
	"github.com/lululau/whatday/internal/textwidth"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. Auto style detection queries the
	// terminal, which can block, so a fixed style is always used.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// Overlay renders the informational overlay for the given width: the
// functionality notes as markdown followed by a table of app cards.
func Overlay(width int) string {
	if width < 40 {
		width = 40
	}
	var sb strings.Builder
	sb.WriteString(renderMarkdown(promo.Markdown(), width))
	sb.WriteString("\n\n")
	sb.WriteString(Title("Ads"))
	sb.WriteString("\n\n")
	sb.WriteString(CardsTable(width))
	return sb.String()
}

// CardsTable renders the cross-promotion cards in a table that fits width.
func CardsTable(width int) string {
	const iconWidth, nameWidth = 2, 16
	// Three columns with one column of padding on each side.
	descWidth := width - iconWidth - nameWidth - 3*2
	if descWidth < 10 {
		descWidth = 10
	}
	columns := []table.Column{
		{Title: "", Width: iconWidth},
		{Title: "App", Width: nameWidth},
		{Title: "Description", Width: descWidth},
	}
	rows := make([]table.Row, 0, len(promo.Cards)*2)
	for _, c := range promo.Cards {
		rows = append(rows,
			table.Row{c.Icon, c.Name, textwidth.Truncate(c.Description, descWidth)},
			table.Row{"", "", textwidth.Truncate(c.Link, descWidth)},
		)
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles())
	t.Blur()
	return strings.TrimRight(t.View(), "\n")
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	style := styles.DarkStyle
	if noColorMode {
		style = styles.NoTTYStyle
	}
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
