package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/ui/layout"
	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

// greeting returns the salutation for the hour of t.
func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m Model) renderHome() string {
	t := styles.T()
	s := t.S()

	lines := []string{styles.Gradient(greeting(m.now()), t.Primary, t.Secondary)}
	if m.profile.Name != "" {
		lines = append(lines, s.Title.Render("Made for "+m.profile.Name))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "")

	switch {
	case m.home.err != "":
		lines = append(lines, s.Error.Render(m.home.err))
	case m.playlists == nil && m.home.loading:
		lines = append(lines, s.Muted.Render("Loading playlists..."))
	case len(m.playlists) == 0 && m.home.loaded:
		lines = append(lines, s.Muted.Render("No playlists found."))
	default:
		lines = append(lines, m.renderGrid())
	}
	return strings.Join(lines, "\n")
}

// renderGrid lays out the playlist cards row by row, scrolled so the
// highlighted card is visible.
func (m Model) renderGrid() string {
	cols := m.homeColumns()
	visibleRows := layout.GridRows(m.contentHeight()-homeOverhead, cardHeight)
	cursorRow := m.homeCursor.Pos() / cols
	firstRow := max(cursorRow-visibleRows+1, 0)

	var rows []string
	for row := firstRow; row < firstRow+visibleRows; row++ {
		start := row * cols
		if start >= len(m.playlists) {
			break
		}
		end := min(start+cols, len(m.playlists))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(m.playlists[i], i == m.homeCursor.Pos()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(p catalog.Playlist, selected bool) string {
	s := styles.T().S()
	inner := cardWidth - 4

	glyph := p.ImageReference.Glyph()
	if glyph == "" {
		glyph = string(catalog.DefaultImage)
	}
	title := render.Truncate(glyph+" "+p.Title, inner)
	desc := render.Wrap(p.Description, inner)
	if len(desc) > 2 {
		desc = desc[:2]
		desc[1] = render.Truncate(desc[1]+" …", inner)
	}
	for len(desc) < 2 {
		desc = append(desc, "")
	}
	count := fmt.Sprintf("%d %s", len(p.Items), catalog.HeadersFor(p.Kind()).Noun)

	titleStyle := s.Title
	if selected {
		titleStyle = s.Playing
	}
	body := strings.Join([]string{
		titleStyle.Render(title),
		s.Muted.Render(desc[0]),
		s.Muted.Render(desc[1]),
		s.Subtle.Render(count),
	}, "\n")

	width := cardWidth - 2
	return styles.PanelStyle(selected).
		Width(width).
		Padding(0, 1).
		Render(body)
}
