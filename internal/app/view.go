package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jojongai/portfolio/internal/keymap"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/ui/headerbar"
	"github.com/jojongai/portfolio/internal/ui/layout"
	"github.com/jojongai/portfolio/internal/ui/overlay"
	"github.com/jojongai/portfolio/internal/ui/playerbar"
	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

const (
	statusHeight = 1
	// listOverhead is the playlist header plus column titles above the rows.
	listOverhead = 6
	cardWidth    = 28
	cardHeight   = 6
	homeOverhead = 4
	pagePadding  = 2
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	r := m.history.Current()

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		PaddingLeft(pagePadding).
		Render(m.renderPage(r))
	if m.showHelp {
		box := styles.PanelStyle(true).Padding(0, 2).Render(m.renderHelp())
		body = overlay.Center(body, box, m.width, m.contentHeight())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerbar.Render(r.Kind, r.Path(), m.width),
		body,
		m.renderStatus(),
		playerbar.Render(m.widget.Snapshot(), m.width, m.displayMode),
	)
}

func (m Model) renderPage(r route.Route) string {
	switch r.Kind {
	case route.KindPlaylist:
		return m.renderPlaylist()
	case route.KindSong:
		return m.renderSong()
	case route.KindRelationship:
		return m.renderRelationship()
	case route.KindProfile:
		return m.renderProfile()
	case route.KindHobbies:
		return m.renderHobbies()
	case route.KindLikedSongs:
		return m.renderLiked()
	default:
		return m.renderHome()
	}
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.statusMsg != "" {
		return s.Warning.Render(render.Truncate(m.statusMsg, m.width))
	}
	return s.Subtle.Render(render.Truncate("? help  q quit", m.width))
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	titles := map[string]string{
		"global":    "General",
		"playback":  "Playback",
		"navigator": "Browsing",
		"detail":    "Song page",
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, ctx := range keymap.Contexts {
		b.WriteString("\n")
		b.WriteString(s.Heading.Render(titles[ctx]))
		b.WriteString("\n")
		for _, kb := range keymap.ByContext(ctx) {
			keys := render.Pad(m.keys.HelpLabel(kb.Action), 16)
			b.WriteString(s.Playing.Render(keys))
			b.WriteString(s.Muted.Render(kb.Description))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// contentHeight is the height left for the page between header and player
// bar.
func (m Model) contentHeight() int {
	return layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		StatusHeight:    statusHeight,
		PlayerBarHeight: playerbar.Height(m.displayMode),
	})
}

func (m Model) contentWidth() int {
	return max(m.width-pagePadding, 1)
}

func (m Model) listHeight() int {
	return max(m.contentHeight()-listOverhead, 1)
}

func (m Model) homeColumns() int {
	return layout.GridColumns(m.contentWidth(), cardWidth)
}
