package app

import (
	"fmt"
	"strings"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/ui/cursor"
	"github.com/jojongai/portfolio/internal/ui/layout"
	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

const indexWidth = 4

func (m Model) renderPlaylist() string {
	s := styles.T().S()
	r := m.history.Current()
	switch {
	case m.hasDetail(r.PlaylistID):
		return m.renderListing(m.detail, m.listCursor)
	case m.detailSt.notFound:
		return s.Error.Render("Playlist not found")
	case m.detailSt.err != "":
		return s.Error.Render(m.detailSt.err)
	default:
		return s.Muted.Render("Loading playlist...")
	}
}

func (m Model) renderHobbies() string {
	s := styles.T().S()
	switch {
	case m.hobbies.ID != "":
		return m.renderListing(m.hobbies, m.hobbiesCursor)
	case m.hobbiesSt.notFound:
		return s.Error.Render("Playlist not found")
	case m.hobbiesSt.err != "":
		return s.Error.Render(m.hobbiesSt.err)
	default:
		return s.Muted.Render("Loading playlist...")
	}
}

// renderListing draws the header and visible rows of a playlist. The
// selected item is marked when it belongs to p.
func (m Model) renderListing(p catalog.Playlist, cur cursor.Cursor) string {
	s := styles.T().S()
	width := m.contentWidth()
	h := catalog.HeadersFor(p.Kind())

	glyph := p.ImageReference.Glyph()
	if glyph == "" {
		glyph = string(catalog.DefaultImage)
	}
	owner := ""
	if m.profile.Name != "" {
		owner = m.profile.Name + " • "
	}

	lines := []string{
		s.Subtle.Render(h.Label),
		s.Title.Render(render.Truncate(glyph+" "+p.Title, width)),
		s.Muted.Render(render.Truncate(p.Description, width)),
		s.Subtle.Render(fmt.Sprintf("%s%d %s", owner, len(p.Items), h.Noun)),
	}

	titleW, secondW, colW := layout.ListColumns(width, indexWidth)
	lines = append(lines, s.Subtle.Render(
		render.Cell("#", indexWidth)+
			render.Cell(h.Title, titleW)+
			render.Cell(h.Secondary, secondW)+
			render.Cell(h.Column, colW)))
	lines = append(lines, s.Subtle.Render(render.Separator(width)))

	sel := m.coord.Selection()
	start, end := cur.VisibleRange(len(p.Items), m.listHeight())
	for i := start; i < end; i++ {
		it := p.Items[i]
		d := catalog.Resolve(p.Kind(), it)

		selected := sel.PlaylistID() == p.ID && sel.Index == i
		num := fmt.Sprintf("%d", i+1)
		if selected {
			num = icons.Pause()
			if sel.IsPlayingIntent {
				num = icons.Play()
			}
		}
		row := render.Cell(num, indexWidth) +
			render.Cell(d.Primary, titleW) +
			render.Cell(d.Secondary, secondW) +
			render.Cell(d.Column, colW)

		style := s.Base
		switch {
		case selected:
			style = s.Playing
		case !it.Playable():
			style = s.Muted
		}
		if i == cur.Pos() {
			style = style.Inherit(s.Cursor)
		}
		lines = append(lines, style.Render(row))
	}
	return strings.Join(lines, "\n")
}
