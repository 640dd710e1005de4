package app

import (
	"strings"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

// detailPage resolves the state shared by the song and relationship pages.
// When ok is false, msg is the inline message to show instead.
func (m Model) detailPage(loading string) (p catalog.Playlist, it catalog.Item, msg string, ok bool) {
	s := styles.T().S()
	r := m.history.Current()
	switch {
	case m.hasDetail(r.PlaylistID):
		idx := m.detail.ItemIndex(r.ItemID)
		if idx < 0 {
			return p, it, s.Error.Render("Song not found"), false
		}
		return m.detail, m.detail.Items[idx], "", true
	case m.detailSt.notFound:
		return p, it, s.Error.Render("Song not found"), false
	case m.detailSt.err != "":
		return p, it, s.Error.Render(m.detailSt.err), false
	default:
		return p, it, s.Muted.Render(loading), false
	}
}

func (m Model) renderSong() string {
	p, it, msg, ok := m.detailPage("Loading song details...")
	if !ok {
		return msg
	}
	s := styles.T().S()
	width := m.contentWidth()
	d := catalog.Resolve(p.Kind(), it)

	lines := []string{
		s.Muted.Render(render.Truncate("← Back to "+p.Title, width)),
		"",
		s.Subtle.Render(d.Kind),
		s.Title.Render(render.Truncate(d.Primary, width)),
	}
	if d.Secondary != "" {
		lines = append(lines, s.Muted.Render(render.Truncate(d.Secondary, width)))
	}
	if d.Column != "" {
		lines = append(lines, s.Subtle.Render(render.Truncate(d.Column, width)))
	}
	if it.Description != "" && it.Description != d.Secondary {
		for _, l := range render.Wrap(it.Description, width) {
			lines = append(lines, s.Muted.Render(l))
		}
	}
	lines = append(lines, "", m.renderSongTransport(p, it), "")

	lines = append(lines, s.Heading.Render("Accomplishments"))
	if len(it.Accomplishments) == 0 {
		lines = append(lines, s.Muted.Render("No accomplishments listed yet."))
	}
	for _, a := range it.Accomplishments {
		for i, l := range render.Wrap(a, width-2) {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			lines = append(lines, s.Base.Render(prefix+l))
		}
	}
	return strings.Join(lines, "\n")
}

// renderSongTransport is the play hint on a song page, or the notice for
// items without media.
func (m Model) renderSongTransport(p catalog.Playlist, it catalog.Item) string {
	s := styles.T().S()
	if !it.Playable() {
		return s.Muted.Render("No audio file available for this experience")
	}
	sel := m.coord.Selection()
	if sel.PlaylistID() == p.ID && sel.ItemID() == it.ID {
		if sel.IsPlayingIntent {
			return s.Playing.Render(icons.Play() + " Now playing")
		}
		return s.Muted.Render(icons.Pause() + " Paused · space to resume")
	}
	return s.Muted.Render(icons.FormatAudio("enter to play"))
}

func (m Model) renderRelationship() string {
	p, it, msg, ok := m.detailPage("Loading song relationship...")
	if !ok {
		return msg
	}
	s := styles.T().S()
	width := m.contentWidth()
	d := catalog.Resolve(p.Kind(), it)

	artist := d.Secondary
	if artist == "" {
		artist = "Unknown Artist"
	}
	lines := []string{
		s.Muted.Render(render.Truncate("← Back to "+d.Primary, width)),
		"",
	}
	if it.Cover == "" {
		lines = append(lines, s.Subtle.Render("No Image"))
	} else {
		lines = append(lines, s.Subtle.Render(render.Truncate(it.Cover, width)))
	}
	lines = append(lines, s.Title.Render(render.Truncate(artist, width)), "")
	for _, l := range render.Wrap(it.Relationship, width) {
		lines = append(lines, s.Base.Render(l))
	}
	return strings.Join(lines, "\n")
}
