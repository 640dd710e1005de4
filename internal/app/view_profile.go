package app

import (
	"strings"

	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

func (m Model) renderProfile() string {
	s := styles.T().S()
	p := m.profile
	width := m.contentWidth()

	if p.Name == "" {
		return s.Muted.Render("No profile configured. Add a [profile] section to config.toml.")
	}

	lines := []string{
		s.Subtle.Render("Profile"),
		s.Title.Render(p.Name),
	}
	if p.Title != "" {
		lines = append(lines, s.Muted.Render(p.Title))
	}
	if where := joinNonEmpty(" • ", p.School, p.Location); where != "" {
		lines = append(lines, s.Muted.Render(where))
	}
	if p.Bio != "" {
		lines = append(lines, "")
		for _, l := range render.Wrap(p.Bio, width) {
			lines = append(lines, s.Base.Render(l))
		}
	}

	section := func(title string, body ...string) {
		if joinNonEmpty("", body...) == "" {
			return
		}
		lines = append(lines, "", s.Heading.Render(title))
		for _, b := range body {
			if b != "" {
				lines = append(lines, s.Base.Render(b))
			}
		}
	}
	section("Contact", p.Email)
	section("Proficient Languages", tags(p.Languages, width)...)
	section("Technologies & Tools", tags(p.Technologies, width)...)
	section("Connect", p.GitHub, p.LinkedIn)
	if p.Resume != "" {
		section("Resume", p.Resume)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLiked() string {
	s := styles.T().S()
	return strings.Join([]string{
		s.Subtle.Render("Playlist"),
		s.Title.Render("Liked Songs"),
		"",
		s.Muted.Render("Songs you like will appear here."),
	}, "\n")
}

// tags lays out labels as "[a] [b]" lines no wider than width.
func tags(labels []string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, l := range labels {
		tag := "[" + l + "]"
		if line != "" && len([]rune(line))+1+len([]rune(tag)) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += tag
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
