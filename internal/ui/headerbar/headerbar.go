// Package headerbar renders the sidebar tabs and the current location.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/ui/render"
	"github.com/jojongai/portfolio/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

type tab struct {
	key  string
	name string
	icon func() string
	kind route.Kind
}

var tabs = []tab{
	{"F1", "Home", icons.Home, route.KindHome},
	{"F2", "Profile", icons.Profile, route.KindProfile},
	{"F3", "Hobbies", icons.Hobbies, route.KindHobbies},
	{"F4", "Liked Songs", icons.Liked, route.KindLikedSongs},
}

// Active maps a route kind to the tab it belongs to. Playlist and detail
// pages live under Home.
func Active(k route.Kind) route.Kind {
	switch k {
	case route.KindProfile, route.KindHobbies, route.KindLikedSongs:
		return k
	default:
		return route.KindHome
	}
}

// Render returns the header for width: tabs on the left, location on the
// right.
func Render(current route.Kind, location string, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()
	keyStyle := lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
	sep := s.Subtle.Render(" │ ")

	active := Active(current)
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		name := icons.Nav(t.icon(), t.name)
		if t.kind == active {
			name = s.Playing.Render(name)
		} else {
			name = s.Muted.Render(name)
		}
		parts = append(parts, keyStyle.Render(t.key)+" "+name)
	}
	left := strings.Join(parts, sep)

	room := width - lipgloss.Width(left) - 2
	if room < 8 || location == "" {
		return left
	}
	right := s.Muted.Render(render.Truncate(location, room))
	return render.Row(left, right, width)
}
