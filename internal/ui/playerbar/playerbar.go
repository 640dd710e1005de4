// Package playerbar renders the transport bar at the bottom of the client.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/transport"
	"github.com/jojongai/portfolio/internal/ui/render"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Title, progress and controls on separate rows
)

const (
	separator   = "   "
	minBarWidth = 10
	emptyTitle  = "No song selected"
)

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 5 // 3 content rows + 2 border rows
	}
	return 3 // top border + content + bottom border
}

// Render returns the player bar for v at the given width. The bar is always
// shown; an empty transport renders its controls disabled.
func Render(v transport.View, width int, mode DisplayMode) string {
	if mode == ModeExpanded && width >= 40 {
		return renderExpanded(v, width)
	}
	return renderCompact(v, width)
}

func renderCompact(v transport.View, width int) string {
	innerWidth := max(width-6, 0)

	status := statusIcon(v)
	timeStr := v.PositionText() + " / " + v.DurationText()
	toggles := renderToggles(v)

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + lipgloss.Width(toggles) + len(separator)*3
	available := innerWidth - fixed - minBarWidth

	title, info := titleAndInfo(v)
	if available < 10 {
		return renderMinimal(v, title, status, timeStr, width)
	}
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	var styledTitle, styledInfo string
	var used int
	switch {
	case info != "" && titleWidth+len(separator)+infoWidth <= available:
		styledTitle = titleStyle().Render(title)
		styledInfo = subtitleStyle().Render(info)
		used = titleWidth + len(separator) + infoWidth
	case info != "" && titleWidth+len(separator)+1 < available:
		maxInfo := available - titleWidth - len(separator)
		styledTitle = titleStyle().Render(title)
		styledInfo = subtitleStyle().Render(render.Truncate(info, maxInfo))
		used = titleWidth + len(separator) + maxInfo
	default:
		maxTitle := max(available, 10)
		t := render.Truncate(title, maxTitle)
		styledTitle = titleStyle().Render(t)
		used = lipgloss.Width(t)
	}
	if !v.ControlsEnabled {
		styledTitle = disabledStyle().Render(render.Truncate(title, max(available, 10)))
		styledInfo = ""
		used = min(titleWidth, max(available, 10))
	}

	barWidth := max(innerWidth-used-fixed, 5)
	if styledInfo != "" {
		barWidth = max(barWidth-len(separator), 5)
	}

	var b strings.Builder
	b.WriteString(styledTitle)
	if styledInfo != "" {
		b.WriteString(separator)
		b.WriteString(styledInfo)
	}
	b.WriteString(separator)
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(progressBar(v, barWidth))
	b.WriteString(separator)
	b.WriteString(timeStyle().Render(timeStr))
	b.WriteString(separator)
	b.WriteString(toggles)

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(b.String())
}

// renderMinimal keeps only the status, title and time on very narrow
// terminals.
func renderMinimal(v transport.View, title, status, timeStr string, width int) string {
	innerWidth := max(width-6, 0)
	room := innerWidth - lipgloss.Width(status) - lipgloss.Width(timeStr) - 2
	if room < 4 {
		timeStr = ""
		room = innerWidth - lipgloss.Width(status) - 1
	}
	style := titleStyle()
	if !v.ControlsEnabled {
		style = disabledStyle()
	}
	line := status + " " + style.Render(render.Truncate(title, max(room, 1)))
	if timeStr != "" {
		line += " " + timeStyle().Render(timeStr)
	}
	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(line)
}

func renderExpanded(v transport.View, width int) string {
	innerWidth := max(width-6, 0)

	title, info := titleAndInfo(v)
	line1 := render.Truncate(title, innerWidth)
	if v.ControlsEnabled {
		line1 = titleStyle().Render(line1)
	} else {
		line1 = disabledStyle().Render(line1)
	}
	line2 := subtitleStyle().Render(render.Truncate(info, innerWidth))

	timeLeft := timeStyle().Render(v.PositionText())
	timeRight := timeStyle().Render(v.DurationText())
	status := statusIcon(v)
	toggles := renderToggles(v)
	fixed := lipgloss.Width(status) + lipgloss.Width(timeLeft) + lipgloss.Width(timeRight) +
		lipgloss.Width(toggles) + 2 + 4 + len(separator)
	bar := progressBar(v, max(innerWidth-fixed, 5))
	line3 := status + "  " + timeLeft + "  " + bar + "  " + timeRight + separator + toggles

	content := strings.Join([]string{line1, line2, line3}, "\n")
	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(content)
}

func titleAndInfo(v transport.View) (title, info string) {
	if v.Title == "" {
		return emptyTitle, ""
	}
	title = v.Title
	if g := v.Image.Glyph(); g != "" {
		title = g + " " + title
	}
	info = v.Subtitle
	if v.Failed {
		info = "Audio unavailable"
	}
	return title, info
}

func statusIcon(v transport.View) string {
	icon := icons.Play()
	if v.State == transport.StatePlaying {
		icon = icons.Pause()
	}
	if !v.ControlsEnabled {
		return disabledStyle().Render(icon)
	}
	return activeStyle().Render(icon)
}

func renderToggles(v transport.View) string {
	toggle := func(icon string, on bool) string {
		if on && v.ControlsEnabled {
			return activeStyle().Render(icon)
		}
		return disabledStyle().Render(icon)
	}
	return toggle(icons.Shuffle(), v.Shuffle) + " " +
		toggle(icons.RepeatAll(), v.Repeat == transport.RepeatAll) + " " +
		RenderVolume(v)
}
