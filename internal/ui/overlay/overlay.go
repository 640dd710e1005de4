// Package overlay draws a box on top of an already rendered page.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center places box in the middle of a width x height area and composes it
// over base.
func Center(base, box string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	return Compose(base, placed, width)
}

// Compose overlays content on top of a base view. The visible span of each
// overlay line replaces the base at the same columns; blank overlay lines
// leave the base untouched. ANSI styling on both sides is preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := ansi.StringWidth(plainOverlay) - ansi.StringWidth(strings.TrimLeft(plainOverlay, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		line := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
