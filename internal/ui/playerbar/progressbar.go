package playerbar

import (
	"strings"

	"github.com/jojongai/portfolio/internal/transport"
)

// progressBar renders the seek bar, filled up to the playback position.
func progressBar(v transport.View, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(int(float64(width)*v.Progress()), width)
	if !v.ControlsEnabled {
		return disabledStyle().Render(strings.Repeat("─", width))
	}
	return progressBarFilled().Render(strings.Repeat("━", filled)) +
		progressBarEmpty().Render(strings.Repeat("─", width-filled))
}
