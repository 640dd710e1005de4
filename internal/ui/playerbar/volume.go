package playerbar

import (
	"fmt"

	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/transport"
)

// RenderVolume renders the volume indicator, e.g. "vol 100%" or "mute   0%".
func RenderVolume(v transport.View) string {
	icon := icons.Volume()
	if v.Muted {
		icon = icons.VolumeMute()
	}
	s := fmt.Sprintf("%s %3d%%", icon, v.VolumePercent())
	if !v.ControlsEnabled {
		return disabledStyle().Render(s)
	}
	return timeStyle().Render(s)
}
