package transport

import (
	"fmt"
	"math"

	"github.com/jojongai/portfolio/internal/catalog"
)

// View is an immutable snapshot of the widget for rendering.
type View struct {
	State    State
	Title    string
	Subtitle string
	Cover    string
	Image    catalog.ImageRef

	Position float64
	Duration float64
	Volume   float64
	Muted    bool
	Shuffle  bool
	Repeat   RepeatMode

	// Playing reflects the element, not the coordinator's intent.
	Playing bool
	Failed  bool
	// ControlsEnabled is false while nothing playable is bound.
	ControlsEnabled bool
}

// Progress returns the position as a 0-1 fraction of the duration.
func (v View) Progress() float64 {
	if v.Duration <= 0 {
		return 0
	}
	return clamp(v.Position/v.Duration, 0, 1)
}

// PositionText is the elapsed time as m:ss.
func (v View) PositionText() string {
	return FormatTime(v.Position)
}

// DurationText is the total time as m:ss.
func (v View) DurationText() string {
	return FormatTime(v.Duration)
}

// VolumePercent returns the volume as 0-100.
func (v View) VolumePercent() int {
	return int(math.Round(v.Volume * 100))
}

// Snapshot returns the current view.
func (w *Widget) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		State:    w.stateLocked(),
		Position: w.position,
		Duration: w.duration,
		Volume:   w.volume,
		Muted:    w.volume == 0,
		Shuffle:  w.shuffle,
		Repeat:   w.repeat,
		Playing:  w.mediaIsPlaying,
		Failed:   w.failed,
	}
	v.ControlsEnabled = v.State != StateEmpty && !w.failed
	if it := w.sel.Item; it != nil {
		d := catalog.Resolve(w.playlistKind(), *it)
		v.Title = d.Primary
		v.Subtitle = d.Secondary
		v.Cover = it.Cover
		v.Image = it.ImageReference
	}
	return v
}

func (w *Widget) playlistKind() catalog.Category {
	if w.sel.Playlist == nil {
		return catalog.CategoryGeneric
	}
	return w.sel.Playlist.Kind()
}

// FormatTime renders seconds as m:ss. Non-finite or negative values render
// as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
