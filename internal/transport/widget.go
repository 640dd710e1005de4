// Package transport binds the coordinator's selection to a media element and
// exposes the transport controls: play/pause, seek, volume, mute, shuffle
// and repeat.
package transport

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/errmsg"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/playback"
)

// State is the widget's lifecycle state.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StatePaused
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoading:
		return "Loading"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// RepeatMode is the repeat toggle.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
)

func (r RepeatMode) String() string {
	if r == RepeatAll {
		return "all"
	}
	return "off"
}

// Options configures a Widget.
type Options struct {
	// AdvanceOnRepeat makes repeat-all move to the next playable item of the
	// playlist when a track ends instead of restarting it.
	AdvanceOnRepeat bool
	// Volume is the initial level, 0.0 to 1.0.
	Volume float64
}

// Widget is the transport control. It owns the media element; the
// coordinator owns selection and intent.
type Widget struct {
	el    media.Element
	coord playback.Service
	opts  Options
	log   zerolog.Logger

	mu             sync.Mutex
	sel            playback.Selection
	key            string
	token          media.Token
	loaded         bool
	failed         bool
	wantPlaying    bool // last play/pause command sent to the element
	mediaIsPlaying bool // as reported by the element
	position       float64
	duration       float64
	volume         float64
	shuffle        bool
	repeat         RepeatMode
}

// New creates an empty widget.
func New(el media.Element, coord playback.Service, opts Options, log zerolog.Logger) *Widget {
	vol := opts.Volume
	if vol < 0 || vol > 1 || math.IsNaN(vol) {
		vol = 1
	}
	return &Widget{
		el:     el,
		coord:  coord,
		opts:   opts,
		log:    log,
		sel:    playback.Selection{Index: -1},
		volume: vol,
	}
}

// Sync binds the widget to sel. A change of the bound media reloads the
// element and resets the position; otherwise only the coordinator's intent
// is reconciled with the element.
func (w *Widget) Sync(sel playback.Selection) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := sel.Key()
	w.sel = sel
	if key != w.key {
		w.rebindLocked(key, sel)
		return
	}
	if w.token.IsZero() || w.failed {
		return
	}
	w.reconcileLocked(sel.IsPlayingIntent)
}

func (w *Widget) rebindLocked(key string, sel playback.Selection) {
	if !w.token.IsZero() {
		w.el.Unload()
	}
	w.key = key
	w.token = media.Token{}
	w.loaded = false
	w.failed = false
	w.wantPlaying = false
	w.mediaIsPlaying = false
	w.position = 0
	w.duration = 0

	src := sel.MediaPath()
	if src == "" {
		// Selected but not playable: nothing to mount.
		return
	}
	w.token = w.el.Load(src)
	w.el.SetVolume(w.volume)
	w.log.Debug().Str("src", src).Uint64("gen", w.token.Gen).Msg("media loaded")
	if sel.IsPlayingIntent {
		w.playLocked()
	}
}

func (w *Widget) reconcileLocked(intent bool) {
	switch {
	case intent && !w.wantPlaying:
		w.playLocked()
	case !intent && w.wantPlaying:
		w.pauseLocked()
	}
}

func (w *Widget) playLocked() bool {
	w.wantPlaying = true
	if err := w.el.Play(); err != nil {
		w.log.Warn().Err(err).Str("src", w.token.Src).Msg(errmsg.FormatWith(errmsg.OpPlaybackStart, w.token.Src, err))
		w.wantPlaying = false
		w.mediaIsPlaying = false
		return false
	}
	return true
}

func (w *Widget) pauseLocked() {
	w.wantPlaying = false
	w.el.Pause()
}

// TogglePlayPause pauses when playing and plays when paused, then hands the
// new intent to the coordinator. No-op when nothing playable is bound.
func (w *Widget) TogglePlayPause() {
	w.mu.Lock()
	if w.token.IsZero() || w.failed {
		w.mu.Unlock()
		return
	}
	playing := !w.wantPlaying
	if playing {
		playing = w.playLocked()
	} else {
		w.pauseLocked()
	}
	w.mu.Unlock()

	w.coord.SetPlaying(playing)
}

// Play requests playback of the bound media.
func (w *Widget) Play() {
	w.setPlaying(true)
}

// Pause pauses the bound media.
func (w *Widget) Pause() {
	w.setPlaying(false)
}

func (w *Widget) setPlaying(playing bool) {
	w.mu.Lock()
	if w.token.IsZero() || w.failed || w.wantPlaying == playing {
		w.mu.Unlock()
		return
	}
	if playing {
		playing = w.playLocked()
	} else {
		w.pauseLocked()
	}
	w.mu.Unlock()

	w.coord.SetPlaying(playing)
}

// Seek moves to percent (0-100) of the duration and updates the position
// immediately. Ignored until the duration is known.
func (w *Widget) Seek(percent float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seekableLocked() || math.IsNaN(percent) {
		return
	}
	w.seekToLocked(clamp(percent, 0, 100) / 100 * w.duration)
}

// SeekTo moves to an absolute position in seconds.
func (w *Widget) SeekTo(seconds float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seekableLocked() || math.IsNaN(seconds) {
		return
	}
	w.seekToLocked(clamp(seconds, 0, w.duration))
}

// SeekBy moves relative to the current position.
func (w *Widget) SeekBy(delta float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seekableLocked() {
		return
	}
	w.seekToLocked(clamp(w.position+delta, 0, w.duration))
}

func (w *Widget) seekableLocked() bool {
	return !w.token.IsZero() && w.loaded && !w.failed && w.duration > 0
}

func (w *Widget) seekToLocked(t float64) {
	w.el.Seek(t)
	w.position = t
}

// SetVolume sets the volume from a 0-100 percentage.
func (w *Widget) SetVolume(percent float64) {
	if math.IsNaN(percent) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.applyVolumeLocked(clamp(percent, 0, 100) / 100)
}

// ToggleMute switches between silent and full volume. The previous level is
// not remembered.
func (w *Widget) ToggleMute() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.volume > 0 {
		w.applyVolumeLocked(0)
	} else {
		w.applyVolumeLocked(1)
	}
}

func (w *Widget) applyVolumeLocked(v float64) {
	w.volume = v
	if !w.token.IsZero() {
		w.el.SetVolume(v)
	}
}

// ToggleShuffle flips the shuffle indicator. Traversal order is unaffected.
func (w *Widget) ToggleShuffle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shuffle = !w.shuffle
}

// SetShuffle sets the shuffle indicator.
func (w *Widget) SetShuffle(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shuffle = on
}

// ToggleRepeat switches repeat between off and all.
func (w *Widget) ToggleRepeat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.repeat == RepeatAll {
		w.repeat = RepeatOff
	} else {
		w.repeat = RepeatAll
	}
}

// SetRepeat sets the repeat mode.
func (w *Widget) SetRepeat(r RepeatMode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.repeat = r
}

// HandleEvent applies a media event. Events whose token does not match the
// current load are dropped.
func (w *Widget) HandleEvent(ev media.Event) {
	w.mu.Lock()
	if w.token.IsZero() || ev.Token != w.token {
		w.mu.Unlock()
		w.log.Debug().Stringer("kind", ev.Kind).Str("src", ev.Token.Src).Msg("stale media event discarded")
		return
	}

	var (
		setIntent bool
		intent    bool
		advance   bool
	)
	switch ev.Kind {
	case media.EventLoadedMetadata:
		w.loaded = true
		w.duration = finiteOrZero(ev.Duration)
	case media.EventTimeUpdate:
		w.position = finiteOrZero(ev.Position)
	case media.EventPlaying:
		w.mediaIsPlaying = true
	case media.EventPaused:
		w.mediaIsPlaying = false
	case media.EventEnded:
		switch {
		case w.repeat == RepeatAll && w.opts.AdvanceOnRepeat && w.sel.Playlist != nil &&
			len(catalog.Playable(w.sel.Playlist.Items)) > 1:
			advance = true
		case w.repeat == RepeatAll:
			w.seekToLocked(0)
			w.playLocked()
		default:
			w.mediaIsPlaying = false
			w.wantPlaying = false
			setIntent, intent = true, false
		}
	case media.EventError:
		w.log.Error().Err(ev.Err).Str("src", ev.Token.Src).Msg(errmsg.FormatWith(errmsg.OpMediaLoad, ev.Token.Src, ev.Err))
		w.failed = true
		w.mediaIsPlaying = false
		w.wantPlaying = false
		setIntent, intent = true, false
	}
	w.mu.Unlock()

	if advance {
		w.coord.Next()
		return
	}
	if setIntent {
		w.coord.SetPlaying(intent)
	}
}

// State returns the current lifecycle state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Widget) stateLocked() State {
	switch {
	case w.token.IsZero():
		return StateEmpty
	case !w.loaded && !w.failed:
		return StateLoading
	case w.mediaIsPlaying:
		return StatePlaying
	default:
		return StatePaused
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
