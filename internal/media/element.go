// Package media models an audio element: a single loadable source with
// play/pause/seek/volume controls that reports progress through events.
package media

import "errors"

// ErrNoSource is returned by Play when nothing is loaded.
var ErrNoSource = errors.New("no media loaded")

// Token identifies one Load call. Events carry the token of the load they
// belong to so that late events from a replaced source can be discarded.
type Token struct {
	Src string
	Gen uint64
}

// IsZero reports whether the token belongs to no load.
func (t Token) IsZero() bool {
	return t.Gen == 0
}

// EventKind identifies a media event.
type EventKind int

const (
	EventLoadedMetadata EventKind = iota
	EventTimeUpdate
	EventPlaying
	EventPaused
	EventEnded
	EventError
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLoadedMetadata:
		return "LoadedMetadata"
	case EventTimeUpdate:
		return "TimeUpdate"
	case EventPlaying:
		return "Playing"
	case EventPaused:
		return "Paused"
	case EventEnded:
		return "Ended"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is emitted by an Element. Duration is set for LoadedMetadata,
// Position for TimeUpdate, Err for Error. Times are in seconds.
type Event struct {
	Kind     EventKind
	Token    Token
	Duration float64
	Position float64
	Err      error
}

// Element is the audio element contract.
type Element interface {
	// Load replaces the current source. Loading completes asynchronously
	// with LoadedMetadata or Error. Elements start paused.
	Load(src string) Token
	// Play starts or resumes playback. If loading is still in progress,
	// playback starts once the source is ready.
	Play() error
	Pause()
	// Seek jumps to an absolute position in seconds.
	Seek(seconds float64)
	// SetVolume sets the level, 0.0 to 1.0.
	SetVolume(level float64)
	Paused() bool
	// Unload drops the current source.
	Unload()
	Events() <-chan Event
	Close() error
}
