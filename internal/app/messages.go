// Package app contains the terminal client: a Bubble Tea model that shows
// the catalog and drives the player coordinator and transport widget.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/playback"
)

// Message category interfaces for type-based routing in Update().

// CatalogMessage is implemented by messages carrying catalog data.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// PlaybackMessage is implemented by coordinator and media messages.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// PlaylistsLoadedMsg carries the result of a home listing fetch.
type PlaylistsLoadedMsg struct {
	Gen       uint64
	Playlists []catalog.Playlist
	Err       error
}

func (PlaylistsLoadedMsg) catalogMessage() {}

// fetchSlot names which page a single playlist fetch is for. The hobbies
// page and a playlist page may show the same id.
type fetchSlot int

const (
	slotDetail fetchSlot = iota
	slotHobbies
)

// PlaylistLoadedMsg carries the result of a single playlist fetch.
type PlaylistLoadedMsg struct {
	Slot     fetchSlot
	Gen      uint64
	ID       string
	Playlist catalog.Playlist
	Err      error
}

func (PlaylistLoadedMsg) catalogMessage() {}

// CatalogChangedMsg is sent when the server reports a catalog change.
type CatalogChangedMsg struct {
	Change catalogclient.Change
}

func (CatalogChangedMsg) catalogMessage() {}

// CatalogWatchStartedMsg carries the change stream once connected.
type CatalogWatchStartedMsg struct {
	Changes <-chan catalogclient.Change
}

func (CatalogWatchStartedMsg) catalogMessage() {}

// CatalogWatchClosedMsg is sent when the change stream ends or cannot be
// opened. Err is nil when the stream closed normally.
type CatalogWatchClosedMsg struct {
	Err error
}

func (CatalogWatchClosedMsg) catalogMessage() {}

// SelectionChangedMsg mirrors playback.SelectionChange.
type SelectionChangedMsg playback.SelectionChange

func (SelectionChangedMsg) playbackMessage() {}

// IntentChangedMsg mirrors playback.IntentChange.
type IntentChangedMsg playback.IntentChange

func (IntentChangedMsg) playbackMessage() {}

// NavigationChangedMsg mirrors playback.NavigationChange.
type NavigationChangedMsg playback.NavigationChange

func (NavigationChangedMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the coordinator subscription ends.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// MediaEventMsg forwards a media element event to the widget.
type MediaEventMsg struct {
	Event media.Event
}

func (MediaEventMsg) playbackMessage() {}

// MediaClosedMsg is sent when the element's event channel closes.
type MediaClosedMsg struct{}

func (MediaClosedMsg) playbackMessage() {}

// StderrMsg carries a line written to stderr by the audio backend.
type StderrMsg struct {
	Line string
}
