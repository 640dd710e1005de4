package playback

import (
	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/route"
)

// Selection is a snapshot of the coordinator's state. Item and Playlist are
// private copies; mutating them has no effect on the coordinator.
type Selection struct {
	Item            *catalog.Item
	Playlist        *catalog.Playlist // nil for standalone selections
	Index           int               // raw index in Playlist.Items, or -1
	IsPlayingIntent bool
}

// emptySelection is the state at startup.
func emptySelection() Selection {
	return Selection{Index: -1}
}

// HasItem reports whether anything is selected.
func (s Selection) HasItem() bool {
	return s.Item != nil
}

// MediaPath returns the selected item's media reference, or "".
func (s Selection) MediaPath() string {
	if s.Item == nil || !s.Item.Playable() {
		return ""
	}
	return s.Item.MediaPath
}

// PlaylistID returns the owning playlist's id, or "".
func (s Selection) PlaylistID() string {
	if s.Playlist == nil {
		return ""
	}
	return s.Playlist.ID
}

// ItemID returns the selected item's id, or "".
func (s Selection) ItemID() string {
	if s.Item == nil {
		return ""
	}
	return s.Item.ID
}

// Key identifies the bound media: it changes whenever the selected item or
// its media reference changes.
func (s Selection) Key() string {
	if s.Item == nil {
		return ""
	}
	return s.PlaylistID() + "\x00" + s.Item.ID + "\x00" + s.MediaPath()
}

// DetailRoute returns the song page of the selection. Standalone
// selections have none.
func (s Selection) DetailRoute() (route.Route, bool) {
	if s.Item == nil || s.Playlist == nil {
		return route.Route{}, false
	}
	return route.Song(s.Playlist.ID, s.Item.ID), true
}

func (s Selection) clone() Selection {
	out := s
	if s.Item != nil {
		it := *s.Item
		if s.Item.Accomplishments != nil {
			it.Accomplishments = append([]string(nil), s.Item.Accomplishments...)
		}
		out.Item = &it
	}
	if s.Playlist != nil {
		p := s.Playlist.Clone()
		out.Playlist = &p
	}
	return out
}
