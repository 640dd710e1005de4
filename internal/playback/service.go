// Package playback coordinates which catalog item is selected and whether
// the user wants it playing. Every view that can select, toggle or traverse
// shares one Service.
package playback

import (
	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/route"
)

// Navigator is the slice of the client router the coordinator needs to keep
// detail pages in step with previous/next traversal.
type Navigator interface {
	Current() route.Route
	Navigate(r route.Route)
}

// Service defines the player state coordinator contract.
type Service interface {
	// Selection control
	Select(item catalog.Item, playlist *catalog.Playlist, rawIndex int)
	SelectItem(item catalog.Item) // standalone selection: no playlist, index -1

	// Intent control
	TogglePlayPause()
	SetPlaying(playing bool)

	// Traversal over the playable subsequence of the selected playlist
	Previous()
	Next()

	// State queries
	Selection() Selection
	SelectedItem() *catalog.Item
	SelectedPlaylist() *catalog.Playlist
	IsPlayingIntent() bool

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
