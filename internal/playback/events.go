package playback

import "github.com/jojongai/portfolio/internal/route"

// SelectionChange is emitted when a different item (or the same item again)
// is selected, directly or through traversal.
type SelectionChange struct {
	Previous Selection
	Current  Selection
}

// IntentChange is emitted when the playing intent flips.
type IntentChange struct {
	Playing bool
}

// NavigationChange is emitted when traversal moved the visible detail route
// along with the selection.
type NavigationChange struct {
	Route route.Route
}
