// Package route models the client's navigable locations and their paths.
package route

import (
	"net/url"
	"strings"
)

// Kind identifies a page.
type Kind int

const (
	KindHome Kind = iota
	KindPlaylist
	KindSong
	KindRelationship
	KindProfile
	KindHobbies
	KindLikedSongs
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHome:
		return "Home"
	case KindPlaylist:
		return "Playlist"
	case KindSong:
		return "Song"
	case KindRelationship:
		return "Relationship"
	case KindProfile:
		return "Profile"
	case KindHobbies:
		return "Hobbies"
	case KindLikedSongs:
		return "LikedSongs"
	default:
		return "Unknown"
	}
}

// Route is a location in the client. PlaylistID is set for playlist and
// detail routes, ItemID only for detail routes.
type Route struct {
	Kind       Kind
	PlaylistID string
	ItemID     string
}

func Home() Route { return Route{Kind: KindHome} }

func Playlist(id string) Route { return Route{Kind: KindPlaylist, PlaylistID: id} }

func Song(playlistID, itemID string) Route {
	return Route{Kind: KindSong, PlaylistID: playlistID, ItemID: itemID}
}

func Relationship(playlistID, itemID string) Route {
	return Route{Kind: KindRelationship, PlaylistID: playlistID, ItemID: itemID}
}

// IsDetail reports whether the route shows a single item.
func (r Route) IsDetail() bool {
	return r.Kind == KindSong || r.Kind == KindRelationship
}

// ShowsItem reports whether r is a detail route for the given item.
func (r Route) ShowsItem(playlistID, itemID string) bool {
	return r.IsDetail() && r.PlaylistID == playlistID && r.ItemID == itemID
}

// WithItem returns the same detail sub-view for another item of the same
// playlist.
func (r Route) WithItem(itemID string) Route {
	r.ItemID = itemID
	return r
}

// Path renders the route as a URL path.
func (r Route) Path() string {
	switch r.Kind {
	case KindPlaylist:
		return "/playlist/" + url.PathEscape(r.PlaylistID)
	case KindSong:
		return "/playlist/" + url.PathEscape(r.PlaylistID) + "/song/" + url.PathEscape(r.ItemID)
	case KindRelationship:
		return "/playlist/" + url.PathEscape(r.PlaylistID) + "/song/" + url.PathEscape(r.ItemID) + "/relationship"
	case KindProfile:
		return "/profile"
	case KindHobbies:
		return "/hobbies"
	case KindLikedSongs:
		return "/liked-songs"
	default:
		return "/"
	}
}

func (r Route) String() string {
	return r.Path()
}

// Parse maps a URL path to a route. Unknown paths report false.
func Parse(path string) (Route, bool) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Home(), true
	}

	parts := strings.Split(trimmed, "/")
	for i, p := range parts {
		u, err := url.PathUnescape(p)
		if err != nil || u == "" {
			return Route{}, false
		}
		parts[i] = u
	}

	switch {
	case len(parts) == 1 && parts[0] == "profile":
		return Route{Kind: KindProfile}, true
	case len(parts) == 1 && parts[0] == "hobbies":
		return Route{Kind: KindHobbies}, true
	case len(parts) == 1 && parts[0] == "liked-songs":
		return Route{Kind: KindLikedSongs}, true
	case len(parts) == 2 && parts[0] == "playlist":
		return Playlist(parts[1]), true
	case len(parts) == 4 && parts[0] == "playlist" && parts[2] == "song":
		return Song(parts[1], parts[3]), true
	case len(parts) == 5 && parts[0] == "playlist" && parts[2] == "song" && parts[4] == "relationship":
		return Relationship(parts[1], parts[3]), true
	}
	return Route{}, false
}
