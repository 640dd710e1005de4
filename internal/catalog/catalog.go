// Package catalog defines the playlist and item records served by the store
// and consumed by the player.
package catalog

import (
	"path"
	"strings"
)

// DefaultImage is used when a playlist is created without an image reference.
const DefaultImage ImageRef = "🎵"

// ImageRef is either an inline glyph (emoji) or a path to an image asset.
type ImageRef string

var assetExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true, ".webp": true,
}

// IsAsset reports whether the reference points at an image file rather than
// being a glyph to render inline.
func (r ImageRef) IsAsset() bool {
	s := string(r)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	return assetExts[strings.ToLower(path.Ext(s))]
}

// Glyph returns the inline glyph, or "" if the reference is an asset.
func (r ImageRef) Glyph() string {
	if r.IsAsset() {
		return ""
	}
	return string(r)
}

// Item is a single entry ("song") within a playlist.
type Item struct {
	ID              string   `json:"id"`
	Title           string   `json:"title,omitempty"`
	Role            string   `json:"role,omitempty"`
	Name            string   `json:"name,omitempty"`
	Company         string   `json:"company,omitempty"`
	Artist          string   `json:"artist,omitempty"`
	Category        string   `json:"category,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description,omitempty"`
	MediaPath       string   `json:"mediaPath,omitempty"`
	Accomplishments []string `json:"accomplishments,omitempty"`
	ImageReference  ImageRef `json:"imageReference,omitempty"`
	Cover           string   `json:"cover,omitempty"`
	Relationship    string   `json:"relationship,omitempty"`
}

// Playable reports whether the item has a media reference and can therefore
// be reached by previous/next traversal.
func (it Item) Playable() bool {
	return strings.TrimSpace(it.MediaPath) != ""
}

// Playlist is a named, ordered collection of items.
type Playlist struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       Category `json:"category,omitempty"`
	ImageReference ImageRef `json:"imageReference"`
	Items          []Item   `json:"items"`
}

// Kind returns the playlist's category, inferring it from well-known ids
// when the record does not carry one.
func (p Playlist) Kind() Category {
	if p.Category != "" {
		return p.Category
	}
	return categoryByID[p.ID]
}

// ItemIndex returns the raw index of the item with the given id, or -1.
func (p Playlist) ItemIndex(id string) int {
	for i, it := range p.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can hand out records without sharing
// the backing arrays of the store.
func (p Playlist) Clone() Playlist {
	out := p
	if p.Items != nil {
		out.Items = make([]Item, len(p.Items))
		for i, it := range p.Items {
			out.Items[i] = it
			if it.Accomplishments != nil {
				out.Items[i].Accomplishments = append([]string(nil), it.Accomplishments...)
			}
		}
	}
	return out
}

// Entry pairs a playable item with its position in the raw item list.
type Entry struct {
	Item     Item
	RawIndex int
}

// Playable returns the playable subsequence of items, in order.
func Playable(items []Item) []Entry {
	var out []Entry
	for i, it := range items {
		if it.Playable() {
			out = append(out, Entry{Item: it, RawIndex: i})
		}
	}
	return out
}
