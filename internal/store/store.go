// Package store persists the playlist catalog.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jojongai/portfolio/internal/catalog"
)

var (
	// ErrNotFound is returned when no playlist has the requested id.
	ErrNotFound = errors.New("playlist not found")
	// ErrInvalid is returned when a create request lacks required fields.
	ErrInvalid = errors.New("invalid playlist")
)

// Store is the playlist catalog. Implementations are safe for concurrent use.
type Store interface {
	List(ctx context.Context) ([]catalog.Playlist, error)
	Get(ctx context.Context, id string) (catalog.Playlist, error)
	Create(ctx context.Context, d Draft) (catalog.Playlist, error)
	Update(ctx context.Context, id string, d Draft) (catalog.Playlist, error)
	Delete(ctx context.Context, id string) error
	// Replace swaps the whole catalog, preserving the given order.
	Replace(ctx context.Context, playlists []catalog.Playlist) error
	// OnChange registers a callback run after every change to the catalog.
	OnChange(fn ChangeFunc)
	Close() error
}

// Draft carries the writable fields of a playlist. On update, empty fields
// leave the stored value untouched; a nil Items keeps the stored items while
// a non-nil (even empty) Items replaces them.
type Draft struct {
	Title          string
	Description    string
	Category       catalog.Category
	ImageReference catalog.ImageRef
	Items          []catalog.Item
}

// DraftOf extracts the writable fields of a decoded playlist document.
func DraftOf(p catalog.Playlist) Draft {
	return Draft{
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		ImageReference: p.ImageReference,
		Items:          p.Items,
	}
}

// ChangeFunc is notified with the id of a playlist that changed. An empty id
// means the whole catalog may have changed.
type ChangeFunc func(id string)

func newPlaylist(d Draft) (catalog.Playlist, error) {
	title := strings.TrimSpace(d.Title)
	desc := strings.TrimSpace(d.Description)
	if title == "" || desc == "" {
		return catalog.Playlist{}, fmt.Errorf("%w: title and description are required", ErrInvalid)
	}

	p := catalog.Playlist{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    desc,
		Category:       d.Category,
		ImageReference: d.ImageReference,
		Items:          assignItemIDs(d.Items),
	}
	if p.ImageReference == "" {
		p.ImageReference = catalog.DefaultImage
	}
	if p.Items == nil {
		p.Items = []catalog.Item{}
	}
	return p, nil
}

// merge applies the non-empty fields of d onto p.
func merge(p catalog.Playlist, d Draft) catalog.Playlist {
	if d.Title != "" {
		p.Title = d.Title
	}
	if d.Description != "" {
		p.Description = d.Description
	}
	if d.Category != "" {
		p.Category = d.Category
	}
	if d.ImageReference != "" {
		p.ImageReference = d.ImageReference
	}
	if d.Items != nil {
		p.Items = assignItemIDs(d.Items)
	}
	return p
}

func assignItemIDs(items []catalog.Item) []catalog.Item {
	if items == nil {
		return nil
	}
	out := make([]catalog.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

func indexOf(playlists []catalog.Playlist, id string) int {
	for i, p := range playlists {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(playlists []catalog.Playlist) []catalog.Playlist {
	out := make([]catalog.Playlist, len(playlists))
	for i, p := range playlists {
		out[i] = p.Clone()
	}
	return out
}
