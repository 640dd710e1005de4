package notify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/playback"
)

const (
	announceTimeout = 4000
	defaultIcon     = "audio-x-generic"
)

// Announcer shows a "now playing" notification when the selected item
// changes. Each notification replaces the previous one.
type Announcer struct {
	n         Notifier
	mediaRoot string

	mu      sync.Mutex
	lastID  uint32
	lastKey string
}

// NewAnnouncer wraps n. Covers found under mediaRoot are used as the
// notification icon.
func NewAnnouncer(n Notifier, mediaRoot string) *Announcer {
	return &Announcer{n: n, mediaRoot: mediaRoot}
}

// Announce notifies about sel unless it is empty or already announced.
func (a *Announcer) Announce(sel playback.Selection) error {
	if a == nil || !sel.HasItem() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := sel.Key()
	if key == a.lastKey {
		return nil
	}

	var kind catalog.Category
	album := ""
	if sel.Playlist != nil {
		kind = sel.Playlist.Kind()
		album = sel.Playlist.Title
	}
	d := catalog.Resolve(kind, *sel.Item)

	body := d.Secondary
	if album != "" {
		if body != "" {
			body += "\n"
		}
		body += album
	}

	id, err := a.n.Notify(Notification{
		Title:      d.Primary,
		Body:       body,
		Icon:       a.icon(sel.Item.Cover),
		Timeout:    announceTimeout,
		ReplacesID: a.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	a.lastID = id
	a.lastKey = key
	return nil
}

func (a *Announcer) icon(cover string) string {
	cover = strings.TrimSpace(cover)
	if cover == "" || a.mediaRoot == "" {
		return defaultIcon
	}
	path := filepath.Join(a.mediaRoot, filepath.FromSlash(strings.TrimPrefix(cover, "/")))
	if _, err := os.Stat(path); err != nil {
		return defaultIcon
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
