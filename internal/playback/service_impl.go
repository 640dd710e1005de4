package playback

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu  sync.RWMutex
	sel Selection

	nav Navigator
	log zerolog.Logger

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a coordinator with an empty selection. nav may be nil when no
// router is attached.
func New(nav Navigator, log zerolog.Logger) Service {
	return &serviceImpl{
		sel: emptySelection(),
		nav: nav,
		log: log.With().Str("component", "playback").Logger(),
	}
}

// Select makes item the selection and always sets the playing intent.
func (s *serviceImpl) Select(item catalog.Item, playlist *catalog.Playlist, rawIndex int) {
	next := Selection{Item: &item, Index: rawIndex, IsPlayingIntent: true}
	if playlist != nil {
		p := playlist.Clone()
		next.Playlist = &p
	} else {
		next.Index = -1
	}
	next = next.clone()

	s.mu.Lock()
	prev := s.sel
	s.sel = next
	s.mu.Unlock()

	s.log.Debug().Str("item", item.ID).Str("playlist", next.PlaylistID()).Int("index", next.Index).Msg("select")
	s.emitSelect(prev, next)
}

// SelectItem selects an item outside of any playlist.
func (s *serviceImpl) SelectItem(item catalog.Item) {
	s.Select(item, nil, -1)
}

func (s *serviceImpl) emitSelect(prev, next Selection) {
	s.broadcast(func(sub *Subscription) {
		sub.sendSelection(SelectionChange{Previous: prev.clone(), Current: next.clone()})
	})
	if !prev.IsPlayingIntent {
		s.broadcast(func(sub *Subscription) {
			sub.sendIntent(IntentChange{Playing: true})
		})
	}
}

// TogglePlayPause flips the playing intent.
func (s *serviceImpl) TogglePlayPause() {
	s.mu.Lock()
	s.sel.IsPlayingIntent = !s.sel.IsPlayingIntent
	playing := s.sel.IsPlayingIntent
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendIntent(IntentChange{Playing: playing})
	})
}

// SetPlaying sets the playing intent. It is the write path the transport
// uses to propagate its own transitions.
func (s *serviceImpl) SetPlaying(playing bool) {
	s.mu.Lock()
	if s.sel.IsPlayingIntent == playing {
		s.mu.Unlock()
		return
	}
	s.sel.IsPlayingIntent = playing
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendIntent(IntentChange{Playing: playing})
	})
}

func (s *serviceImpl) Next() {
	s.step(1)
}

func (s *serviceImpl) Previous() {
	s.step(-1)
}

// step moves the selection one playable item forward (dir > 0) or back,
// wrapping at both ends. Every degenerate case is a silent no-op.
func (s *serviceImpl) step(dir int) {
	s.mu.Lock()
	prev := s.sel
	if prev.Playlist == nil || prev.Index < 0 {
		s.mu.Unlock()
		return
	}

	playable := catalog.Playable(prev.Playlist.Items)
	n := len(playable)
	if n == 0 {
		s.mu.Unlock()
		return
	}

	pos := -1
	for i, e := range playable {
		if e.RawIndex == prev.Index {
			pos = i
			break
		}
	}

	var target int
	switch {
	case dir > 0:
		target = (pos + 1) % n
	case pos < 0:
		// Not found: previous lands on the last playable item.
		target = n - 1
	default:
		target = (pos - 1 + n) % n
	}

	entry := playable[target]
	item := entry.Item
	next := Selection{
		Item:            &item,
		Playlist:        prev.Playlist,
		Index:           entry.RawIndex,
		IsPlayingIntent: true,
	}
	s.sel = next.clone()
	s.mu.Unlock()

	s.log.Debug().Str("item", item.ID).Int("index", entry.RawIndex).Int("dir", dir).Msg("traverse")
	s.emitSelect(prev, next)
	s.syncRoute(prev, item.ID)
}

// syncRoute moves a detail page that shows the previous selection to the
// same sub-view of the new item. Other routes are left alone.
func (s *serviceImpl) syncRoute(prev Selection, itemID string) {
	if s.nav == nil || prev.Item == nil {
		return
	}
	cur := s.nav.Current()
	if !cur.ShowsItem(prev.PlaylistID(), prev.Item.ID) {
		return
	}
	target := cur.WithItem(itemID)
	if target == cur {
		return
	}
	s.nav.Navigate(target)
	s.broadcast(func(sub *Subscription) {
		sub.sendNavigation(NavigationChange{Route: target})
	})
}

// Selection returns a snapshot of the current state.
func (s *serviceImpl) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.clone()
}

// SelectedItem returns a copy of the selected item, or nil.
func (s *serviceImpl) SelectedItem() *catalog.Item {
	return s.Selection().Item
}

// SelectedPlaylist returns a copy of the selected item's playlist, or nil.
func (s *serviceImpl) SelectedPlaylist() *catalog.Playlist {
	return s.Selection().Playlist
}

// IsPlayingIntent reports whether the user wants the selection playing.
func (s *serviceImpl) IsPlayingIntent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.IsPlayingIntent
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

func (s *serviceImpl) broadcast(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

// Close shuts down the service and closes every subscription.
func (s *serviceImpl) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}
