package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/playback"
)

// watchRetryDelay is the pause before reconnecting a dropped change stream.
const watchRetryDelay = 5 * time.Second

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// fetchPlaylistsCmd loads the home listing, stamped with a new generation.
func (m Model) fetchPlaylistsCmd() tea.Cmd {
	gen := m.homeGen.Next()
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		playlists, err := client.ListPlaylists(ctx)
		return PlaylistsLoadedMsg{Gen: gen, Playlists: playlists, Err: err}
	}
}

// fetchPlaylistCmd loads one playlist for the detail or hobbies pages.
func (m Model) fetchPlaylistCmd(id string, slot fetchSlot) tea.Cmd {
	gen := m.generation(slot).Next()
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		p, err := client.GetPlaylist(ctx, id)
		return PlaylistLoadedMsg{Slot: slot, Gen: gen, ID: id, Playlist: p, Err: err}
	}
}

func (m Model) generation(slot fetchSlot) *catalogclient.Generation {
	if slot == slotHobbies {
		return m.hobbiesGen
	}
	return m.detailGen
}

// watchCatalogCmd opens the server's change stream.
func (m Model) watchCatalogCmd() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		ch, err := client.Watch(ctx)
		if err != nil {
			return CatalogWatchClosedMsg{Err: err}
		}
		return CatalogWatchStartedMsg{Changes: ch}
	}
}

// retryWatchCmd reconnects the change stream after a delay.
func (m Model) retryWatchCmd() tea.Cmd {
	watch := m.watchCatalogCmd()
	return tea.Tick(watchRetryDelay, func(time.Time) tea.Msg {
		return watch()
	})
}

func (m Model) waitForChange() tea.Cmd {
	return waitForChannel(m.changes, func(c catalogclient.Change, ok bool) tea.Msg {
		if !ok {
			return CatalogWatchClosedMsg{}
		}
		return CatalogChangedMsg{Change: c}
	})
}

// WatchServiceEvents returns a command that waits for coordinator events.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.SelectionChanged:
			return SelectionChangedMsg(e)
		case e := <-sub.IntentChanged:
			return IntentChangedMsg(e)
		case e := <-sub.NavigationChanged:
			return NavigationChangedMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchMedia returns a command that waits for the next media event.
func (m Model) WatchMedia() tea.Cmd {
	if m.element == nil {
		return nil
	}
	return waitForChannel(m.element.Events(), func(ev media.Event, ok bool) tea.Msg {
		if !ok {
			return MediaClosedMsg{}
		}
		return MediaEventMsg{Event: ev}
	})
}

// WatchStderr returns a command that waits for captured stderr output.
func (m Model) WatchStderr() tea.Cmd {
	return waitForChannel(m.stderr, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

func backgroundContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

// announceCmd posts the desktop notification for sel off the update loop.
func (m Model) announceCmd(sel playback.Selection) tea.Cmd {
	if m.notify == nil || !sel.HasItem() {
		return nil
	}
	a, log := m.notify, m.log
	return func() tea.Msg {
		if err := a.Announce(sel); err != nil {
			log.Debug().Err(err).Msg("now playing notification")
		}
		return nil
	}
}
