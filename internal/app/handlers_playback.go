package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/keymap"
	"github.com/jojongai/portfolio/internal/route"
)

// handlePlaybackKey applies transport actions. Returns false for actions
// it does not own.
func (m Model) handlePlaybackKey(action keymap.Action) bool {
	switch action {
	case keymap.ActionPlayPause:
		m.widget.TogglePlayPause()
	case keymap.ActionNextTrack:
		m.coord.Next()
		m.syncWidget()
	case keymap.ActionPrevTrack:
		m.coord.Previous()
		m.syncWidget()
	case keymap.ActionSeekForward:
		m.widget.SeekBy(seekStep)
	case keymap.ActionSeekBack:
		m.widget.SeekBy(-seekStep)
	case keymap.ActionVolumeUp:
		m.widget.SetVolume(float64(m.widget.Snapshot().VolumePercent()) + volumeStep)
	case keymap.ActionVolumeDown:
		m.widget.SetVolume(float64(m.widget.Snapshot().VolumePercent()) - volumeStep)
	case keymap.ActionToggleMute:
		m.widget.ToggleMute()
	case keymap.ActionCycleRepeat:
		m.widget.ToggleRepeat()
	case keymap.ActionToggleShuffle:
		m.widget.ToggleShuffle()
	default:
		return false
	}
	return true
}

// selectIndex selects the item at raw index idx of p and starts it.
func (m Model) selectIndex(p catalog.Playlist, idx int) {
	m.coord.Select(p.Items[idx], &p, idx)
	m.syncWidget()
}

// selectDetailItem selects the item shown by the visible song page.
func (m Model) selectDetailItem() {
	p, idx, ok := m.detailItem()
	if !ok {
		return
	}
	m.selectIndex(p, idx)
}

// syncWidget binds the transport to the coordinator's current selection.
func (m Model) syncWidget() {
	if m.widget != nil {
		m.widget.Sync(m.coord.Selection())
	}
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectionChangedMsg:
		m.syncWidget()
		m.followSelection(msg.Current.PlaylistID(), msg.Current.Index)
		return m, tea.Batch(m.WatchServiceEvents(), m.announceCmd(msg.Current))

	case IntentChangedMsg:
		m.syncWidget()
		return m, m.WatchServiceEvents()

	case NavigationChangedMsg:
		m.log.Debug().Stringer("route", msg.Route).Msg("route synced to selection")
		model, cmd := m.enterRoute()
		model.persist()
		return model, tea.Batch(cmd, model.WatchServiceEvents())

	case ServiceClosedMsg:
		m.sub = nil
		return m, nil

	case MediaEventMsg:
		m.widget.HandleEvent(msg.Event)
		return m, m.WatchMedia()

	case MediaClosedMsg:
		return m, nil
	}
	return m, nil
}

// followSelection moves the playlist cursor onto the selected item when
// that playlist is on screen.
func (m *Model) followSelection(playlistID string, idx int) {
	r := m.history.Current()
	if r.Kind != route.KindPlaylist || playlistID != m.detailID || idx < 0 {
		return
	}
	m.listCursor.Jump(idx, len(m.detail.Items), m.listHeight())
}
