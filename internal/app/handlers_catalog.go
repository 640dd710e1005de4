package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/errmsg"
	"github.com/jojongai/portfolio/internal/route"
)

func (m Model) handleCatalogMsg(msg CatalogMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaylistsLoadedMsg:
		return m.handlePlaylistsLoaded(msg), nil

	case PlaylistLoadedMsg:
		return m.handlePlaylistLoaded(msg), nil

	case CatalogWatchStartedMsg:
		m.log.Debug().Msg("catalog change stream connected")
		m.changes = msg.Changes
		return m, m.waitForChange()

	case CatalogChangedMsg:
		m.log.Debug().Str("type", msg.Change.Type).Str("id", msg.Change.ID).Msg("catalog changed")
		model, cmd := m.invalidate(msg.Change.ID)
		return model, tea.Batch(cmd, model.waitForChange())

	case CatalogWatchClosedMsg:
		m.changes = nil
		if m.ctx.Err() != nil {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Msg(errmsg.Format(errmsg.OpCatalogWatch, msg.Err))
		}
		return m, m.retryWatchCmd()
	}
	return m, nil
}

func (m Model) handlePlaylistsLoaded(msg PlaylistsLoadedMsg) Model {
	if !m.homeGen.Current(msg.Gen) {
		return m
	}
	if msg.Err != nil {
		m.home = m.failedFetch(errmsg.OpPlaylistsFetch, msg.Err)
		return m
	}
	m.home = fetchState{loaded: true}
	m.playlists = msg.Playlists
	m.homeCursor.ClampToBounds(len(m.playlists))
	return m
}

func (m Model) handlePlaylistLoaded(msg PlaylistLoadedMsg) Model {
	if !m.generation(msg.Slot).Current(msg.Gen) {
		return m
	}

	op := errmsg.OpPlaylistFetch
	if m.history.Current().IsDetail() {
		op = errmsg.OpSongFetch
	}

	var st fetchState
	if msg.Err != nil {
		st = m.failedFetch(op, msg.Err)
	} else {
		st = fetchState{loaded: true}
	}

	switch msg.Slot {
	case slotHobbies:
		m.hobbiesSt = st
		if st.notFound {
			m.hobbies = catalog.Playlist{}
		}
		if st.loaded {
			m.hobbies = msg.Playlist
			m.hobbiesCursor.ClampToBounds(len(m.hobbies.Items))
		}
	default:
		if msg.ID != m.detailID {
			return m
		}
		m.detailSt = st
		if st.notFound {
			m.detail = catalog.Playlist{}
		}
		if st.loaded {
			m.detail = msg.Playlist
			m.listCursor.ClampToBounds(len(m.detail.Items))
		}
	}
	return m
}

// failedFetch maps a client error to the inline state of a page.
func (m Model) failedFetch(op errmsg.Op, err error) fetchState {
	var status *catalogclient.StatusError
	switch {
	case errors.Is(err, catalogclient.ErrNotFound):
		return fetchState{notFound: true}
	case errors.Is(err, context.Canceled):
		return fetchState{}
	case errors.As(err, &status):
		m.log.Error().Err(err).Msg(errmsg.Format(op, err))
		return fetchState{err: errmsg.Format(op, err)}
	default:
		m.log.Error().Err(err).Str("api", m.apiURL).Msg("catalog server unreachable")
		return fetchState{err: errmsg.Unreachable(op, m.apiURL)}
	}
}

// invalidate marks data touched by a change as stale and refetches what is
// on screen. An empty id means any playlist may have changed.
func (m Model) invalidate(id string) (Model, tea.Cmd) {
	m.home = fetchState{}
	if id == "" || id == m.detailID {
		m.detailSt = fetchState{}
	}
	if id == "" || id == catalog.HobbiesPlaylistID {
		m.hobbiesSt = fetchState{}
	}
	switch r := m.history.Current(); r.Kind {
	case route.KindHome, route.KindHobbies, route.KindPlaylist, route.KindSong, route.KindRelationship:
		return m.enterRoute()
	}
	return m, nil
}
