package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/keymap"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/ui"
	"github.com/jojongai/portfolio/internal/ui/cursor"
)

// navigate pushes r and loads whatever it shows.
func (m Model) navigate(r route.Route) (Model, tea.Cmd) {
	m.history.Navigate(r)
	return m.enterRoute()
}

// enterRoute starts the fetches the visible route needs. Data already loaded
// or in flight is reused.
func (m Model) enterRoute() (Model, tea.Cmd) {
	r := m.history.Current()
	switch r.Kind {
	case route.KindHome:
		if m.home.settled() {
			return m, nil
		}
		m.home = fetchState{loading: true}
		return m, m.fetchPlaylistsCmd()

	case route.KindPlaylist, route.KindSong, route.KindRelationship:
		if r.PlaylistID == m.detailID && m.detailSt.settled() {
			return m, nil
		}
		if r.PlaylistID != m.detailID {
			m.detail = catalog.Playlist{}
			m.listCursor = cursor.New(ui.ScrollMargin)
		}
		m.detailID = r.PlaylistID
		m.detailSt = fetchState{loading: true}
		return m, m.fetchPlaylistCmd(r.PlaylistID, slotDetail)

	case route.KindHobbies:
		if m.hobbiesSt.settled() {
			return m, nil
		}
		m.hobbiesSt = fetchState{loading: true}
		return m, m.fetchPlaylistCmd(catalog.HobbiesPlaylistID, slotHobbies)
	}
	return m, nil
}

// refresh drops the visible route's data and fetches it again.
func (m Model) refresh() (Model, tea.Cmd) {
	switch r := m.history.Current(); {
	case r.Kind == route.KindHome:
		m.home = fetchState{}
	case r.Kind == route.KindHobbies:
		m.hobbiesSt = fetchState{}
	case r.PlaylistID != "":
		m.detailSt = fetchState{}
	}
	return m.enterRoute()
}

func (m Model) handleNavigationKey(action keymap.Action) (tea.Model, tea.Cmd) {
	r := m.history.Current()

	if r.Kind == route.KindHome {
		return m.handleHomeKey(action)
	}

	switch action {
	case keymap.ActionRelationship:
		switch r.Kind {
		case route.KindSong:
			return m.navigate(route.Relationship(r.PlaylistID, r.ItemID))
		case route.KindRelationship:
			return m.navigate(route.Song(r.PlaylistID, r.ItemID))
		}
		return m, nil
	case keymap.ActionOpen:
		if r.IsDetail() {
			m.selectDetailItem()
			return m, nil
		}
	}

	p, cur, ok := m.listing()
	if !ok {
		return m, nil
	}
	n, height := len(p.Items), m.listHeight()

	switch action {
	case keymap.ActionMoveDown:
		cur.Move(1, n, height)
	case keymap.ActionMoveUp:
		cur.Move(-1, n, height)
	case keymap.ActionJumpStart:
		cur.JumpStart()
	case keymap.ActionJumpEnd:
		cur.JumpEnd(n, height)
	case keymap.ActionOpen:
		if idx := cur.Pos(); idx < n {
			m.selectIndex(p, idx)
		}
	case keymap.ActionShowDetail:
		if idx := cur.Pos(); idx < n {
			return m.navigate(route.Song(p.ID, p.Items[idx].ID))
		}
	}
	return m, nil
}

func (m Model) handleHomeKey(action keymap.Action) (tea.Model, tea.Cmd) {
	n, cols := len(m.playlists), m.homeColumns()
	switch action {
	case keymap.ActionMoveLeft:
		m.homeCursor.MoveGrid(-1, 0, cols, n)
	case keymap.ActionMoveRight:
		m.homeCursor.MoveGrid(1, 0, cols, n)
	case keymap.ActionMoveUp:
		m.homeCursor.MoveGrid(0, -1, cols, n)
	case keymap.ActionMoveDown:
		m.homeCursor.MoveGrid(0, 1, cols, n)
	case keymap.ActionJumpStart:
		m.homeCursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.homeCursor.Jump(n-1, n, n)
	case keymap.ActionOpen:
		if idx := m.homeCursor.Pos(); idx < n {
			return m.navigate(route.Playlist(m.playlists[idx].ID))
		}
	}
	return m, nil
}

// listing returns the item list shown by the visible route and its cursor.
func (m *Model) listing() (catalog.Playlist, *cursor.Cursor, bool) {
	switch r := m.history.Current(); r.Kind {
	case route.KindPlaylist:
		if !m.hasDetail(r.PlaylistID) {
			return catalog.Playlist{}, nil, false
		}
		return m.detail, &m.listCursor, true
	case route.KindHobbies:
		if m.hobbies.ID == "" || m.hobbiesSt.notFound {
			return catalog.Playlist{}, nil, false
		}
		return m.hobbies, &m.hobbiesCursor, true
	}
	return catalog.Playlist{}, nil, false
}

// detailItem returns the playlist and item shown by a detail route.
func (m Model) detailItem() (catalog.Playlist, int, bool) {
	r := m.history.Current()
	if !r.IsDetail() || !m.hasDetail(r.PlaylistID) {
		return catalog.Playlist{}, -1, false
	}
	idx := m.detail.ItemIndex(r.ItemID)
	if idx < 0 {
		return m.detail, -1, false
	}
	return m.detail, idx, true
}

// hasDetail reports whether the playlist with id is loaded. Data stays
// visible while a refetch is in flight.
func (m Model) hasDetail(id string) bool {
	return id != "" && m.detail.ID == id && m.detailID == id && !m.detailSt.notFound
}

func (s fetchState) settled() bool {
	return s.loaded || s.loading || s.notFound
}
