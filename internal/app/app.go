package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/config"
	"github.com/jojongai/portfolio/internal/keymap"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/notify"
	"github.com/jojongai/portfolio/internal/playback"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/state"
	"github.com/jojongai/portfolio/internal/transport"
	"github.com/jojongai/portfolio/internal/ui"
	"github.com/jojongai/portfolio/internal/ui/cursor"
	"github.com/jojongai/portfolio/internal/ui/playerbar"
)

// Deps are the collaborators the client drives. Coordinator, History and
// Widget must be wired together by the caller.
type Deps struct {
	Client      *catalogclient.Client
	Coordinator playback.Service
	History     *route.History
	Widget      *transport.Widget
	Element     media.Element
	Profile     config.ProfileConfig
	APIURL      string
	Stderr      <-chan string
	// Watch subscribes to server change notifications.
	Watch bool
	// Announcer shows desktop notifications on track changes; nil disables it.
	Announcer *notify.Announcer
	// State persists the session; nil disables it.
	State       state.Interface
	DisplayMode playerbar.DisplayMode
	Log         zerolog.Logger
}

// fetchState tracks one asynchronous catalog fetch.
type fetchState struct {
	loaded   bool
	loading  bool
	notFound bool
	err      string
}

// Model is the root application model.
type Model struct {
	client  *catalogclient.Client
	coord   playback.Service
	history *route.History
	widget  *transport.Widget
	element media.Element
	profile config.ProfileConfig
	apiURL  string
	keys    *keymap.Resolver
	log     zerolog.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	sub     *playback.Subscription
	watch   bool
	changes <-chan catalogclient.Change
	stderr  <-chan string
	state   state.Interface
	saved   *state.Session
	notify  *notify.Announcer

	// Home listing
	playlists []catalog.Playlist
	home      fetchState
	homeGen   *catalogclient.Generation

	// Playlist shown by playlist and detail routes
	detail    catalog.Playlist
	detailID  string
	detailSt  fetchState
	detailGen *catalogclient.Generation

	// Hobbies collection
	hobbies    catalog.Playlist
	hobbiesSt  fetchState
	hobbiesGen *catalogclient.Generation

	homeCursor    cursor.Cursor
	listCursor    cursor.Cursor
	hobbiesCursor cursor.Cursor

	initCmd tea.Cmd

	displayMode playerbar.DisplayMode
	showHelp    bool
	statusMsg   string
	width       int
	height      int
	now         func() time.Time
}

// New creates the model. The coordinator subscription is taken here so no
// event is missed before Init runs.
func New(d Deps) Model {
	ctx, cancel := backgroundContext()
	history := d.History
	if history == nil {
		history = route.NewHistory(route.Home())
	}
	m := Model{
		client:        d.Client,
		coord:         d.Coordinator,
		history:       history,
		widget:        d.Widget,
		element:       d.Element,
		profile:       d.Profile,
		apiURL:        d.APIURL,
		keys:          keymap.NewResolver(keymap.All),
		log:           d.Log,
		ctx:           ctx,
		cancel:        cancel,
		sub:           d.Coordinator.Subscribe(),
		watch:         d.Watch,
		stderr:        d.Stderr,
		state:         d.State,
		notify:        d.Announcer,
		homeGen:       &catalogclient.Generation{},
		detailGen:     &catalogclient.Generation{},
		hobbiesGen:    &catalogclient.Generation{},
		homeCursor:    cursor.New(0),
		listCursor:    cursor.New(ui.ScrollMargin),
		hobbiesCursor: cursor.New(ui.ScrollMargin),
		displayMode:   d.DisplayMode,
		now:           time.Now,
	}
	s := m.session()
	m.saved = &s
	m, cmd := m.enterRoute()
	m.initCmd = cmd
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.WatchServiceEvents(),
		m.WatchMedia(),
		m.WatchStderr(),
	}
	if m.watch {
		cmds = append(cmds, m.watchCatalogCmd())
	}
	cmds = append(cmds, m.initCmd)
	return tea.Batch(cmds...)
}

// Route returns the visible route.
func (m Model) Route() route.Route {
	return m.history.Current()
}

// Shutdown cancels in-flight requests and the change stream.
func (m Model) Shutdown() {
	m.cancel()
}
