package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jojongai/portfolio/internal/app"
	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/config"
	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/logging"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/mpris"
	"github.com/jojongai/portfolio/internal/notify"
	"github.com/jojongai/portfolio/internal/playback"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/state"
	"github.com/jojongai/portfolio/internal/stderr"
	"github.com/jojongai/portfolio/internal/transport"
	"github.com/jojongai/portfolio/internal/ui/playerbar"
)

// BrowseParams are the flags of the browse command.
type BrowseParams struct {
	APIURL   string
	NoWatch  bool
	NoMPRIS  bool
	NoState  bool
	NoNotify bool
	Start    string
}

func BrowseCmd() *cobra.Command {
	var p BrowseParams
	c := &cobra.Command{
		Use:   "browse [path]",
		Short: "Open the terminal client",
		Long: "Open the terminal client. An optional path such as /playlist/<id> " +
			"or /profile selects the first page.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p.Start = args[0]
			}
			return runBrowse(cmd.Context(), p)
		},
	}
	c.Flags().StringVar(&p.APIURL, "api", "", "catalog API base URL (default from config)")
	c.Flags().BoolVar(&p.NoWatch, "no-watch", false, "do not subscribe to catalog change events")
	c.Flags().BoolVar(&p.NoMPRIS, "no-mpris", false, "do not register media keys on D-Bus")
	c.Flags().BoolVar(&p.NoState, "no-state", false, "do not restore or save the last session")
	c.Flags().BoolVar(&p.NoNotify, "no-notify", false, "do not show desktop notifications on track changes")
	return c
}

func runBrowse(_ context.Context, p BrowseParams) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if p.APIURL != "" {
		cfg.Client.APIURL = p.APIURL
	}

	icons.Init(cfg.UI.Icons)

	log, closer, err := logging.File(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	var store state.Interface
	var session *state.Session
	if !p.NoState {
		store, session = openState(log)
		if store != nil {
			defer store.Close()
		}
	}

	start, err := startRoute(p.Start, session)
	if err != nil {
		return err
	}
	restored := restoreOptions(cfg, session)

	// Capture before the audio backend initializes so its diagnostics stay
	// off the screen.
	capture, err := stderr.Start()
	if err != nil {
		log.Warn().Err(err).Msg("stderr capture disabled")
	}
	defer capture.Close()

	origin := assetOrigin(cfg.Client.APIURL)
	el := media.NewBeep(media.BeepOptions{
		MediaRoot: cfg.Player.MediaRoot,
		BaseURL:   origin,
	}, log)
	defer el.Close()

	history := route.NewHistory(start)
	coord := playback.New(history, log)
	defer coord.Close()

	widget := transport.New(el, coord, restored.transport, log)
	widget.SetRepeat(restored.repeat)
	widget.SetShuffle(restored.shuffle)

	if !p.NoMPRIS {
		closeMPRIS := startMPRIS(coord, widget, mpris.Options{
			AssetsBase: origin,
			MediaRoot:  cfg.Player.MediaRoot,
		}, log)
		defer closeMPRIS()
	}

	var announcer *notify.Announcer
	if !p.NoNotify {
		n, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications unavailable")
		} else {
			announcer = notify.NewAnnouncer(n, cfg.Player.MediaRoot)
		}
	}

	log.Info().Str("api", cfg.Client.APIURL).Stringer("start", start).Msg("client starting")

	m := app.New(app.Deps{
		Client:      catalogclient.New(cfg.Client.APIURL),
		Coordinator: coord,
		History:     history,
		Widget:      widget,
		Element:     el,
		Profile:     cfg.Profile,
		APIURL:      cfg.Client.APIURL,
		Stderr:      capture.Lines(),
		Watch:       !p.NoWatch,
		State:       store,
		Announcer:   announcer,
		DisplayMode: restored.display,
		Log:         log,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	if err != nil {
		capture.WriteOriginal(fmt.Sprintf("portfolio: %v\n", err))
		return err
	}
	return nil
}

// openState opens the session store. A failure only disables persistence.
func openState(log zerolog.Logger) (state.Interface, *state.Session) {
	m, err := state.Open("")
	if err != nil {
		log.Warn().Err(err).Msg("session state disabled")
		return nil, nil
	}
	s, err := m.GetSession()
	if err != nil {
		log.Warn().Err(err).Msg("session state unreadable")
		return m, nil
	}
	return m, s
}

// startRoute picks the first page: the explicit path, else the saved route,
// else home. An unknown saved route falls back to home.
func startRoute(path string, s *state.Session) (route.Route, error) {
	if path != "" {
		r, ok := route.Parse(path)
		if !ok {
			return route.Route{}, fmt.Errorf("unknown page %q", path)
		}
		return r, nil
	}
	if s != nil {
		if r, ok := route.Parse(s.Route); ok {
			return r, nil
		}
	}
	return route.Home(), nil
}

type restoredSession struct {
	transport transport.Options
	repeat    transport.RepeatMode
	shuffle   bool
	display   playerbar.DisplayMode
}

// restoreOptions merges the saved session over the configured defaults.
func restoreOptions(cfg *config.Config, s *state.Session) restoredSession {
	r := restoredSession{
		transport: transport.Options{
			AdvanceOnRepeat: cfg.Player.RepeatAll == config.RepeatPlaylist,
			Volume:          float64(cfg.Player.Volume) / 100,
		},
		display: playerbar.ModeCompact,
	}
	if s == nil {
		return r
	}
	if s.Volume >= 0 && s.Volume <= 1 {
		r.transport.Volume = s.Volume
	}
	if s.Repeat {
		r.repeat = transport.RepeatAll
	}
	r.shuffle = s.Shuffle
	if playerbar.DisplayMode(s.DisplayMode) == playerbar.ModeExpanded {
		r.display = playerbar.ModeExpanded
	}
	return r
}

func startMPRIS(coord playback.Service, w *transport.Widget, opts mpris.Options, log zerolog.Logger) func() {
	adapter, err := mpris.New(coord, w, opts, log)
	if err != nil {
		log.Warn().Err(err).Msg("media keys unavailable")
		return func() {}
	}
	return func() {
		if err := adapter.Close(); err != nil {
			log.Debug().Err(err).Msg("mpris close")
		}
	}
}
