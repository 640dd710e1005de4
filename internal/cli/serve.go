package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jojongai/portfolio/internal/api"
	"github.com/jojongai/portfolio/internal/logging"
	"github.com/jojongai/portfolio/internal/store"
)

// ServeParams are the flags of the serve command.
type ServeParams struct {
	Addr     string
	DataFile string
	Driver   string
	Watch    bool
}

func ServeCmd() *cobra.Command {
	var p ServeParams
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the playlist API, media assets and change events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, p)
		},
	}
	c.Flags().StringVar(&p.Addr, "addr", "", "listen address (default from config, :8080)")
	c.Flags().StringVar(&p.DataFile, "data", "", "playlists JSON document")
	c.Flags().StringVar(&p.Driver, "driver", "", `store driver: "file" or "sqlite"`)
	c.Flags().BoolVar(&p.Watch, "watch", true, "reload the data file when it is edited")
	return c
}

func runServe(ctx context.Context, p ServeParams) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if p.Addr != "" {
		cfg.Server.Addr = p.Addr
	}
	if p.DataFile != "" {
		cfg.Server.DataFile = p.DataFile
	}
	if p.Driver != "" {
		cfg.Store.Driver = p.Driver
	}

	log := logging.Console(cfg.Log.Level)

	st, err := store.Open(store.Options{
		Driver:     cfg.Store.Driver,
		DataFile:   cfg.Server.DataFile,
		SQLitePath: cfg.Store.SQLitePath,
		Watch:      p.Watch,
	}, log)
	if err != nil {
		return err
	}
	defer st.Close()

	ev := log.Info().Str("driver", cfg.Store.Driver)
	if cfg.UseSQLite() {
		ev = ev.Str("db", cfg.Store.SQLitePath)
	} else {
		ev = ev.Str("file", cfg.Server.DataFile)
		if fi, err := os.Stat(cfg.Server.DataFile); err == nil {
			ev = ev.Str("size", humanize.Bytes(uint64(fi.Size()))) //nolint:gosec // file sizes are non-negative
		}
	}
	ev.Msg("catalog opened")

	srv := api.NewServer(st, api.Options{
		AssetsDir:      cfg.Server.AssetsDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, log)
	if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
