package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/catalogclient"
	"github.com/jojongai/portfolio/internal/errmsg"
	"github.com/jojongai/portfolio/internal/store"
)

// PlaylistsParams are the flags of the playlists command.
type PlaylistsParams struct {
	APIURL string
	Local  bool
}

func PlaylistsCmd() *cobra.Command {
	var p PlaylistsParams
	c := &cobra.Command{
		Use:   "playlists",
		Short: "List the catalog as a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlaylists(cmd.Context(), cmd.OutOrStdout(), p)
		},
	}
	c.Flags().StringVar(&p.APIURL, "api", "", "catalog API base URL (default from config)")
	c.Flags().BoolVar(&p.Local, "local", false, "read the configured store instead of the API")
	return c
}

func runPlaylists(ctx context.Context, out io.Writer, p PlaylistsParams) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if p.APIURL != "" {
		cfg.Client.APIURL = p.APIURL
	}

	var playlists []catalog.Playlist
	if p.Local {
		st, err := store.Open(store.Options{
			Driver:     cfg.Store.Driver,
			DataFile:   cfg.Server.DataFile,
			SQLitePath: cfg.Store.SQLitePath,
		}, zerolog.Nop())
		if err != nil {
			return err
		}
		defer st.Close()
		if playlists, err = st.List(ctx); err != nil {
			return err
		}
	} else {
		playlists, err = catalogclient.New(cfg.Client.APIURL).ListPlaylists(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.Unreachable(errmsg.OpPlaylistsFetch, cfg.Client.APIURL), err)
		}
	}

	footer := ""
	if p.Local && !cfg.UseSQLite() {
		if fi, err := os.Stat(cfg.Server.DataFile); err == nil {
			footer = fmt.Sprintf("%s, modified %s", humanize.Bytes(uint64(fi.Size())), humanize.Time(fi.ModTime())) //nolint:gosec // file sizes are non-negative
		}
	}
	RenderPlaylists(out, playlists, footer)
	return nil
}

// RenderPlaylists writes one row per playlist with item counts.
func RenderPlaylists(out io.Writer, playlists []catalog.Playlist, footer string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Category", "Items", "Playable"})

	var items, playable int
	for _, pl := range playlists {
		n := len(catalog.Playable(pl.Items))
		items += len(pl.Items)
		playable += n

		category := string(pl.Kind())
		if category == "" {
			category = "-"
		}
		t.AppendRow(table.Row{pl.ID, pl.Title, category, len(pl.Items), n})
	}

	summary := fmt.Sprintf("%s playlists", humanize.Comma(int64(len(playlists))))
	if footer != "" {
		summary += " · " + footer
	}
	t.AppendFooter(table.Row{summary, "", "", humanize.Comma(int64(items)), humanize.Comma(int64(playable))})
	t.Render()
}
