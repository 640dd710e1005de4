//go:build linux

// Package mpris exposes the player on the session bus so desktop media keys
// and widgets can control it.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/playback"
	"github.com/jojongai/portfolio/internal/transport"
)

const microsPerSecond = 1e6

// Adapter connects the coordinator and transport widget to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	log    zerolog.Logger
}

// New creates and starts a new MPRIS adapter.
func New(coord playback.Service, tr Transport, opts Options, log zerolog.Logger) (*Adapter, error) {
	a := &Adapter{log: log}
	a.server = server.NewServer("portfolio", &rootAdapter{}, &playerAdapter{
		coord: coord,
		tr:    tr,
		opts:  opts,
	})

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Portfolio", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https", "file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional
// interfaces. Traversal goes to the coordinator, everything else to the
// transport.
type playerAdapter struct {
	coord playback.Service
	tr    Transport
	opts  Options
}

func (p *playerAdapter) Next() error {
	p.coord.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.coord.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.tr.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.tr.TogglePlayPause()
	return nil
}

// Stop pauses and rewinds; there is no stopped state.
func (p *playerAdapter) Stop() error {
	p.tr.Pause()
	p.tr.SeekTo(0)
	return nil
}

func (p *playerAdapter) Play() error {
	p.tr.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.tr.SeekBy(float64(offset) / microsPerSecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.tr.SeekTo(float64(position) / microsPerSecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.tr.Snapshot().State {
	case transport.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case transport.StatePaused, transport.StateLoading:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	sel := p.coord.Selection()
	if !sel.HasItem() {
		return types.Metadata{}, nil
	}
	item := *sel.Item

	kind := catalog.CategoryGeneric
	album := ""
	if sel.Playlist != nil {
		kind = sel.Playlist.Kind()
		album = sel.Playlist.Title
	}
	d := catalog.Resolve(kind, item)

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(sel.PlaylistID(), item.ID)),
		Length:  types.Microseconds(p.tr.Snapshot().Duration * microsPerSecond),
		Title:   d.Primary,
		Album:   album,
	}
	if d.Secondary != "" {
		meta.Artist = []string{d.Secondary}
	}
	if sel.Index >= 0 {
		meta.TrackNumber = sel.Index + 1
	}
	cover := item.Cover
	if cover == "" && item.ImageReference.IsAsset() {
		cover = string(item.ImageReference)
	}
	if art := ArtURL(cover, p.opts); art != "" {
		meta.ArtUrl = art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.tr.Snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.tr.SetVolume(v * 100)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return int64(p.tr.Snapshot().Position * microsPerSecond), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// CanGoNext is true whenever a playlist is selected; traversal wraps.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.coord.SelectedPlaylist() != nil, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.coord.SelectedPlaylist() != nil, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.tr.Snapshot().ControlsEnabled, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.tr.Snapshot().ControlsEnabled, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	v := p.tr.Snapshot()
	return v.ControlsEnabled && v.Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.tr.Snapshot().Repeat == transport.RepeatAll {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Track and playlist loops both map to repeat-all.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		p.tr.SetRepeat(transport.RepeatOff)
	case types.LoopStatusTrack, types.LoopStatusPlaylist:
		p.tr.SetRepeat(transport.RepeatAll)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.tr.Snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.tr.SetShuffle(shuffle)
	return nil
}

func formatTrackID(playlistID, itemID string) string {
	h := fnv.New64a()
	h.Write([]byte(playlistID))
	h.Write([]byte{0})
	h.Write([]byte(itemID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
