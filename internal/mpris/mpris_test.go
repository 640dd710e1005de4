//go:build linux

package mpris

import (
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/media"
	"github.com/jojongai/portfolio/internal/playback"
	"github.com/jojongai/portfolio/internal/transport"
)

func newTestAdapter(t *testing.T) (*playerAdapter, *media.Mock, playback.Service) {
	t.Helper()
	el := media.NewMock()
	coord := playback.New(nil, zerolog.Nop())
	t.Cleanup(func() { _ = coord.Close() })
	w := transport.New(el, coord, transport.Options{}, zerolog.Nop())
	return &playerAdapter{coord: coord, tr: w, opts: Options{AssetsBase: "http://localhost:8080"}}, el, coord
}

func selectTrack(coord playback.Service, tr Transport) {
	p := &catalog.Playlist{
		ID:    "p",
		Title: "Work Experience",
		Items: []catalog.Item{
			{ID: "a", Title: "Engineer", Artist: "Acme", MediaPath: "/audio/a.mp3", Cover: "/png/a.png"},
			{ID: "b", Title: "Lead", MediaPath: "/audio/b.mp3"},
		},
	}
	coord.Select(p.Items[0], p, 0)
	tr.(*transport.Widget).Sync(coord.Selection())
}

func TestPlayerAdapter_EmptyTransport(t *testing.T) {
	p, el, _ := newTestAdapter(t)

	require.NoError(t, p.PlayPause())

	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, status)
	canPlay, _ := p.CanPlay()
	assert.False(t, canPlay)
	meta, _ := p.Metadata()
	assert.Empty(t, meta.Title)
	assert.Empty(t, el.LoadCalls())
}

func TestPlayerAdapter_NextGoesThroughCoordinator(t *testing.T) {
	p, _, coord := newTestAdapter(t)
	selectTrack(coord, p.tr)

	require.NoError(t, p.Next())
	assert.Equal(t, "b", coord.Selection().ItemID())

	require.NoError(t, p.Previous())
	assert.Equal(t, "a", coord.Selection().ItemID())
}

func TestPlayerAdapter_PlayPausePropagatesIntent(t *testing.T) {
	p, el, coord := newTestAdapter(t)
	selectTrack(coord, p.tr)
	require.True(t, coord.IsPlayingIntent())

	require.NoError(t, p.PlayPause())
	assert.False(t, coord.IsPlayingIntent())
	assert.Equal(t, 1, el.PauseCalls())

	require.NoError(t, p.Play())
	assert.True(t, coord.IsPlayingIntent())
}

func TestPlayerAdapter_SetPositionSeeks(t *testing.T) {
	p, el, coord := newTestAdapter(t)
	selectTrack(coord, p.tr)
	p.tr.(*transport.Widget).HandleEvent(media.Event{
		Kind: media.EventLoadedMetadata, Token: el.Token(), Duration: 200,
	})

	require.NoError(t, p.SetPosition("", types.Microseconds(100*microsPerSecond)))

	assert.Equal(t, []float64{100}, el.SeekCalls())
	pos, _ := p.Position()
	assert.Equal(t, int64(100*microsPerSecond), pos)
}

func TestPlayerAdapter_LoopAndShuffle(t *testing.T) {
	p, _, _ := newTestAdapter(t)

	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))
	loop, _ := p.LoopStatus()
	assert.Equal(t, types.LoopStatusPlaylist, loop)

	require.NoError(t, p.SetLoopStatus(types.LoopStatusNone))
	loop, _ = p.LoopStatus()
	assert.Equal(t, types.LoopStatusNone, loop)

	require.NoError(t, p.SetShuffle(true))
	shuffle, _ := p.Shuffle()
	assert.True(t, shuffle)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, _, coord := newTestAdapter(t)
	selectTrack(coord, p.tr)

	meta, err := p.Metadata()
	require.NoError(t, err)

	assert.Equal(t, "Engineer", meta.Title)
	assert.Equal(t, []string{"Acme"}, meta.Artist)
	assert.Equal(t, "Work Experience", meta.Album)
	assert.Equal(t, 1, meta.TrackNumber)
	assert.Equal(t, "http://localhost:8080/png/a.png", meta.ArtUrl)
	assert.Equal(t, formatTrackID("p", "a"), string(meta.TrackId))
}
