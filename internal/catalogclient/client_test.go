package catalogclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlaylists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/playlists", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a","title":"A","description":"d","imageReference":"💼","items":[]},
			{"id":"b","title":"B","description":"d","imageUrl":"🚀","songs":[{"id":"s","mp3Path":"/x.mp3"}]}]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL + "/api/").ListPlaylists(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	require.Len(t, got[1].Items, 1)
	assert.Equal(t, "/x.mp3", got[1].Items[0].MediaPath)
}

func TestGetPlaylist_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Playlist not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetPlaylist(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPlaylist_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetPlaylist(context.Background(), "x")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.Code)
	assert.Equal(t, "server returned 500: Internal server error", se.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestGetPlaylist_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlists/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":"a/b","title":"t","description":"d","items":[]}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL).GetPlaylist(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", p.ID)
}

func TestGetPlaylist_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListPlaylists(context.Background())
	assert.Error(t, err)
}

func TestGeneration(t *testing.T) {
	var g Generation

	first := g.Next()
	assert.True(t, g.Current(first))

	second := g.Next()
	assert.False(t, g.Current(first), "older stamp must be stale")
	assert.True(t, g.Current(second))
}

func TestEventsURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8080/api", "ws://localhost:8080/api/events"},
		{"https://example.test", "wss://example.test/events"},
	}
	for _, tt := range tests {
		got, err := eventsURL(tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := eventsURL("ftp://x")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(Change{Type: "playlists.changed", ID: "p1"})
		_ = conn.WriteJSON(Change{Type: "playlists.changed"})
		// keep the connection open until the client goes away
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := New(strings.TrimSuffix(srv.URL, "/") + "/api").Watch(ctx)
	require.NoError(t, err)

	for _, want := range []string{"p1", ""} {
		select {
		case ev := <-ch:
			assert.Equal(t, "playlists.changed", ev.Type)
			assert.Equal(t, want, ev.ID)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for change")
		}
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
