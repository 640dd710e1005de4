package media

import (
	"bytes"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-1, -10},
		{2, 0},
	}
	for _, tt := range tests {
		if got := levelToVolume(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-0.5, 0},
		{1.5, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clampLevel(tt.in); got != tt.want {
			t.Errorf("clampLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSkipID3v2(t *testing.T) {
	t.Run("no tag rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC0123456789"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})

	t.Run("tag is skipped", func(t *testing.T) {
		data := append([]byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5}, []byte("xxxxxfLaC")...)
		r := bytes.NewReader(data)
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != 15 {
			t.Errorf("position = %d, want 15", pos)
		}
	})

	t.Run("short stream rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("ID3"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})
}

func TestOpenSource_PrefersMediaRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "audio"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "audio", "a.mp3"), []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/audio/b.mp3" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	e := &BeepElement{opts: BeepOptions{MediaRoot: root, BaseURL: srv.URL + "/", HTTP: srv.Client()}}

	tests := []struct {
		src  string
		want string
	}{
		{"/audio/a.mp3", "local"},
		{"/audio/b.mp3", "remote"},
		{srv.URL + "/audio/b.mp3", "remote"},
	}
	for _, tt := range tests {
		rc, err := e.openSource(tt.src)
		if err != nil {
			t.Fatalf("openSource(%q): %v", tt.src, err)
		}
		got, _ := io.ReadAll(rc)
		rc.Close()
		if string(got) != tt.want {
			t.Errorf("openSource(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2", hits)
	}

	if _, err := e.openSource("/audio/missing.mp3"); err == nil {
		t.Error("expected error for a source missing everywhere")
	}
}

func TestBeepElement_PlayWithoutSource(t *testing.T) {
	e := NewBeep(BeepOptions{}, zerolog.Nop())
	defer e.Close()

	if err := e.Play(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Play() = %v, want ErrNoSource", err)
	}
	if !e.Paused() {
		t.Error("new element should be paused")
	}
}

func TestBeepElement_LoadFailureEmitsError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unsupported format", "/audio/readme.txt"},
		{"missing file", "/audio/nope.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewBeep(BeepOptions{MediaRoot: t.TempDir()}, zerolog.Nop())
			defer e.Close()

			tok := e.Load(tt.src)
			if tok.Src != tt.src || tok.IsZero() {
				t.Fatalf("Load() token = %+v", tok)
			}

			select {
			case ev := <-e.Events():
				if ev.Kind != EventError || ev.Token != tok || ev.Err == nil {
					t.Errorf("event = %+v, want Error for %+v", ev, tok)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for Error event")
			}

			if err := e.Play(); err == nil {
				t.Error("Play() after a failed load should return the load error")
			}
		})
	}
}

func TestBeepElement_TokensAdvance(t *testing.T) {
	e := NewBeep(BeepOptions{MediaRoot: t.TempDir()}, zerolog.Nop())
	defer e.Close()

	a := e.Load("/a.txt")
	b := e.Load("/a.txt")
	if a == b {
		t.Errorf("reloading the same src must produce a new token: %+v", a)
	}
	e.Unload()
	if err := e.Play(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Play() after Unload = %v, want ErrNoSource", err)
	}
}

func TestEventKind_String(t *testing.T) {
	if EventEnded.String() != "Ended" || EventKind(99).String() != "Unknown" {
		t.Error("unexpected EventKind names")
	}
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()

	if err := m.Play(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Play() without source = %v", err)
	}
	tok := m.Load("/a.mp3")
	if err := m.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if m.Paused() {
		t.Error("should not be paused after Play")
	}
	m.Seek(12)
	m.SetVolume(0.5)
	m.Pause()
	m.Emit(Event{Kind: EventEnded, Token: tok})

	if got := m.LoadCalls(); len(got) != 1 || got[0] != "/a.mp3" {
		t.Errorf("LoadCalls = %v", got)
	}
	if m.PlayCalls() != 2 || m.PauseCalls() != 1 {
		t.Errorf("PlayCalls = %d, PauseCalls = %d", m.PlayCalls(), m.PauseCalls())
	}
	if s := m.SeekCalls(); len(s) != 1 || s[0] != 12 {
		t.Errorf("SeekCalls = %v", s)
	}
	if v := m.VolumeCalls(); len(v) != 1 || v[0] != 0.5 {
		t.Errorf("VolumeCalls = %v", v)
	}
	if ev := <-m.Events(); ev.Kind != EventEnded || ev.Token != tok {
		t.Errorf("event = %+v", ev)
	}
}
