package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"

	eventBufferSize = 64
	tickInterval    = 250 * time.Millisecond
)

// Speaker is initialized once with the sample rate of the first decoded
// source. Later sources are resampled when their rate differs.
var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// BeepOptions configures where a BeepElement finds its sources.
type BeepOptions struct {
	// MediaRoot is a local directory that absolute media paths such as
	// "/audio/a.mp3" are resolved against.
	MediaRoot string
	// BaseURL is the server origin used when the file is not found under
	// MediaRoot, e.g. "http://localhost:8080".
	BaseURL string
	HTTP    *http.Client
}

// BeepElement plays decoded audio through the system speaker.
type BeepElement struct {
	opts BeepOptions
	log  zerolog.Logger

	mu       sync.Mutex
	gen      uint64
	token    Token
	ready    bool
	finished bool
	paused   bool
	wantPlay bool
	failed   error
	level    float64

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	events  chan Event
	endedCh chan uint64
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// NewBeep creates an element and starts its time update loop.
func NewBeep(opts BeepOptions, log zerolog.Logger) *BeepElement {
	if opts.HTTP == nil {
		opts.HTTP = &http.Client{Timeout: 30 * time.Second}
	}
	e := &BeepElement{
		opts:    opts,
		log:     log,
		paused:  true,
		level:   1,
		events:  make(chan Event, eventBufferSize),
		endedCh: make(chan uint64, 1),
		done:    make(chan struct{}),
	}
	e.wg.Add(1)
	go e.loop()
	return e
}

func (e *BeepElement) Load(src string) Token {
	e.mu.Lock()
	e.releaseLocked()
	e.gen++
	tok := Token{Src: src, Gen: e.gen}
	e.token = tok
	e.mu.Unlock()

	go e.open(tok)
	return tok
}

// open decodes tok's source and attaches it to the speaker, unless a newer
// Load replaced it in the meantime.
func (e *BeepElement) open(tok Token) {
	streamer, format, err := e.decode(tok.Src)

	e.mu.Lock()
	if tok != e.token || e.closed {
		e.mu.Unlock()
		if streamer != nil {
			streamer.Close()
		}
		return
	}
	if err != nil {
		e.failed = err
		e.mu.Unlock()
		e.emit(Event{Kind: EventError, Token: tok, Err: err})
		return
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		e.failed = err
		e.mu.Unlock()
		e.emit(Event{Kind: EventError, Token: tok, Err: err})
		return
	}

	e.streamer = streamer
	e.format = format

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	e.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: !e.wantPlay}
	e.volume = &effects.Volume{Streamer: e.ctrl, Base: 2, Volume: levelToVolume(e.level), Silent: e.level <= 0}
	e.ready = true
	e.attachLocked()

	duration := format.SampleRate.D(streamer.Len()).Seconds()
	startPlaying := e.wantPlay
	e.paused = !startPlaying
	e.mu.Unlock()

	e.emit(Event{Kind: EventLoadedMetadata, Token: tok, Duration: duration})
	if startPlaying {
		e.emit(Event{Kind: EventPlaying, Token: tok})
	}
}

// attachLocked hands the volume chain to the speaker. The finish callback
// runs on the speaker goroutine with the speaker lock held, so it only
// signals the loop.
func (e *BeepElement) attachLocked() {
	gen := e.gen
	e.finished = false
	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		select {
		case e.endedCh <- gen:
		default:
		}
	})))
}

func (e *BeepElement) Play() error {
	e.mu.Lock()
	if e.token.IsZero() {
		e.mu.Unlock()
		return ErrNoSource
	}
	if e.failed != nil {
		err := e.failed
		e.mu.Unlock()
		return err
	}
	e.wantPlay = true
	if !e.ready {
		// Starts in open once decoding finishes.
		e.mu.Unlock()
		return nil
	}
	if !e.paused {
		e.mu.Unlock()
		return nil
	}
	if e.finished {
		e.seekLocked(0)
	}
	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	e.paused = false
	tok := e.token
	e.mu.Unlock()

	e.emit(Event{Kind: EventPlaying, Token: tok})
	return nil
}

func (e *BeepElement) Pause() {
	e.mu.Lock()
	e.wantPlay = false
	if !e.ready || e.paused {
		e.mu.Unlock()
		return
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	e.paused = true
	tok := e.token
	e.mu.Unlock()

	e.emit(Event{Kind: EventPaused, Token: tok})
}

func (e *BeepElement) Seek(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return
	}
	e.seekLocked(seconds)
}

// seekLocked moves to an absolute position, clamped to the source length.
// A finished source is reattached to the speaker.
func (e *BeepElement) seekLocked(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	pos := e.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if length := e.streamer.Len(); pos >= length {
		pos = length - 1
	}
	if pos < 0 {
		pos = 0
	}
	speaker.Lock()
	err := e.streamer.Seek(pos)
	speaker.Unlock()
	if err != nil {
		e.log.Warn().Err(err).Str("src", e.token.Src).Msg("seek failed")
		return
	}
	if e.finished {
		e.attachLocked()
	}
}

func (e *BeepElement) SetVolume(level float64) {
	level = clampLevel(level)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = level
	if e.volume == nil {
		return
	}
	speaker.Lock()
	e.volume.Volume = levelToVolume(level)
	e.volume.Silent = level <= 0
	speaker.Unlock()
}

func (e *BeepElement) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *BeepElement) Unload() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseLocked()
	e.gen++
	e.token = Token{}
}

// releaseLocked detaches and closes the current source.
func (e *BeepElement) releaseLocked() {
	if e.ready {
		speaker.Clear()
	}
	if e.streamer != nil {
		e.streamer.Close()
	}
	e.streamer = nil
	e.ctrl = nil
	e.volume = nil
	e.ready = false
	e.finished = false
	e.paused = true
	e.wantPlay = false
	e.failed = nil
}

func (e *BeepElement) Events() <-chan Event {
	return e.events
}

func (e *BeepElement) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.releaseLocked()
	e.mu.Unlock()

	close(e.done)
	e.wg.Wait()
	return nil
}

// loop emits time updates while playing and turns speaker finish signals
// into Ended events.
func (e *BeepElement) loop() {
	defer e.wg.Done()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.mu.Lock()
			if !e.ready || e.paused || e.finished {
				e.mu.Unlock()
				continue
			}
			speaker.Lock()
			pos := e.format.SampleRate.D(e.streamer.Position()).Seconds()
			speaker.Unlock()
			tok := e.token
			e.mu.Unlock()
			e.emit(Event{Kind: EventTimeUpdate, Token: tok, Position: pos})
		case gen := <-e.endedCh:
			e.mu.Lock()
			if gen != e.gen || !e.ready {
				e.mu.Unlock()
				continue
			}
			e.finished = true
			e.paused = true
			e.wantPlay = false
			tok := e.token
			pos := e.format.SampleRate.D(e.streamer.Len()).Seconds()
			e.mu.Unlock()
			e.emit(Event{Kind: EventTimeUpdate, Token: tok, Position: pos})
			e.emit(Event{Kind: EventEnded, Token: tok})
		}
	}
}

// emit never blocks; a consumer that stops reading loses events.
func (e *BeepElement) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		e.log.Debug().Stringer("kind", ev.Kind).Msg("media event dropped")
	}
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// decode opens src and picks a decoder from its extension.
func (e *BeepElement) decode(src string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(path.Ext(strings.SplitN(src, "?", 2)[0]))
	if ext != extMP3 && ext != extFLAC && ext != extWAV {
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %q", ext)
	}

	rc, err := e.openSource(src)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(rc)
	case extFLAC:
		if err = skipID3v2(rc); err == nil {
			streamer, format, err = flac.Decode(rc)
		}
	case extWAV:
		streamer, format, err = wav.Decode(rc)
	}
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

type readSeekCloser interface {
	io.ReadSeeker
	io.Closer
}

type memSource struct{ *bytes.Reader }

func (memSource) Close() error { return nil }

// openSource resolves src against MediaRoot first, then fetches it from
// BaseURL. Absolute URLs are always fetched.
func (e *BeepElement) openSource(src string) (readSeekCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return e.fetch(src)
	}
	if e.opts.MediaRoot != "" {
		local := filepath.Join(e.opts.MediaRoot, filepath.FromSlash(strings.TrimPrefix(src, "/")))
		f, err := os.Open(local)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrNotExist) || e.opts.BaseURL == "" {
			return nil, err
		}
	}
	if e.opts.BaseURL != "" {
		return e.fetch(strings.TrimRight(e.opts.BaseURL, "/") + "/" + strings.TrimPrefix(src, "/"))
	}
	return os.Open(src)
}

func (e *BeepElement) fetch(url string) (readSeekCloser, error) {
	resp, err := e.opts.HTTP.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return memSource{bytes.NewReader(data)}, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the stream.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is stored as a syncsafe integer in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

// Verify BeepElement implements Element at compile time.
var _ Element = (*BeepElement)(nil)
