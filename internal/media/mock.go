package media

import "sync"

// Mock is a test double for Element. It records calls and lets tests inject
// events.
type Mock struct {
	mu sync.Mutex

	gen     uint64
	token   Token
	paused  bool
	playErr error

	loadCalls   []string
	playCalls   int
	pauseCalls  int
	seekCalls   []float64
	volumeCalls []float64
	unloadCalls int

	events chan Event
}

// NewMock creates a mock with an empty source.
func NewMock() *Mock {
	return &Mock{
		paused: true,
		events: make(chan Event, 64),
	}
}

func (m *Mock) Load(src string) Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.token = Token{Src: src, Gen: m.gen}
	m.paused = true
	m.loadCalls = append(m.loadCalls, src)
	return m.token
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.token.IsZero() {
		return ErrNoSource
	}
	m.paused = false
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	m.paused = true
}

func (m *Mock) Seek(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, seconds)
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeCalls = append(m.volumeCalls, level)
}

func (m *Mock) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Mock) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unloadCalls++
	m.token = Token{}
	m.paused = true
}

func (m *Mock) Events() <-chan Event {
	return m.events
}

func (m *Mock) Close() error {
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// Token returns the token of the current load.
func (m *Mock) Token() Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumeCalls...)
}

func (m *Mock) UnloadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unloadCalls
}

// Emit queues ev on the events channel.
func (m *Mock) Emit(ev Event) {
	m.events <- ev
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)
