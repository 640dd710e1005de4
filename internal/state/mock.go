package state

import "sync"

// Mock is an in-memory session store for tests.
type Mock struct {
	mu      sync.Mutex
	session *Session
	saves   int
	closed  bool
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveSession(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	m.saves++
}

func (m *Mock) GetSession() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	s := *m.session
	return &s, nil
}

// Saves returns how many times SaveSession was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
