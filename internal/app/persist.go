package app

import (
	"github.com/jojongai/portfolio/internal/state"
	"github.com/jojongai/portfolio/internal/transport"
)

// session captures what is restored on the next start.
func (m Model) session() state.Session {
	v := m.widget.Snapshot()
	return state.Session{
		Route:       m.history.Current().Path(),
		Volume:      v.Volume,
		Repeat:      v.Repeat == transport.RepeatAll,
		Shuffle:     v.Shuffle,
		DisplayMode: int(m.displayMode),
	}
}

// persist saves the session when it differs from the last save.
func (m Model) persist() {
	if m.state == nil {
		return
	}
	s := m.session()
	if s == *m.saved {
		return
	}
	*m.saved = s
	m.state.SaveSession(s)
}
