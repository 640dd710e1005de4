package state

// Interface is the session store the client depends on.
type Interface interface {
	SaveSession(s Session)
	GetSession() (*Session, error)
	Close() error
}

var _ Interface = (*Manager)(nil)
