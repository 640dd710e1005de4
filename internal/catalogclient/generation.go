package catalogclient

import "sync/atomic"

// Generation stamps asynchronous requests so that a response arriving after
// a newer request was issued can be recognized and discarded.
type Generation struct {
	n atomic.Uint64
}

// Next starts a new request and returns its stamp.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current reports whether stamp belongs to the latest request.
func (g *Generation) Current(stamp uint64) bool {
	return g.n.Load() == stamp
}
