package route

import "sync"

// MaxHistory bounds the stack; the oldest entries are dropped first.
const MaxHistory = 100

// History is the client's navigation stack. It is safe for concurrent use.
type History struct {
	mu    sync.Mutex
	stack []Route
}

// NewHistory returns a history positioned at start.
func NewHistory(start Route) *History {
	return &History{stack: []Route{start}}
}

// Current returns the visible route.
func (h *History) Current() Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stack[len(h.stack)-1]
}

// Navigate pushes r unless it is already the visible route.
func (h *History) Navigate(r Route) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stack[len(h.stack)-1] == r {
		return
	}
	h.stack = append(h.stack, r)
	if over := len(h.stack) - MaxHistory; over > 0 {
		h.stack = append(h.stack[:0], h.stack[over:]...)
	}
}

// Replace swaps the visible route without growing the stack.
func (h *History) Replace(r Route) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack[len(h.stack)-1] = r
}

// Back pops the visible route. It reports false at the first entry.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) <= 1 {
		return false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}
