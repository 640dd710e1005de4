package catalogclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
)

// Change is a catalog change notification. ID is empty when the whole
// catalog may have changed.
type Change struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// Watch subscribes to the server's change stream. The returned channel is
// closed when the connection ends or ctx is canceled.
func (c *Client) Watch(ctx context.Context) (<-chan Change, error) {
	u, err := eventsURL(c.BaseURL)
	if err != nil {
		return nil, err
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u, err)
	}

	ch := make(chan Change, 8)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	go func() {
		defer close(ch)
		defer close(done)
		defer conn.Close()
		for {
			var ev Change
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func eventsURL(base string) (string, error) {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://") + "/events", nil
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://") + "/events", nil
	default:
		return "", fmt.Errorf("unsupported base URL %q", base)
	}
}
