// Package catalogclient fetches playlists from the catalog API.
package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jojongai/portfolio/internal/catalog"
)

// ErrNotFound is returned when the server has no playlist with the id.
var ErrNotFound = errors.New("playlist not found")

// Client talks to the catalog API rooted at BaseURL (for example
// "http://localhost:8080/api").
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListPlaylists returns every playlist in display order.
func (c *Client) ListPlaylists(ctx context.Context) ([]catalog.Playlist, error) {
	var out []catalog.Playlist
	if err := c.get(ctx, "/playlists", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlaylist returns one playlist, or ErrNotFound.
func (c *Client) GetPlaylist(ctx context.Context, id string) (catalog.Playlist, error) {
	var out catalog.Playlist
	if err := c.get(ctx, "/playlists/"+url.PathEscape(id), &out); err != nil {
		return catalog.Playlist{}, err
	}
	return out, nil
}

// StatusError is returned for unexpected response codes.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		var body struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &body)
		return &StatusError{Code: resp.StatusCode, Message: body.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
