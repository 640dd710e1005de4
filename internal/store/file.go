package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
)

// FileStore keeps the catalog in memory and writes the whole document back
// to a JSON file after every change.
type FileStore struct {
	path string
	log  zerolog.Logger

	mu        sync.RWMutex
	playlists []catalog.Playlist
	lastData  []byte // bytes last read from or written to disk

	onChange ChangeFunc
	watch    *watcher
}

var _ Store = (*FileStore)(nil)

// OpenFile loads the catalog document at path. A missing file yields an
// empty catalog; it is created on the first write.
func OpenFile(path string, log zerolog.Logger) (*FileStore, error) {
	s := &FileStore{path: path, log: log.With().Str("component", "store").Logger()}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn().Str("path", s.path).Msg("catalog file not found, starting empty")
		s.playlists = []catalog.Playlist{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	playlists, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	s.playlists = playlists
	s.lastData = data
	s.log.Info().Str("path", s.path).Int("playlists", len(playlists)).Msg("catalog loaded")
	return nil
}

func decodeDocument(data []byte) ([]catalog.Playlist, error) {
	var playlists []catalog.Playlist
	if len(bytes.TrimSpace(data)) == 0 {
		return []catalog.Playlist{}, nil
	}
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []catalog.Playlist{}
	}
	for i := range playlists {
		if playlists[i].Items == nil {
			playlists[i].Items = []catalog.Item{}
		}
	}
	return playlists, nil
}

// EncodeDocument renders playlists the way the file store writes them.
func EncodeDocument(playlists []catalog.Playlist) ([]byte, error) {
	data, err := json.MarshalIndent(playlists, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// persist writes the document via a temp file and rename. Caller holds mu.
func (s *FileStore) persist() error {
	data, err := EncodeDocument(s.playlists)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := WriteFileAtomic(s.path, data); err != nil {
		return err
	}
	s.lastData = data
	return nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

func (s *FileStore) List(_ context.Context) ([]catalog.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.playlists), nil
}

func (s *FileStore) Get(_ context.Context, id string) (catalog.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.playlists, id)
	if i < 0 {
		return catalog.Playlist{}, ErrNotFound
	}
	return s.playlists[i].Clone(), nil
}

func (s *FileStore) Create(_ context.Context, d Draft) (catalog.Playlist, error) {
	p, err := newPlaylist(d)
	if err != nil {
		return catalog.Playlist{}, err
	}

	s.mu.Lock()
	s.playlists = append(s.playlists, p)
	if err := s.persist(); err != nil {
		s.playlists = s.playlists[:len(s.playlists)-1]
		s.mu.Unlock()
		return catalog.Playlist{}, err
	}
	s.mu.Unlock()

	s.log.Info().Str("id", p.ID).Str("title", p.Title).Msg("playlist created")
	s.notify(p.ID)
	return p.Clone(), nil
}

func (s *FileStore) Update(_ context.Context, id string, d Draft) (catalog.Playlist, error) {
	s.mu.Lock()
	i := indexOf(s.playlists, id)
	if i < 0 {
		s.mu.Unlock()
		return catalog.Playlist{}, ErrNotFound
	}
	prev := s.playlists[i]
	s.playlists[i] = merge(prev, d)
	if err := s.persist(); err != nil {
		s.playlists[i] = prev
		s.mu.Unlock()
		return catalog.Playlist{}, err
	}
	updated := s.playlists[i].Clone()
	s.mu.Unlock()

	s.log.Info().Str("id", id).Msg("playlist updated")
	s.notify(id)
	return updated, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	i := indexOf(s.playlists, id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.playlists
	next := make([]catalog.Playlist, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.playlists = next
	if err := s.persist(); err != nil {
		s.playlists = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.log.Info().Str("id", id).Msg("playlist deleted")
	s.notify(id)
	return nil
}

func (s *FileStore) Replace(_ context.Context, playlists []catalog.Playlist) error {
	s.mu.Lock()
	prev := s.playlists
	s.playlists = cloneAll(playlists)
	if err := s.persist(); err != nil {
		s.playlists = prev
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.log.Info().Int("playlists", len(playlists)).Msg("catalog replaced")
	s.notify("")
	return nil
}

// OnChange registers fn to be called after every write and every external
// reload of the file.
func (s *FileStore) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *FileStore) notify(id string) {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn(id)
	}
}

// reload re-reads the file after an external change. It reports whether the
// content differed from what the store last saw.
func (s *FileStore) reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(data, s.lastData) {
		return false, nil
	}
	playlists, err := decodeDocument(data)
	if err != nil {
		return false, err
	}
	s.playlists = playlists
	s.lastData = data
	return true, nil
}

// Close stops the file watcher, if any.
func (s *FileStore) Close() error {
	s.mu.Lock()
	w := s.watch
	s.watch = nil
	s.mu.Unlock()
	if w != nil {
		return w.close()
	}
	return nil
}
