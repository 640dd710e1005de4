package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/db"
)

// SQLiteStore keeps the catalog in a SQLite database, one row per playlist
// with the items stored as a JSON column.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger

	mu       sync.RWMutex
	onChange ChangeFunc
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path. The special
// path ":memory:" opens a private in-memory database.
func OpenSQLite(path string, log zerolog.Logger) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection serializes writers and keeps :memory: databases
	// from being opened once per pool connection.
	conn.SetMaxOpenConns(1)

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLiteStore{db: conn, log: log.With().Str("component", "store").Logger()}, nil
}

func initSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS playlists (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT,
			image_ref TEXT NOT NULL,
			items TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_playlists_position ON playlists(position);
	`)
	return err
}

const selectPlaylist = `SELECT id, title, description, category, image_ref, items FROM playlists`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row rowScanner) (catalog.Playlist, error) {
	var (
		p        catalog.Playlist
		category sql.NullString
		imageRef string
		items    string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &category, &imageRef, &items); err != nil {
		return catalog.Playlist{}, err
	}
	p.Category = catalog.Category(db.NullStringValue(category))
	p.ImageReference = catalog.ImageRef(imageRef)
	if err := json.Unmarshal([]byte(items), &p.Items); err != nil {
		return catalog.Playlist{}, fmt.Errorf("decode items of %s: %w", p.ID, err)
	}
	if p.Items == nil {
		p.Items = []catalog.Item{}
	}
	return p, nil
}

func encodeItems(items []catalog.Item) (string, error) {
	if items == nil {
		items = []catalog.Item{}
	}
	b, err := json.Marshal(items)
	return string(b), err
}

func (s *SQLiteStore) List(ctx context.Context) ([]catalog.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, selectPlaylist+` ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []catalog.Playlist{}
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (catalog.Playlist, error) {
	p, err := scanPlaylist(s.db.QueryRowContext(ctx, selectPlaylist+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Playlist{}, ErrNotFound
	}
	return p, err
}

func (s *SQLiteStore) Create(ctx context.Context, d Draft) (catalog.Playlist, error) {
	p, err := newPlaylist(d)
	if err != nil {
		return catalog.Playlist{}, err
	}
	items, err := encodeItems(p.Items)
	if err != nil {
		return catalog.Playlist{}, err
	}

	err = db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO playlists (id, position, title, description, category, image_ref, items)
			VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM playlists), ?, ?, ?, ?, ?)
		`, p.ID, p.Title, p.Description, db.NullString(string(p.Category)), string(p.ImageReference), items)
		return err
	})
	if err != nil {
		return catalog.Playlist{}, err
	}

	s.log.Info().Str("id", p.ID).Str("title", p.Title).Msg("playlist created")
	s.notify(p.ID)
	return p, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id string, d Draft) (catalog.Playlist, error) {
	var updated catalog.Playlist
	err := db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		p, err := scanPlaylist(tx.QueryRowContext(ctx, selectPlaylist+` WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		updated = merge(p, d)
		items, err := encodeItems(updated.Items)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE playlists SET title = ?, description = ?, category = ?, image_ref = ?, items = ?
			WHERE id = ?
		`, updated.Title, updated.Description, db.NullString(string(updated.Category)),
			string(updated.ImageReference), items, id)
		return err
	})
	if err != nil {
		return catalog.Playlist{}, err
	}

	s.log.Info().Str("id", id).Msg("playlist updated")
	s.notify(id)
	return updated, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	s.log.Info().Str("id", id).Msg("playlist deleted")
	s.notify(id)
	return nil
}

func (s *SQLiteStore) Replace(ctx context.Context, playlists []catalog.Playlist) error {
	err := db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM playlists`); err != nil {
			return err
		}
		for i, p := range playlists {
			items, err := encodeItems(p.Items)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO playlists (id, position, title, description, category, image_ref, items)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, p.ID, i, p.Title, p.Description, db.NullString(string(p.Category)), string(p.ImageReference), items)
			if err != nil {
				return fmt.Errorf("insert %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Int("playlists", len(playlists)).Msg("catalog replaced")
	s.notify("")
	return nil
}

// OnChange registers fn to be called after every write.
func (s *SQLiteStore) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *SQLiteStore) notify(id string) {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn(id)
	}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
