package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jojongai/portfolio/internal/db"
)

// Session is what the client restores on the next start.
type Session struct {
	Route       string  // route path, e.g. /playlist/<id>
	Volume      float64 // 0.0 to 1.0
	Repeat      bool
	Shuffle     bool
	DisplayMode int
	SavedAt     time.Time
}

func getSession(conn *sql.DB) (*Session, error) {
	row := conn.QueryRow(`
		SELECT route, volume, repeat, shuffle, display_mode, saved_at
		FROM session WHERE id = 1
	`)

	var s Session
	var savedAt int64
	err := row.Scan(&s.Route, &s.Volume, &s.Repeat, &s.Shuffle, &s.DisplayMode, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is not an error
	}
	if err != nil {
		return nil, err
	}
	s.SavedAt = time.Unix(savedAt, 0)
	return &s, nil
}

func saveSession(conn *sql.DB, s Session) error {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
	return db.WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO session (id, route, volume, repeat, shuffle, display_mode, saved_at)
			VALUES (1, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				route = excluded.route,
				volume = excluded.volume,
				repeat = excluded.repeat,
				shuffle = excluded.shuffle,
				display_mode = excluded.display_mode,
				saved_at = excluded.saved_at
		`, s.Route, s.Volume, s.Repeat, s.Shuffle, s.DisplayMode, s.SavedAt.Unix())
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT INTO route_history (route, visited_at) VALUES (?, ?)`,
			s.Route, s.SavedAt.Unix())
		if err != nil {
			return err
		}
		// Keep the history table bounded.
		_, err = tx.Exec(`
			DELETE FROM route_history WHERE id NOT IN (
				SELECT id FROM route_history ORDER BY id DESC LIMIT ?
			)
		`, historyLimit)
		return err
	})
}
