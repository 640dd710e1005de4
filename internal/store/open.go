package store

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Options selects and configures a Store implementation.
type Options struct {
	Driver     string // "file" or "sqlite"
	DataFile   string
	SQLitePath string
	Watch      bool // reload the file store on external edits
}

// Open returns the store selected by opts.
func Open(opts Options, log zerolog.Logger) (Store, error) {
	switch opts.Driver {
	case "", "file":
		fs, err := OpenFile(opts.DataFile, log)
		if err != nil {
			return nil, err
		}
		if opts.Watch {
			if err := fs.Watch(); err != nil {
				log.Warn().Err(err).Msg("catalog file watching disabled")
			}
		}
		return fs, nil
	case "sqlite":
		return OpenSQLite(opts.SQLitePath, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
