// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpPlaylistsFetch Op = "fetch playlists"
	OpPlaylistFetch  Op = "fetch playlist"
	OpSongFetch      Op = "fetch song details"
	OpCatalogWatch   Op = "watch catalog changes"

	// Store operations
	OpStoreLoad   Op = "load playlists"
	OpStoreSave   Op = "save playlists"
	OpStoreCreate Op = "create playlist"
	OpStoreUpdate Op = "update playlist"
	OpStoreDelete Op = "delete playlist"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpMediaLoad     Op = "load audio"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// ErrNotFound is the user-facing cause shown for missing records.
var ErrNotFound = errors.New("not found")

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Unreachable formats the inline message shown when the catalog server
// cannot be reached at all.
func Unreachable(op Op, apiURL string) string {
	return fmt.Sprintf("Failed to %s. Make sure the backend server is running at %s.", op, apiURL)
}
