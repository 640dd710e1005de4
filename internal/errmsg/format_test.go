//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpStoreSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpStoreSave,
			err:      errors.New("disk full"),
			expected: "Failed to save playlists: disk full",
		},
		{
			name:     "catalog operation",
			op:       OpPlaylistFetch,
			err:      errors.New("connection refused"),
			expected: "Failed to fetch playlist: connection refused",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMediaLoad,
			context:  "/audio/a.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpMediaLoad,
			context:  "/audio/a.mp3",
			err:      errors.New("unsupported format"),
			expected: "Failed to load audio '/audio/a.mp3': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpMediaLoad,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to load audio: unsupported format",
		},
		{
			name:     "song fetch with id context",
			op:       OpSongFetch,
			context:  "techcorp-song-id",
			err:      ErrNotFound,
			expected: "Failed to fetch song details 'techcorp-song-id': not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestUnreachable(t *testing.T) {
	got := Unreachable(OpPlaylistsFetch, "http://localhost:8080/api")
	want := "Failed to fetch playlists. Make sure the backend server is running at http://localhost:8080/api."
	if got != want {
		t.Errorf("Unreachable() = %q, want %q", got, want)
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpPlaylistsFetch, OpPlaylistFetch, OpSongFetch, OpCatalogWatch,
		OpStoreLoad, OpStoreSave, OpStoreCreate, OpStoreUpdate, OpStoreDelete,
		OpPlaybackStart, OpPlaybackSeek, OpMediaLoad,
		OpConfigLoad, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
