// Package icons selects the glyphs used by the terminal client.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Home       string
	Profile    string
	Hobbies    string
	Liked      string
	Playlist   string
	Audio      string
	Play       string
	Pause      string
	Shuffle    string
	RepeatAll  string
	Volume     string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Home:       "\uf015 ",     // nf-fa-home
		Profile:    "\uf007 ",     // nf-fa-user
		Hobbies:    "\uf004 ",     // nf-fa-heart
		Liked:      "\U000f08d0 ", // nf-md-heart
		Playlist:   "\U000f0cb8 ", // nf-md-playlist_music
		Audio:      "\uf001 ",     // nf-fa-music
		Play:       "\U000f040a",  // nf-md-play
		Pause:      "\U000f03e4",  // nf-md-pause
		Shuffle:    "\U000f049f",  // nf-md-shuffle
		RepeatAll:  "\U000f0456",  // nf-md-repeat
		Volume:     "\U000f057e",  // nf-md-volume_high
		VolumeMute: "\U000f075f",  // nf-md-volume_mute
	}

	unicodeIcons = Icons{
		Home:       "🏠 ",
		Profile:    "👤 ",
		Hobbies:    "🎯 ",
		Liked:      "❤ ",
		Playlist:   "📋 ",
		Audio:      "🎵 ",
		Play:       "▶",
		Pause:      "⏸",
		Shuffle:    "🔀",
		RepeatAll:  "🔁",
		Volume:     "🔊",
		VolumeMute: "🔇",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		Volume:     "vol",
		VolumeMute: "mute",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Nav prefixes a sidebar entry with its icon.
func Nav(icon, label string) string {
	return icon + label
}

func Home() string       { return current.Home }
func Profile() string    { return current.Profile }
func Hobbies() string    { return current.Hobbies }
func Liked() string      { return current.Liked }
func Play() string       { return current.Play }
func Pause() string      { return current.Pause }
func Shuffle() string    { return current.Shuffle }
func RepeatAll() string  { return current.RepeatAll }
func Volume() string     { return current.Volume }
func VolumeMute() string { return current.VolumeMute }

// FormatPlaylist formats a playlist title with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// FormatAudio marks a playable item.
func FormatAudio(name string) string {
	return current.Audio + name
}
