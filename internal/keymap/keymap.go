package keymap

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigator", "detail"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionRefresh, []string{"ctrl+r"}, "Reload from server", "global"},
	{ActionViewHome, []string{"f1"}, "Home", "global"},
	{ActionViewProfile, []string{"f2"}, "Profile", "global"},
	{ActionViewHobbies, []string{"f3"}, "Hobbies & interests", "global"},
	{ActionViewLiked, []string{"f4"}, "Liked songs", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"shift+right", "L"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"shift+left", "H"}, "Seek -5s", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", "playback"},
	{ActionCycleRepeat, []string{"R"}, "Toggle repeat", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionTogglePlayerDisplay, []string{"v"}, "Toggle player display", "playback"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", "navigator"},
	{ActionMoveRight, []string{"l", "right"}, "Move right", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionOpen, []string{"enter"}, "Open / play", "navigator"},

	// Song page
	{ActionShowDetail, []string{"i"}, "Song details", "detail"},
	{ActionRelationship, []string{"r"}, "How this connects", "detail"},
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"global", "playback", "navigator", "detail"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
