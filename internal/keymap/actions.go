// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionBack    Action = "back"
	ActionRefresh Action = "refresh"

	// View switching
	ActionViewHome    Action = "view_home"
	ActionViewProfile Action = "view_profile"
	ActionViewHobbies Action = "view_hobbies"
	ActionViewLiked   Action = "view_liked"

	// Playback actions
	ActionPlayPause           Action = "play_pause"
	ActionNextTrack           Action = "next_track"
	ActionPrevTrack           Action = "prev_track"
	ActionSeekForward         Action = "seek_forward"
	ActionSeekBack            Action = "seek_back"
	ActionVolumeUp            Action = "volume_up"
	ActionVolumeDown          Action = "volume_down"
	ActionToggleMute          Action = "toggle_mute"
	ActionCycleRepeat         Action = "cycle_repeat"
	ActionToggleShuffle       Action = "toggle_shuffle"
	ActionTogglePlayerDisplay Action = "toggle_player_display"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionOpen         Action = "open"         // enter - open playlist, select and play item
	ActionShowDetail   Action = "show_detail"  // i - song page without starting playback
	ActionRelationship Action = "relationship" // r - relationship sub-view
)
