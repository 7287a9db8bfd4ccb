// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionCycleLoop   Action = "cycle_loop"
	ActionShuffle     Action = "shuffle"
	ActionClearQueue  Action = "clear_queue"

	// Shared list navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionTop      Action = "top"
	ActionBottom   Action = "bottom"
	ActionSelect   Action = "select"

	// Album browser
	ActionAppendAlbum Action = "append_album"
	ActionInsertAlbum Action = "insert_album"
	ActionPlayAlbum   Action = "play_album"
	ActionOpenAlbum   Action = "open_album"
	ActionFilter      Action = "filter"

	// Album tracks
	ActionPlayFrom    Action = "play_from"
	ActionPlayTrack   Action = "play_track"
	ActionAppendTrack Action = "append_track"
	ActionInsertTrack Action = "insert_track"
	ActionBack        Action = "back"

	// Collection picker
	ActionClose Action = "close"

	// Queue panel
	ActionJumpTo         Action = "jump_to"
	ActionDelete         Action = "delete"
	ActionToggleSelect   Action = "toggle_select"
	ActionClearSelection Action = "clear_selection"
	ActionMoveItemsDown  Action = "move_items_down"
	ActionMoveItemsUp    Action = "move_items_up"
)
