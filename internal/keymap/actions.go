// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleList Action = "toggle_list"
	ActionToggleHelp Action = "toggle_help"
	ActionReloadList Action = "reload_list"

	// Station list
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - tune the highlighted station

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionReload     Action = "reload" // reconnect the stream
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionMute       Action = "mute"
)
