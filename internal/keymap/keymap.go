package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "stations", "playback"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionToggleList, []string{"tab"}, "Show/hide stations", "global"},
	{ActionReloadList, []string{"ctrl+r"}, "Reload station list", "global"},
	{ActionToggleHelp, []string{"?"}, "Show help", "global"},

	// Station list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "stations"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "stations"},
	{ActionJumpStart, []string{"g", "home"}, "First station", "stations"},
	{ActionJumpEnd, []string{"G", "end"}, "Last station", "stations"},
	{ActionSelect, []string{"enter"}, "Tune station", "stations"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionReload, []string{"r"}, "Reconnect stream", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionMute, []string{"m"}, "Mute", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default returns a resolver over Bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}
