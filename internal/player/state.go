// internal/player/state.go
package player

// State represents the stream state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲   ▲                        │ │
//	     │   │ stop, load,      pause │ │ stop, load,
//	     │   │ stream end             ▼ │ stream end
//	     │   │                   ┌──────────┐
//	     │   └───────────────────│  Paused  │
//	     │                       └──────────┘
//	     │                            │ resume
//	     │ connect failure            ▼
//	     └──────────────────────── Playing
//
// Playing covers the connecting phase: Play returns immediately and the
// stream falls back to Stopped if the connection or decoder fails.
//
// Toggle() pauses a playing stream and plays a paused or stopped one when a
// source is loaded.

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
