package nowplaying

// Guard decides whether deferred work still concerns the tuned station.
// Every callback that outlives the moment it was scheduled consults it
// before touching the session or the view.
type Guard struct {
	session *Session
}

// IsCurrent reports whether target is the station currently tuned.
func (g Guard) IsCurrent(target StationID) bool {
	return target == g.session.currentStationID
}

// Armed reports whether t is still the live timer of its kind for the tuned
// station. A timer cancelled after its fire was already queued fails here.
func (g Guard) Armed(t *ArmedTimer) bool {
	if t == nil || !g.IsCurrent(t.StationID) {
		return false
	}
	switch t.Kind {
	case TimerSongEnd:
		return g.session.songEnd == t
	case TimerPreview:
		return g.session.preview == t
	}
	return false
}
