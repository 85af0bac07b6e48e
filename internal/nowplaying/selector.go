package nowplaying

// Selector is the only writer of the tuned station.
type Selector struct {
	session   *Session
	scheduler *Scheduler
	presenter *Presenter
	store     StationStore
}

// Select tunes id. It reports false, changing nothing, when id is already
// tuned. Otherwise it cancels the previous station's timers, hides its
// preview and remembers id; the caller then fetches the new station.
func (s *Selector) Select(id StationID) bool {
	if s.session.tuned && id == s.session.currentStationID {
		return false
	}

	s.scheduler.Cancel()
	s.session.currentStationID = id
	s.session.tuned = true
	s.presenter.ClearPreview()

	if s.store != nil {
		s.store.SaveLastStation(id)
	}
	return true
}
