package nowplaying

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Scheduler arms the song-end and preview timers from a snapshot. Timer
// callbacks are posted back onto the engine loop and checked against the
// guard before they act.
type Scheduler struct {
	session *Session
	guard   Guard
	clock   clock.Clock
	loop    Loop
	log     zerolog.Logger

	leadTime   time.Duration
	minRefetch time.Duration

	onSongEnd func(id StationID)
	onPreview func(id StationID, next TrackInfo)
}

// Arm replaces any armed timers with the pair predicted by snap for station
// id. A silent snapshot arms nothing.
func (s *Scheduler) Arm(id StationID, snap *Snapshot) {
	s.Cancel()
	if snap == nil || snap.Current == nil {
		return
	}

	now := s.clock.Now()
	remaining := snap.Current.Remaining(now)

	// Metadata can lag the broadcast so remaining may already be negative.
	delay := max(remaining, 0)
	if delay < s.minRefetch {
		delay = s.minRefetch
	}
	s.session.songEnd = s.arm(TimerSongEnd, id, now, delay, func() {
		s.onSongEnd(id)
	})

	if snap.Next != nil && remaining > s.leadTime {
		next := *snap.Next
		s.session.preview = s.arm(TimerPreview, id, now, remaining-s.leadTime, func() {
			s.onPreview(id, next)
		})
	}

	s.log.Debug().
		Str("station", string(id)).
		Dur("remaining", remaining).
		Bool("preview", s.session.preview != nil).
		Msg("timers armed")
}

// Cancel stops both timers and forgets their handles.
func (s *Scheduler) Cancel() {
	s.session.songEnd.stop()
	s.session.preview.stop()
	s.session.songEnd = nil
	s.session.preview = nil
}

func (s *Scheduler) arm(kind TimerKind, id StationID, now time.Time, delay time.Duration, action func()) *ArmedTimer {
	t := &ArmedTimer{
		Kind:      kind,
		StationID: id,
		Deadline:  now.Add(delay),
	}
	t.timer = s.clock.AfterFunc(delay, func() {
		s.loop.Post(func() { s.fire(t, action) })
	})
	return t
}

func (s *Scheduler) fire(t *ArmedTimer, action func()) {
	if !s.guard.Armed(t) {
		s.log.Debug().
			Str("station", string(t.StationID)).
			Stringer("timer", t.Kind).
			Msg("dropped stale timer")
		return
	}

	switch t.Kind {
	case TimerSongEnd:
		s.session.songEnd = nil
	case TimerPreview:
		s.session.preview = nil
	}
	action()
}
