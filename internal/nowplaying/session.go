package nowplaying

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// Phase is the engine's position in its select/fetch/arm cycle.
type Phase int

const (
	// PhaseIdle means no request is outstanding and no timer is armed.
	PhaseIdle Phase = iota
	// PhaseFetching means a snapshot request for the current station is in flight.
	PhaseFetching
	// PhaseArmed means the song-end timer (and maybe the preview timer) is pending.
	PhaseArmed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseArmed:
		return "armed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// TimerKind distinguishes the two scheduled callbacks.
type TimerKind int

const (
	TimerSongEnd TimerKind = iota
	TimerPreview
)

func (k TimerKind) String() string {
	if k == TimerPreview {
		return "preview"
	}
	return "song-end"
}

// ArmedTimer is a pending scheduler callback bound to the station it was
// armed for.
type ArmedTimer struct {
	Kind      TimerKind
	StationID StationID
	Deadline  time.Time

	timer *clock.Timer
}

func (t *ArmedTimer) stop() {
	if t != nil && t.timer != nil {
		t.timer.Stop()
	}
}

// Session is the mutable state of one engine. It is only touched from the
// engine's loop.
type Session struct {
	currentStationID StationID
	tuned            bool
	songEnd          *ArmedTimer
	preview          *ArmedTimer
	lastSnapshot     *Snapshot
	phase            Phase
}

// TimerView is the inspectable part of an ArmedTimer.
type TimerView struct {
	Kind      TimerKind
	StationID StationID
	Deadline  time.Time
}

// SessionView is a read-only copy of a Session.
type SessionView struct {
	CurrentStationID StationID
	Phase            Phase
	SongEnd          *TimerView
	Preview          *TimerView
	LastSnapshot     *Snapshot
}

func (s *Session) view() SessionView {
	return SessionView{
		CurrentStationID: s.currentStationID,
		Phase:            s.phase,
		SongEnd:          timerView(s.songEnd),
		Preview:          timerView(s.preview),
		LastSnapshot:     s.lastSnapshot,
	}
}

func timerView(t *ArmedTimer) *TimerView {
	if t == nil {
		return nil
	}
	return &TimerView{Kind: t.Kind, StationID: t.StationID, Deadline: t.Deadline}
}

// settle moves the session out of PhaseFetching once a request resolves.
func (s *Session) settle() {
	if s.songEnd != nil || s.preview != nil {
		s.phase = PhaseArmed
		return
	}
	s.phase = PhaseIdle
}
