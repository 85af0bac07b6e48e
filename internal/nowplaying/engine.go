package nowplaying

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// ErrClosed is returned by Inspect once the engine's loop stopped.
var ErrClosed = errors.New("engine closed")

// Loop runs posted callbacks one at a time. Post reports false once the loop
// no longer accepts work.
type Loop interface {
	Post(fn func()) bool
}

// Config tunes the engine's timing.
type Config struct {
	// LeadTime is how long before the predicted track end the upcoming
	// track is announced.
	LeadTime time.Duration
	// CrossFade is the artwork fade-out duration before the new artwork
	// is shown.
	CrossFade time.Duration
	// MinRefetchInterval floors the song-end delay so inconsistent
	// server timestamps cannot cause back-to-back refetches. Zero
	// disables the floor.
	MinRefetchInterval time.Duration
	// FetchTimeout bounds each request.
	FetchTimeout time.Duration
	// FallbackArtwork is shown when a track has no artwork.
	FallbackArtwork string
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		LeadTime:           20 * time.Second,
		CrossFade:          500 * time.Millisecond,
		MinRefetchInterval: time.Second,
		FetchTimeout:       10 * time.Second,
	}
}

// Options holds an engine's collaborators. Fetcher is required; a nil View
// discards rendering and a nil Transport disables stream alignment.
type Options struct {
	Fetcher       Fetcher
	Streams       StreamResolver
	View          View
	MediaSessions []MediaSession
	Transport     Transport
	Store         StationStore
	Clock         clock.Clock
	Logger        zerolog.Logger
	Config        Config
}

// Engine synchronizes one tuned station with the server.
type Engine struct {
	loop    Loop
	clock   clock.Clock
	log     zerolog.Logger
	cfg     Config
	fetcher Fetcher
	streams StreamResolver

	session   *Session
	guard     Guard
	scheduler *Scheduler
	selector  *Selector
	presenter *Presenter

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds an engine whose callbacks all run on loop.
func New(loop Loop, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.View == nil {
		opts.View = nopView{}
	}
	if opts.Config.FetchTimeout <= 0 {
		opts.Config.FetchTimeout = DefaultConfig().FetchTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := &Session{}
	guard := Guard{session: session}

	e := &Engine{
		loop:    loop,
		clock:   opts.Clock,
		log:     opts.Logger,
		cfg:     opts.Config,
		fetcher: opts.Fetcher,
		streams: opts.Streams,
		session: session,
		guard:   guard,
		ctx:     ctx,
		cancel:  cancel,
	}

	e.presenter = &Presenter{
		view:            opts.View,
		media:           opts.MediaSessions,
		transport:       opts.Transport,
		guard:           guard,
		clock:           opts.Clock,
		loop:            loop,
		log:             opts.Logger,
		crossFade:       opts.Config.CrossFade,
		fallbackArtwork: opts.Config.FallbackArtwork,
	}
	e.scheduler = &Scheduler{
		session:    session,
		guard:      guard,
		clock:      opts.Clock,
		loop:       loop,
		log:        opts.Logger,
		leadTime:   opts.Config.LeadTime,
		minRefetch: opts.Config.MinRefetchInterval,
		onSongEnd:  e.songEnded,
		onPreview: func(_ StationID, next TrackInfo) {
			e.presenter.ShowPreview(next)
		},
	}
	e.selector = &Selector{
		session:   session,
		scheduler: e.scheduler,
		presenter: e.presenter,
		store:     opts.Store,
	}
	return e
}

// Select tunes station id. Selecting the tuned station is a no-op.
func (e *Engine) Select(id StationID) {
	e.loop.Post(func() { e.selectStation(id) })
}

// Inspect returns a copy of the session as seen from the loop.
func (e *Engine) Inspect(ctx context.Context) (SessionView, error) {
	ch := make(chan SessionView, 1)
	if !e.loop.Post(func() { ch <- e.session.view() }) {
		return SessionView{}, ErrClosed
	}
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		return SessionView{}, ctx.Err()
	}
}

// Close cancels armed timers and in-flight requests.
func (e *Engine) Close() {
	e.cancel()
	e.loop.Post(func() {
		e.scheduler.Cancel()
		e.presenter.cancelFade()
		e.session.phase = PhaseIdle
	})
}

func (e *Engine) selectStation(id StationID) {
	if !e.selector.Select(id) {
		e.log.Debug().Str("station", string(id)).Msg("station already tuned")
		return
	}
	e.log.Info().Str("station", string(id)).Msg("tuning station")
	e.prime(id)
	e.refresh(id)
}

func (e *Engine) songEnded(id StationID) {
	e.scheduler.Cancel()
	e.presenter.ClearPreview()
	e.refresh(id)
}

// refresh requests a snapshot for id and resolves it back on the loop.
func (e *Engine) refresh(id StationID) {
	e.session.phase = PhaseFetching
	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.cfg.FetchTimeout)
		defer cancel()
		snap, err := e.fetcher.FetchNowPlaying(ctx, id)
		e.loop.Post(func() { e.resolve(id, snap, err) })
	}()
}

func (e *Engine) resolve(id StationID, snap *Snapshot, err error) {
	if !e.guard.IsCurrent(id) {
		e.log.Debug().Str("station", string(id)).Msg("dropped stale snapshot")
		return
	}
	if err != nil {
		e.log.Warn().Err(err).Str("station", string(id)).Msg("fetch now playing")
		e.session.settle()
		return
	}

	e.session.lastSnapshot = snap
	e.scheduler.Arm(id, snap)
	e.presenter.Apply(id, snap)
	e.session.settle()
}

// prime resolves the stream endpoint alongside the first snapshot so audio
// starts without waiting for metadata.
func (e *Engine) prime(id StationID) {
	if e.streams == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(e.ctx, e.cfg.FetchTimeout)
		defer cancel()
		url, err := e.streams.StreamURL(ctx, id)
		e.loop.Post(func() {
			if !e.guard.IsCurrent(id) {
				e.log.Debug().Str("station", string(id)).Msg("dropped stale stream endpoint")
				return
			}
			if err != nil {
				e.log.Warn().Err(err).Str("station", string(id)).Msg("resolve stream")
				return
			}
			e.presenter.Align(url)
		})
	}()
}
