package player

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// ErrNoSource is returned by Play before any stream was loaded.
var ErrNoSource = errors.New("no stream loaded")

const (
	defaultVolume   = 0.25
	resampleQuality = 4
	speakerBuffer   = time.Second / 5
	connectTimeout  = 10 * time.Second
)

var (
	speakerMu         sync.Mutex
	speakerReady      bool
	speakerSampleRate beep.SampleRate
)

// Player plays an MP3 radio stream over HTTP. Connecting happens in the
// background so Play never blocks on the network.
type Player struct {
	mu     sync.Mutex
	client *http.Client
	log    zerolog.Logger

	state  State
	source string
	// gen increments whenever the stream changes, invalidating pending
	// connects and end-of-stream callbacks.
	gen uint64
	// cancel aborts the request of the current generation.
	cancel context.CancelFunc

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	volumeLevel float64
	muted       bool
}

// New creates a stopped player. A nil client selects one that gives up on
// servers that do not answer within connectTimeout.
func New(client *http.Client, logger zerolog.Logger) *Player {
	if client == nil {
		client = defaultClient()
	}
	return &Player{
		client:      client,
		log:         logger,
		state:       Stopped,
		volumeLevel: defaultVolume,
	}
}

// Source returns the loaded stream URL.
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// Load replaces the stream. Playback stops until Play is called.
func (p *Player) Load(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse stream url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported stream scheme %q", u.Scheme)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeStreamLocked()
	p.source = rawURL
	p.state = Stopped
	return nil
}

// Play starts the loaded stream, or resumes it when paused.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == "" {
		return ErrNoSource
	}
	switch p.state {
	case Playing:
		return nil
	case Paused:
		if p.ctrl != nil {
			p.setPausedLocked(false)
			return nil
		}
	}

	p.closeStreamLocked()
	p.state = Playing
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.connect(ctx, p.gen, p.source)
	return nil
}

// Reload drops the current connection and reconnects to the same stream.
func (p *Player) Reload() error {
	src := p.Source()
	if src == "" {
		return ErrNoSource
	}
	if err := p.Load(src); err != nil {
		return err
	}
	return p.Play()
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeStreamLocked()
	p.state = Stopped
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing {
		return
	}
	if p.ctrl == nil {
		// Still connecting; abandon it and reconnect on resume.
		p.closeStreamLocked()
	} else {
		p.setPausedLocked(true)
	}
	p.state = Paused
}

func (p *Player) Resume() {
	if p.State() != Paused {
		return
	}
	if err := p.Play(); err != nil {
		p.log.Warn().Err(err).Msg("resume stream")
	}
}

// Toggle pauses a playing stream and starts a paused or stopped one.
func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused, Stopped:
		if err := p.Play(); err != nil && !errors.Is(err, ErrNoSource) {
			p.log.Warn().Err(err).Msg("toggle stream")
		}
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) connect(ctx context.Context, gen uint64, src string) {
	streamer, format, err := p.open(ctx, src)
	if err != nil {
		p.failed(gen, err)
		return
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		p.failed(gen, fmt.Errorf("init speaker: %w", err))
		return
	}

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	p.mu.Lock()
	if gen != p.gen || p.state != Playing {
		p.mu.Unlock()
		streamer.Close()
		p.log.Debug().Str("url", src).Msg("discarded superseded stream")
		return
	}
	p.streamer = streamer
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted || p.volumeLevel <= 0,
	}
	out := p.volume
	p.mu.Unlock()

	p.log.Info().Str("url", src).Int("sample_rate", int(format.SampleRate)).Msg("stream connected")
	speaker.Play(beep.Seq(out, beep.Callback(func() {
		go p.ended(gen)
	})))
}

func (p *Player) open(ctx context.Context, src string) (beep.StreamSeekCloser, beep.Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, beep.Format{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	streamer, format, err := mp3.Decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, beep.Format{}, fmt.Errorf("decode stream: %w", err)
	}
	return streamer, format, nil
}

func (p *Player) failed(gen uint64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.log.Warn().Err(err).Str("url", p.source).Msg("stream failed")
	p.state = Stopped
}

// ended runs when the server closes the stream.
func (p *Player) ended(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.log.Info().Str("url", p.source).Msg("stream ended")
	p.closeStreamLocked()
	p.state = Stopped
}

func (p *Player) setPausedLocked(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	if paused {
		p.state = Paused
	} else {
		p.state = Playing
	}
}

func (p *Player) closeStreamLocked() {
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.volume != nil {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
}

// defaultClient bounds connecting, not reading: a radio stream never ends.
func defaultClient() *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ResponseHeaderTimeout = connectTimeout
	return &http.Client{Transport: t}
}

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerReady {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return 0, err
	}
	speakerReady = true
	speakerSampleRate = rate
	return rate, nil
}
