package nowplaying

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/banabyte/airwaves/internal/eventloop"
	"github.com/banabyte/airwaves/internal/player"
)

var t0 = time.Unix(1_700_000_000, 0)

type fetchResult struct {
	snap *Snapshot
	err  error
}

// fakeFetcher answers immediately from snaps/errs unless a gate is held for
// the station, in which case the call blocks until the test releases it.
type fakeFetcher struct {
	mu    sync.Mutex
	calls []StationID
	snaps map[StationID]*Snapshot
	errs  map[StationID]error
	gates map[StationID]chan fetchResult
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		snaps: make(map[StationID]*Snapshot),
		errs:  make(map[StationID]error),
		gates: make(map[StationID]chan fetchResult),
	}
}

func (f *fakeFetcher) FetchNowPlaying(ctx context.Context, id StationID) (*Snapshot, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	snap, err := f.snaps[id], f.errs[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case r := <-gate:
			return r.snap, r.err
		case <-ctx.Done():
			return nil, TransportError(id, "fetch now playing", ctx.Err())
		}
	}
	return snap, err
}

func (f *fakeFetcher) set(id StationID, snap *Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps[id] = snap
	delete(f.errs, id)
}

func (f *fakeFetcher) fail(id StationID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[id] = err
}

// hold makes the next fetches of id block until a result is sent.
func (f *fakeFetcher) hold(id StationID) chan<- fetchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan fetchResult)
	f.gates[id] = gate
	return gate
}

func (f *fakeFetcher) count(id StationID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == id {
			n++
		}
	}
	return n
}

type streamResult struct {
	url string
	err error
}

// fakeStreams resolves from urls, or blocks on a held gate like fakeFetcher.
type fakeStreams struct {
	mu    sync.Mutex
	urls  map[StationID]string
	gates map[StationID]chan streamResult
}

func newFakeStreams() *fakeStreams {
	return &fakeStreams{
		urls:  make(map[StationID]string),
		gates: make(map[StationID]chan streamResult),
	}
}

func (s *fakeStreams) StreamURL(ctx context.Context, id StationID) (string, error) {
	s.mu.Lock()
	gate := s.gates[id]
	u, ok := s.urls[id]
	s.mu.Unlock()

	if gate != nil {
		select {
		case r := <-gate:
			return r.url, r.err
		case <-ctx.Done():
			return "", TransportError(id, "resolve stream", ctx.Err())
		}
	}
	if ok {
		return u, nil
	}
	return "", ParseError(id, "resolve stream", errMissingListenURL)
}

func (s *fakeStreams) set(id StationID, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls[id] = url
}

// hold makes the next resolutions of id block until a result is sent.
func (s *fakeStreams) hold(id StationID) chan<- streamResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan streamResult)
	s.gates[id] = gate
	return gate
}

var errMissingListenURL = errors.New("missing listen_url")

// recordingView keeps the last rendered state and the full event log.
type recordingView struct {
	mu      sync.Mutex
	events  []string
	station Station
	track   *TrackInfo
	preview *TrackInfo
	artwork string
	faded   bool
}

func (v *recordingView) log(e string) {
	v.events = append(v.events, e)
}

func (v *recordingView) ShowStation(st Station) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.station = st
	v.log("station:" + st.Name)
}

func (v *recordingView) ShowTrack(t TrackInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.track = &t
	v.log("track:" + t.Label())
}

func (v *recordingView) ShowNoTrack() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.track = nil
	v.log("no-track")
}

func (v *recordingView) FadeOutArtwork() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.faded = true
	v.log("fade")
}

func (v *recordingView) ShowArtwork(url, _ string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.faded = false
	v.artwork = url
	v.log("artwork:" + url)
}

func (v *recordingView) ShowPreview(t TrackInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.preview = &t
	v.log("preview:" + t.Label())
}

func (v *recordingView) HidePreview() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.preview = nil
	v.log("hide-preview")
}

func (v *recordingView) stationName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.station.Name
}

func (v *recordingView) currentTrack() *TrackInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.track
}

func (v *recordingView) currentPreview() *TrackInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preview
}

func (v *recordingView) currentArtwork() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.artwork, v.faded
}

func (v *recordingView) has(event string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.events {
		if e == event {
			return true
		}
	}
	return false
}

type recordingMedia struct {
	mu   sync.Mutex
	last *MediaDescriptor
	sets int
}

func (m *recordingMedia) SetMetadata(d *MediaDescriptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = d
	m.sets++
}

func (m *recordingMedia) descriptor() (*MediaDescriptor, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.sets
}

type recordingStore struct {
	mu  sync.Mutex
	ids []StationID
}

func (s *recordingStore) SaveLastStation(id StationID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
}

func (s *recordingStore) saved() []StationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StationID(nil), s.ids...)
}

// harness is a running engine on a real loop with a mock clock.
type harness struct {
	engine    *Engine
	clock     *clock.Mock
	fetcher   *fakeFetcher
	streams   *fakeStreams
	view      *recordingView
	media     *recordingMedia
	transport *player.Mock
	store     *recordingStore
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()

	clk := clock.NewMock()
	clk.Set(t0)

	h := &harness{
		clock:     clk,
		fetcher:   newFakeFetcher(),
		streams:   newFakeStreams(),
		view:      &recordingView{},
		media:     &recordingMedia{},
		transport: player.NewMock(),
		store:     &recordingStore{},
	}

	loop := eventloop.New(0)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = loop.Run(ctx) }()
	t.Cleanup(cancel)

	h.engine = New(loop, Options{
		Fetcher:       h.fetcher,
		Streams:       h.streams,
		View:          h.view,
		MediaSessions: []MediaSession{h.media},
		Transport:     h.transport,
		Store:         h.store,
		Clock:         clk,
		Logger:        zerolog.Nop(),
		Config:        cfg,
	})
	t.Cleanup(h.engine.Close)
	return h
}

func (h *harness) inspect(t *testing.T) SessionView {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := h.engine.Inspect(ctx)
	require.NoError(t, err)
	return v
}

// settle waits until the session for id left PhaseFetching.
func (h *harness) settle(t *testing.T, id StationID) SessionView {
	t.Helper()
	var v SessionView
	require.Eventually(t, func() bool {
		v = h.inspect(t)
		return v.CurrentStationID == id && v.Phase != PhaseFetching
	}, time.Second, 5*time.Millisecond)
	return v
}

func station(id StationID, name string) Station {
	return Station{
		ID:        id,
		Shortcode: name,
		Name:      name,
		StreamURL: "http://radio.example/listen/" + name + "/radio.mp3",
	}
}

// playing builds a snapshot whose current track started elapsed ago at t0.
func playing(st Station, title string, duration, elapsed time.Duration, next *TrackInfo) *Snapshot {
	return &Snapshot{
		Station: st,
		Current: &TrackInfo{
			Title:      title,
			Artist:     "Artist",
			ArtworkURL: "http://radio.example/art/" + title + ".png",
			Duration:   duration,
			StartedAt:  t0.Add(-elapsed),
		},
		Next:      next,
		FetchedAt: t0,
	}
}
