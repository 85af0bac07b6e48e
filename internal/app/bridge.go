package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

// ViewBridge implements nowplaying.View for the bubbletea program. The engine
// calls it on its loop; the calls are queued and handed to Update as
// messages, so the engine never waits on the UI.
type ViewBridge struct {
	mu      sync.Mutex
	pending []ViewMessage
	notify  chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewViewBridge creates an open bridge.
func NewViewBridge() *ViewBridge {
	return &ViewBridge{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (b *ViewBridge) ShowStation(st nowplaying.Station) {
	b.push(StationShownMsg{Station: st})
}

func (b *ViewBridge) ShowTrack(t nowplaying.TrackInfo) {
	b.push(TrackShownMsg{Track: t})
}

func (b *ViewBridge) ShowNoTrack() {
	b.push(NoTrackMsg{})
}

func (b *ViewBridge) FadeOutArtwork() {
	b.push(ArtworkFadedMsg{})
}

func (b *ViewBridge) ShowArtwork(url, alt string) {
	b.push(ArtworkShownMsg{URL: url, Alt: alt})
}

func (b *ViewBridge) ShowPreview(t nowplaying.TrackInfo) {
	b.push(PreviewShownMsg{Track: t})
}

func (b *ViewBridge) HidePreview() {
	b.push(PreviewHiddenMsg{})
}

func (b *ViewBridge) push(msg ViewMessage) {
	b.mu.Lock()
	b.pending = append(b.pending, msg)
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Wait returns a command that blocks until view calls are pending and
// delivers them as one ViewEventsMsg. Update must issue it again after each
// batch.
func (b *ViewBridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.notify:
		case <-b.done:
			return ViewClosedMsg{}
		}

		b.mu.Lock()
		batch := b.pending
		b.pending = nil
		b.mu.Unlock()
		return ViewEventsMsg(batch)
	}
}

// Close releases a pending Wait.
func (b *ViewBridge) Close() {
	b.once.Do(func() { close(b.done) })
}

// Verify ViewBridge can render the engine's state.
var _ nowplaying.View = (*ViewBridge)(nil)
