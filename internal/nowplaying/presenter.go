package nowplaying

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

const noArtworkAlt = "No album art available"

// Presenter pushes accepted snapshots to the view, the media sessions and the
// transport. It never returns errors; failures are logged.
type Presenter struct {
	view      View
	media     []MediaSession
	transport Transport
	guard     Guard
	clock     clock.Clock
	loop      Loop
	log       zerolog.Logger

	crossFade       time.Duration
	fallbackArtwork string

	artGen uint64
	fade   *clock.Timer
}

// Apply renders snap for station id. Callers have already checked that id is
// the tuned station. A failing view or media session is logged and skipped;
// the transport is aligned regardless.
func (p *Presenter) Apply(id StationID, snap *Snapshot) {
	st := snap.Station
	p.render("show station", func() { p.view.ShowStation(st) })

	if snap.Current == nil {
		p.cancelFade()
		p.render("show no track", func() {
			p.view.ShowNoTrack()
			p.view.ShowArtwork("", noArtworkAlt)
		})
		p.publish(nil)
	} else {
		track := *snap.Current
		art := track.ArtworkURL
		if art == "" {
			art = p.fallbackArtwork
		}
		p.render("show track", func() { p.view.ShowTrack(track) })
		p.swapArtwork(id, art, track.Label())
		p.publish(newMediaDescriptor(st, track, art))
	}

	p.Align(st.StreamURL)
}

// Align points the transport at url and starts playback when it is playing
// something else.
func (p *Presenter) Align(url string) {
	if url == "" || p.transport == nil || p.transport.Source() == url {
		return
	}
	if err := p.transport.Load(url); err != nil {
		p.log.Warn().Err(err).Str("url", url).Msg("load stream")
		return
	}
	if err := p.transport.Play(); err != nil {
		p.log.Warn().Err(err).Str("url", url).Msg("play stream")
	}
}

// ShowPreview displays the upcoming-track banner.
func (p *Presenter) ShowPreview(next TrackInfo) {
	defer p.contain("show preview")
	p.view.ShowPreview(next)
}

// ClearPreview hides the upcoming-track banner.
func (p *Presenter) ClearPreview() {
	defer p.contain("clear preview")
	p.view.HidePreview()
}

// swapArtwork fades the current artwork out and shows url once the
// cross-fade elapses, unless the station changed or a newer swap started.
func (p *Presenter) swapArtwork(id StationID, url, alt string) {
	p.cancelFade()
	p.render("fade artwork", p.view.FadeOutArtwork)
	gen := p.artGen

	p.fade = p.clock.AfterFunc(p.crossFade, func() {
		p.loop.Post(func() {
			defer p.contain("show artwork")
			if gen != p.artGen || !p.guard.IsCurrent(id) {
				p.log.Debug().Str("station", string(id)).Msg("dropped stale artwork swap")
				return
			}
			p.fade = nil
			p.view.ShowArtwork(url, alt)
		})
	})
}

func (p *Presenter) cancelFade() {
	p.artGen++
	if p.fade != nil {
		p.fade.Stop()
		p.fade = nil
	}
}

func (p *Presenter) publish(d *MediaDescriptor) {
	for _, m := range p.media {
		p.render("publish metadata", func() { m.SetMetadata(d) })
	}
}

// render runs one view or media call, logging a panic instead of letting it
// abort the caller.
func (p *Presenter) render(op string, fn func()) {
	defer p.contain(op)
	fn()
}

func (p *Presenter) contain(op string) {
	if r := recover(); r != nil {
		p.log.Error().Interface("panic", r).Str("op", op).Msg("render failed")
	}
}

type nopView struct{}

func (nopView) ShowStation(Station)        {}
func (nopView) ShowTrack(TrackInfo)        {}
func (nopView) ShowNoTrack()               {}
func (nopView) FadeOutArtwork()            {}
func (nopView) ShowArtwork(string, string) {}
func (nopView) ShowPreview(TrackInfo)      {}
func (nopView) HidePreview()               {}
