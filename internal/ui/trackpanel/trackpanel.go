// Package trackpanel renders the now-playing panel: station, current track,
// artwork caption and the upcoming-track banner.
package trackpanel

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/ui"
	"github.com/banabyte/airwaves/internal/ui/render"
	"github.com/banabyte/airwaves/internal/ui/styles"
)

const (
	noStation = "Pick a station to start listening"
	noTrack   = "Nothing on air right now"
	upNext    = "Up next: "
)

// State is what the panel shows. It mirrors the calls the engine made on the
// view; Now drives the relative times.
type State struct {
	Station  *nowplaying.Station
	Track    *nowplaying.TrackInfo
	Preview  *nowplaying.TrackInfo
	Artwork  string
	ArtAlt   string
	ArtFaded bool
	Now      time.Time
}

// Model is the bordered now-playing panel.
type Model struct {
	ui.Base
}

// View renders s inside the panel.
func (m Model) View(s State) string {
	width, height := m.InnerSize()
	if width == 0 || height == 0 {
		return ""
	}

	lines := Lines(s, width)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = render.TruncateStyled(l, width)
	}

	return styles.PanelStyle(m.IsFocused()).Width(width).Render(strings.Join(lines, "\n"))
}

// Lines renders the panel content without the border.
func Lines(s State, width int) []string {
	st := styles.T().S()

	if s.Station == nil {
		return []string{st.Subtle.Render(noStation)}
	}

	lines := []string{styles.StationTitle(render.Sanitize(s.Station.Name)), ""}

	if s.Track == nil {
		lines = append(lines, st.Muted.Render(noTrack))
	} else {
		lines = append(lines, st.Title.Render(render.Truncate(s.Track.Title, width)))
		if s.Track.Artist != "" {
			lines = append(lines, st.Base.Render(render.Truncate(s.Track.Artist, width)))
		}
		if timing := trackTiming(*s.Track, s.Now); timing != "" {
			lines = append(lines, st.Subtle.Render(timing))
		}
	}

	lines = append(lines, "", artworkCaption(s, width))

	if s.Preview != nil {
		lines = append(lines, "", st.Preview.Render(render.Truncate(upNext+s.Preview.Label(), width)))
	}
	return lines
}

func trackTiming(t nowplaying.TrackInfo, now time.Time) string {
	if t.StartedAt.IsZero() || now.IsZero() {
		return ""
	}
	started := "started " + humanize.RelTime(t.StartedAt, now, "ago", "from now")
	if t.Duration <= 0 {
		return started
	}
	if t.Remaining(now) <= 0 {
		return started + ", ending now"
	}
	return started + ", ends " + humanize.RelTime(t.EndsAt(), now, "ago", "from now")
}

// artworkCaption describes the artwork the way a terminal can: its file
// name, dimmed while the cross-fade runs.
func artworkCaption(s State, width int) string {
	st := styles.T().S()
	t := styles.T()

	if s.ArtFaded {
		faded := styles.FadeColor(t.FgMuted, t.FgSubtle, 0.6)
		return st.Base.Foreground(faded).Render("Artwork: …")
	}
	if s.Artwork == "" {
		if s.ArtAlt == "" {
			return ""
		}
		return st.Subtle.Render(render.Truncate(s.ArtAlt, width))
	}
	return st.Muted.Render(render.Truncate("Artwork: "+artworkName(s.Artwork), width))
}

func artworkName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return raw
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return u.Host
	}
	return name
}
