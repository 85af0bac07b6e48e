package trackpanel

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

var now = time.Unix(1_700_000_000, 0)

func stripped(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestLines_NoStation(t *testing.T) {
	assert.Contains(t, stripped(Lines(State{}, 40)), noStation)
}

func TestLines_Track(t *testing.T) {
	st := nowplaying.Station{ID: "1", Name: "Jazz FM"}
	s := State{
		Station: &st,
		Track: &nowplaying.TrackInfo{
			Title:     "So What",
			Artist:    "Miles Davis",
			Duration:  200 * time.Second,
			StartedAt: now.Add(-30 * time.Second),
		},
		Artwork: "http://radio.example/api/station/1/art/abc.png",
		Now:     now,
	}

	out := stripped(Lines(s, 60))
	assert.Contains(t, out, "Jazz FM")
	assert.Contains(t, out, "So What")
	assert.Contains(t, out, "Miles Davis")
	assert.Contains(t, out, "started 30 seconds ago")
	assert.Contains(t, out, "ends 2 minutes from now")
	assert.Contains(t, out, "Artwork: abc.png")
	assert.NotContains(t, out, upNext)
}

func TestLines_SilenceAndPreview(t *testing.T) {
	st := nowplaying.Station{ID: "1", Name: "Jazz FM"}
	s := State{
		Station: &st,
		Preview: &nowplaying.TrackInfo{Title: "Blue in Green", Artist: "Miles Davis"},
		ArtAlt:  "No album art available",
	}

	out := stripped(Lines(s, 60))
	assert.Contains(t, out, noTrack)
	assert.Contains(t, out, "Up next: Blue in Green - Miles Davis")
	assert.Contains(t, out, "No album art available")
}

func TestLines_FadedArtwork(t *testing.T) {
	st := nowplaying.Station{ID: "1", Name: "Jazz FM"}
	out := stripped(Lines(State{Station: &st, Artwork: "http://x/a.png", ArtFaded: true}, 60))
	assert.Contains(t, out, "Artwork: …")
	assert.NotContains(t, out, "a.png")
}

func TestTrackTiming(t *testing.T) {
	tests := []struct {
		name  string
		track nowplaying.TrackInfo
		want  string
	}{
		{"unknown start", nowplaying.TrackInfo{Duration: time.Minute}, ""},
		{"no duration", nowplaying.TrackInfo{StartedAt: now.Add(-time.Minute)}, "started 1 minute ago"},
		{"overrun", nowplaying.TrackInfo{StartedAt: now.Add(-2 * time.Minute), Duration: time.Minute}, "started 2 minutes ago, ending now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trackTiming(tt.track, now))
		})
	}
}

func TestArtworkName(t *testing.T) {
	assert.Equal(t, "cover.png", artworkName("https://radio.example/art/cover.png"))
	assert.Equal(t, "radio.example", artworkName("https://radio.example/"))
	assert.Equal(t, "fallback.png", artworkName("fallback.png"))
}

func TestModel_ViewFitsSize(t *testing.T) {
	var m Model
	m.SetSize(40, 12)
	st := nowplaying.Station{ID: "1", Name: "Jazz FM"}

	out := m.View(State{Station: &st, Track: &nowplaying.TrackInfo{Title: strings.Repeat("long ", 20)}})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
}
