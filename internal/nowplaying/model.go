// Package nowplaying keeps the tuned station's displayed metadata in step with
// the broadcast server. A single Engine owns the session, predicts track
// boundaries with timers and drops any response or timer that belongs to a
// station the listener has already tuned away from.
package nowplaying

import (
	"fmt"
	"time"
)

// StationID identifies a station on the broadcast server. Numeric ids are
// carried as their decimal text.
type StationID string

// Station describes a tunable station.
type Station struct {
	ID        StationID
	Shortcode string
	Name      string
	StreamURL string
	LogoURL   string
}

// TrackInfo describes one track as reported by the server.
type TrackInfo struct {
	Title      string
	Artist     string
	ArtworkURL string
	Duration   time.Duration
	StartedAt  time.Time
}

// EndsAt returns the server-predicted end of the track.
func (t TrackInfo) EndsAt() time.Time {
	return t.StartedAt.Add(t.Duration)
}

// Remaining returns how much of the track is left at now. It may be negative
// when the server's metadata lags behind the broadcast.
func (t TrackInfo) Remaining(now time.Time) time.Duration {
	return t.Duration - now.Sub(t.StartedAt)
}

// Label formats the track as "title - artist", omitting empty parts.
func (t TrackInfo) Label() string {
	switch {
	case t.Title == "":
		return t.Artist
	case t.Artist == "":
		return t.Title
	default:
		return fmt.Sprintf("%s - %s", t.Title, t.Artist)
	}
}

// Snapshot is the server's view of a station at one instant. Snapshots are
// built once per successful fetch and never modified afterwards.
type Snapshot struct {
	Station Station
	Current *TrackInfo // nil when nothing is playing
	Next    *TrackInfo // nil when the server announces no upcoming track

	// FetchedAt is the local time the response was parsed.
	FetchedAt time.Time
}

// Silent reports whether the station is broadcasting without a track.
func (s *Snapshot) Silent() bool {
	return s.Current == nil
}

// MediaDescriptor is the platform media-session metadata for the current
// track.
type MediaDescriptor struct {
	Title   string
	Artist  string
	Album   string
	Artwork []Artwork
}

// Artwork is one sized artwork entry of a MediaDescriptor.
type Artwork struct {
	Src   string
	Sizes string
	Type  string
}

var artworkSizes = []string{"96x96", "128x128", "192x192", "256x256", "384x384", "512x512"}

func newMediaDescriptor(station Station, track TrackInfo, artworkURL string) *MediaDescriptor {
	d := &MediaDescriptor{
		Title:  track.Title,
		Artist: track.Artist,
		Album:  station.Name,
	}
	if artworkURL == "" {
		return d
	}
	d.Artwork = make([]Artwork, 0, len(artworkSizes))
	for _, size := range artworkSizes {
		d.Artwork = append(d.Artwork, Artwork{Src: artworkURL, Sizes: size, Type: "image/png"})
	}
	return d
}
