package nowplaying

import "context"

// Fetcher retrieves a station's now-playing snapshot. Each call performs
// exactly one request; implementations must not retry or cache. Failures are
// returned as *FetchError.
type Fetcher interface {
	FetchNowPlaying(ctx context.Context, id StationID) (*Snapshot, error)
}

// StreamResolver resolves a station's stream endpoint so the transport can be
// primed before the first snapshot arrives.
type StreamResolver interface {
	StreamURL(ctx context.Context, id StationID) (string, error)
}

// StationStore persists the last tuned station.
type StationStore interface {
	SaveLastStation(id StationID)
}

// View renders station and track state. Implementations must not block the
// caller for long; they are invoked on the engine's loop.
type View interface {
	ShowStation(st Station)
	ShowTrack(t TrackInfo)
	ShowNoTrack()
	FadeOutArtwork()
	ShowArtwork(url, alt string)
	ShowPreview(t TrackInfo)
	HidePreview()
}

// MediaSession mirrors the current track to the platform. A nil descriptor
// clears it.
type MediaSession interface {
	SetMetadata(d *MediaDescriptor)
}

// Transport is the audio output the presenter keeps pointed at the tuned
// station's stream.
type Transport interface {
	Source() string
	Load(url string) error
	Play() error
}
