//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/player"
)

// Adapter exposes the tuned station's metadata and transport over MPRIS.
type Adapter struct {
	mirror *Mirror
	server *server.Server
}

// New creates and starts a new MPRIS adapter controlling p.
func New(p player.Interface) (*Adapter, error) {
	m := NewMirror(p)
	a := &Adapter{
		mirror: m,
		server: server.NewServer("airwaves", &rootAdapter{}, &playerAdapter{mirror: m}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// SetMetadata publishes the descriptor of the current track.
func (a *Adapter) SetMetadata(d *nowplaying.MediaDescriptor) {
	a.mirror.SetMetadata(d)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Airwaves", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. A live stream
// has no queue and no seeking, so those controls are reported as unavailable.
type playerAdapter struct {
	mirror *Mirror
}

func (p *playerAdapter) Next() error {
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	p.mirror.player.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.mirror.player.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.mirror.player.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	if p.mirror.player.State() == player.Playing {
		return nil
	}
	return p.mirror.player.Play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.mirror.player.State() {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	case player.Stopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return p.mirror.Metadata(), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.mirror.player.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.mirror.player.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.mirror.player.Source() != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// Mirror holds the last published descriptor for MPRIS clients to read.
type Mirror struct {
	player player.Interface

	mu   sync.RWMutex
	desc *nowplaying.MediaDescriptor
}

// NewMirror creates an empty mirror controlling p.
func NewMirror(p player.Interface) *Mirror {
	return &Mirror{player: p}
}

// SetMetadata replaces the published descriptor. nil clears it.
func (m *Mirror) SetMetadata(d *nowplaying.MediaDescriptor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.desc = d
}

// Metadata converts the published descriptor to MPRIS metadata.
func (m *Mirror) Metadata() types.Metadata {
	m.mu.RLock()
	d := m.desc
	m.mu.RUnlock()

	if d == nil {
		return types.Metadata{}
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(d.Album, d.Title, d.Artist)),
		Title:   d.Title,
		Album:   d.Album,
	}
	if d.Artist != "" {
		meta.Artist = []string{d.Artist}
	}
	if art := largestArtwork(d.Artwork); art != "" {
		meta.ArtUrl = art
	}
	return meta
}

// largestArtwork picks the last entry; descriptors list sizes ascending.
func largestArtwork(art []nowplaying.Artwork) string {
	if len(art) == 0 {
		return ""
	}
	return art[len(art)-1].Src
}

func formatTrackID(parts ...string) string {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

var _ nowplaying.MediaSession = (*Adapter)(nil)
