//go:build !linux

package mpris

import (
	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/player"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ player.Interface) (*Adapter, error) {
	return &Adapter{}, nil
}

// SetMetadata is a no-op on non-Linux platforms.
func (a *Adapter) SetMetadata(_ *nowplaying.MediaDescriptor) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
