// internal/state/interface.go
package state

import "github.com/banabyte/airwaves/internal/nowplaying"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LastStation() (nowplaying.StationID, error)
	SaveLastStation(id nowplaying.StationID)
	GetVolume() (*VolumeState, error)
	SaveVolume(volume float64, muted bool) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

// Verify Manager can persist the engine's station selection.
var _ nowplaying.StationStore = (*Manager)(nil)
