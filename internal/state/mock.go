// internal/state/mock.go
package state

import (
	"sync"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

// Mock is a test double for Manager.
type Mock struct {
	mu          sync.Mutex
	lastStation nowplaying.StationID
	saved       []nowplaying.StationID
	volume      *VolumeState
	volumeErr   error
	closed      bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) LastStation() (nowplaying.StationID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastStation, nil
}

func (m *Mock) SaveLastStation(id nowplaying.StationID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastStation = id
	m.saved = append(m.saved, id)
}

func (m *Mock) GetVolume() (*VolumeState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *Mock) SaveVolume(volume float64, muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.volumeErr != nil {
		return m.volumeErr
	}
	m.volume = &VolumeState{Volume: volume, Muted: muted}
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetLastStation(id nowplaying.StationID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastStation = id
}

func (m *Mock) SetVolumeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeErr = err
}

// SavedStations returns every id passed to SaveLastStation, in order.
func (m *Mock) SavedStations() []nowplaying.StationID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]nowplaying.StationID(nil), m.saved...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
