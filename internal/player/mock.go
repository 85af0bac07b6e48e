// internal/player/mock.go
package player

import "sync"

// Mock is a test double for Player. It is safe for concurrent use.
type Mock struct {
	mu         sync.Mutex
	state      State
	source     string
	volume     float64
	muted      bool
	loadErr    error
	playErr    error
	loadCalls  []string
	playCalls  int
	reloadCall int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: defaultVolume,
	}
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

func (m *Mock) Load(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, url)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.source = url
	m.state = Stopped
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.source == "" {
		return ErrNoSource
	}
	m.state = Playing
	return nil
}

func (m *Mock) Reload() error {
	m.mu.Lock()
	m.reloadCall++
	m.mu.Unlock()
	return m.Play()
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.State() {
	case Playing:
		m.Pause()
	case Paused, Stopped:
		_ = m.Play()
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = ClampVolume(level)
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetSource(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.source = url
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// LoadCalls returns the URLs passed to Load, in order.
func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) ReloadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reloadCall
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
