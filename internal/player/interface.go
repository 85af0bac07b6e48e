// internal/player/interface.go
package player

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Source() string
	Load(url string) error
	Play() error
	Reload() error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Volume() float64
	SetVolume(level float64)
	Muted() bool
	SetMuted(muted bool)
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
