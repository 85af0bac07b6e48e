package app

import (
	"context"
	"errors"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/banabyte/airwaves/internal/keymap"
	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/player"
	"github.com/banabyte/airwaves/internal/state"
	"github.com/banabyte/airwaves/internal/ui/stationlist"
	"github.com/banabyte/airwaves/internal/ui/styles"
	"github.com/banabyte/airwaves/internal/ui/trackpanel"
)

// StationSource lists the stations that can be tuned.
type StationSource interface {
	OnlineStations(ctx context.Context) ([]nowplaying.Station, error)
}

// Tuner switches the tuned station.
type Tuner interface {
	Select(id nowplaying.StationID)
}

// Deps holds the model's collaborators.
type Deps struct {
	Stations       StationSource
	Tuner          Tuner
	Player         player.Interface
	State          state.Interface
	Bridge         *ViewBridge
	DefaultStation nowplaying.StationID
	Clock          clock.Clock
	Logger         zerolog.Logger
}

// Model is the root application model.
type Model struct {
	stations StationSource
	tuner    Tuner
	player   player.Interface
	stateMgr state.Interface
	bridge   *ViewBridge
	clock    clock.Clock
	log      zerolog.Logger
	keys     *keymap.Resolver

	defaultStation nowplaying.StationID
	tuned          nowplaying.StationID

	List    stationlist.Model
	Panel   trackpanel.Model
	Track   trackpanel.State
	Spinner spinner.Model

	Loading     bool
	ListVisible bool
	ShowHelp    bool
	ErrorMsg    string
	Width       int
	Height      int
}

// New creates the root model. Stations are loaded by Init.
func New(d Deps) (Model, error) {
	if d.Stations == nil || d.Tuner == nil || d.Player == nil || d.State == nil || d.Bridge == nil {
		return Model{}, errors.New("app: missing dependency")
	}
	if d.Clock == nil {
		d.Clock = clock.New()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = styles.T().S().Tuned

	list := stationlist.New()
	list.SetFocused(true)

	return Model{
		stations:       d.Stations,
		tuner:          d.Tuner,
		player:         d.Player,
		stateMgr:       d.State,
		bridge:         d.Bridge,
		clock:          d.Clock,
		log:            d.Logger,
		keys:           keymap.Default(),
		defaultStation: d.DefaultStation,
		List:           list,
		Spinner:        sp,
		Loading:        true,
		ListVisible:    true,
		Track:          trackpanel.State{Now: d.Clock.Now()},
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		m.loadStationsCmd(),
		m.bridge.Wait(),
		TickCmd(),
	)
}

// Tuned returns the station last handed to the tuner.
func (m Model) Tuned() nowplaying.StationID {
	return m.tuned
}
