package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/banabyte/airwaves/internal/errmsg"
	"github.com/banabyte/airwaves/internal/nowplaying"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StationsLoadedMsg:
		return m.handleStationsLoaded(msg)

	case ViewEventsMsg:
		for _, e := range msg {
			m.applyViewEvent(e)
		}
		return m, m.bridge.Wait()

	case ViewClosedMsg:
		return m, nil

	case TickMsg:
		m.Track.Now = m.clock.Now()
		return m, TickCmd()
	}

	return m, nil
}

func (m Model) handleStationsLoaded(msg StationsLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("load stations")
		m.ErrorMsg = errmsg.Format(errmsg.OpStationsLoad, msg.Err)
		return m, nil
	}
	m.ErrorMsg = ""
	m.List.SetStations(msg.Stations)
	m.log.Info().Int("stations", len(msg.Stations)).Msg("stations loaded")

	// A reload keeps the current station.
	if m.tuned != "" {
		m.List.Focus(m.tuned)
		return m, nil
	}

	if id, ok := m.initialStation(); ok {
		m.tune(id)
	}
	return m, nil
}

// initialStation picks the remembered station, then the configured default,
// then the first listed one.
func (m Model) initialStation() (nowplaying.StationID, bool) {
	var candidates []nowplaying.StationID
	if id, err := m.stateMgr.LastStation(); err != nil {
		m.log.Warn().Err(err).Msg("read last station")
	} else if id != "" {
		candidates = append(candidates, id)
	}
	if m.defaultStation != "" {
		candidates = append(candidates, m.defaultStation)
	}

	for _, id := range candidates {
		for _, st := range m.List.Stations() {
			if st.ID == id {
				return id, true
			}
		}
	}
	if st := m.List.Stations(); len(st) > 0 {
		return st[0].ID, true
	}
	return "", false
}

func (m *Model) tune(id nowplaying.StationID) {
	m.tuned = id
	m.List.Focus(id)
	m.List.SetTuned(id)
	m.tuner.Select(id)
}

func (m *Model) applyViewEvent(e ViewMessage) {
	switch e := e.(type) {
	case StationShownMsg:
		st := e.Station
		m.Track.Station = &st
		m.List.SetTuned(st.ID)
	case TrackShownMsg:
		t := e.Track
		m.Track.Track = &t
	case NoTrackMsg:
		m.Track.Track = nil
	case ArtworkFadedMsg:
		m.Track.ArtFaded = true
	case ArtworkShownMsg:
		m.Track.ArtFaded = false
		m.Track.Artwork = e.URL
		m.Track.ArtAlt = e.Alt
	case PreviewShownMsg:
		t := e.Track
		m.Track.Preview = &t
	case PreviewHiddenMsg:
		m.Track.Preview = nil
	}
}
