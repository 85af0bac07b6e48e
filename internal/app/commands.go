package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const stationsTimeout = 30 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadStationsCmd lists the online stations in the background.
func (m Model) loadStationsCmd() tea.Cmd {
	src := m.stations
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stationsTimeout)
		defer cancel()
		stations, err := src.OnlineStations(ctx)
		return StationsLoadedMsg{Stations: stations, Err: err}
	}
}
