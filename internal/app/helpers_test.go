package app

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/player"
	"github.com/banabyte/airwaves/internal/state"
)

var t0 = time.Unix(1_700_000_000, 0)

type fakeStations struct {
	stations []nowplaying.Station
	err      error
}

func (f fakeStations) OnlineStations(_ context.Context) ([]nowplaying.Station, error) {
	return f.stations, f.err
}

type fakeTuner struct {
	selected []nowplaying.StationID
}

func (f *fakeTuner) Select(id nowplaying.StationID) {
	f.selected = append(f.selected, id)
}

type testModel struct {
	Model
	tuner  *fakeTuner
	player *player.Mock
	state  *state.Mock
	clock  *clock.Mock
}

func newTestModel(t *testing.T, src fakeStations) testModel {
	t.Helper()

	clk := clock.NewMock()
	clk.Set(t0)

	tm := testModel{
		tuner:  &fakeTuner{},
		player: player.NewMock(),
		state:  state.NewMock(),
		clock:  clk,
	}
	bridge := NewViewBridge()
	t.Cleanup(bridge.Close)

	m, err := New(Deps{
		Stations: src,
		Tuner:    tm.tuner,
		Player:   tm.player,
		State:    tm.state,
		Bridge:   bridge,
		Clock:    clk,
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	tm.Model = m
	return tm
}

// update feeds msg and returns the resulting Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func stationList() []nowplaying.Station {
	return []nowplaying.Station{
		{ID: "1", Name: "Jazz FM", StreamURL: "http://radio.example/listen/jazz/radio.mp3"},
		{ID: "2", Name: "Rock FM", StreamURL: "http://radio.example/listen/rock/radio.mp3"},
		{ID: "3", Name: "Talk", StreamURL: "http://radio.example/listen/talk/radio.mp3"},
	}
}
