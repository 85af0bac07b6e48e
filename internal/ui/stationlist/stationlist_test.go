package stationlist

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

func stations(n int) []nowplaying.Station {
	out := make([]nowplaying.Station, n)
	for i := range n {
		id := nowplaying.StationID(fmt.Sprint(i + 1))
		out[i] = nowplaying.Station{ID: id, Name: "Station " + string(id)}
	}
	return out
}

func TestModel_MoveClamps(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(stations(3))

	m.Move(-1)
	st, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, nowplaying.StationID("1"), st.ID)

	m.Move(10)
	st, _ = m.Selected()
	assert.Equal(t, nowplaying.StationID("3"), st.ID)

	m.JumpStart()
	st, _ = m.Selected()
	assert.Equal(t, nowplaying.StationID("1"), st.ID)

	m.JumpEnd()
	st, _ = m.Selected()
	assert.Equal(t, nowplaying.StationID("3"), st.ID)
}

func TestModel_EmptySelection(t *testing.T) {
	m := New()
	m.Move(1)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_Focus(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(stations(5))

	assert.True(t, m.Focus("4"))
	st, _ := m.Selected()
	assert.Equal(t, nowplaying.StationID("4"), st.ID)

	assert.False(t, m.Focus("missing"))
	st, _ = m.Selected()
	assert.Equal(t, nowplaying.StationID("4"), st.ID)
}

func TestModel_ScrollKeepsCursorVisible(t *testing.T) {
	m := New()
	m.SetSize(30, 8) // 6 inner rows, 5 station rows
	m.SetStations(stations(20))

	for range 12 {
		m.Move(1)
		assert.GreaterOrEqual(t, m.pos, m.offset)
		assert.Less(t, m.pos, m.offset+m.visibleRows())
	}

	m.JumpEnd()
	assert.Equal(t, 15, m.offset)
}

func TestModel_SetStationsClampsCursor(t *testing.T) {
	m := New()
	m.SetSize(30, 10)
	m.SetStations(stations(5))
	m.JumpEnd()

	m.SetStations(stations(2))
	st, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, nowplaying.StationID("2"), st.ID)
}

func TestModel_ViewMarksTuned(t *testing.T) {
	m := New()
	m.SetSize(30, 8)
	m.SetStations(stations(3))
	m.SetTuned("2")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Stations")
	assert.Contains(t, out, tunedMarker+"Station 2")
	assert.Contains(t, out, blankMarker+"Station 1")
}

func TestModel_ViewEmpty(t *testing.T) {
	m := New()
	m.SetSize(30, 6)
	assert.Contains(t, ansi.Strip(m.View()), "No station online")

	var zero Model
	assert.Empty(t, zero.View())
}
