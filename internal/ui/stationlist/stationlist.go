// Package stationlist renders the scrollable list of tunable stations.
package stationlist

import (
	"strings"

	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/ui"
	"github.com/banabyte/airwaves/internal/ui/render"
	"github.com/banabyte/airwaves/internal/ui/styles"
)

const (
	tunedMarker = "♪ "
	blankMarker = "  "
)

// Model is the station list. The parent routes key actions to it and reads
// the highlighted station back with Selected.
type Model struct {
	ui.Base
	stations []nowplaying.Station
	tuned    nowplaying.StationID
	pos      int
	offset   int
}

// New creates an empty list.
func New() Model {
	return Model{}
}

// SetStations replaces the list and keeps the cursor in range.
func (m *Model) SetStations(stations []nowplaying.Station) {
	m.stations = stations
	m.pos = min(m.pos, max(len(stations)-1, 0))
	m.ensureVisible()
}

// Stations returns the listed stations.
func (m Model) Stations() []nowplaying.Station {
	return m.stations
}

// Len returns the number of stations.
func (m Model) Len() int {
	return len(m.stations)
}

// SetTuned marks the station currently playing.
func (m *Model) SetTuned(id nowplaying.StationID) {
	m.tuned = id
}

// Focus moves the cursor to the station with id. It reports false if the
// station is not listed.
func (m *Model) Focus(id nowplaying.StationID) bool {
	for i, st := range m.stations {
		if st.ID == id {
			m.pos = i
			m.ensureVisible()
			return true
		}
	}
	return false
}

// Selected returns the highlighted station.
func (m Model) Selected() (nowplaying.Station, bool) {
	if len(m.stations) == 0 {
		return nowplaying.Station{}, false
	}
	return m.stations[m.pos], true
}

// Move moves the cursor by delta rows, clamped to the list.
func (m *Model) Move(delta int) {
	if len(m.stations) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.stations)-1)
	m.ensureVisible()
}

// JumpStart moves the cursor to the first station.
func (m *Model) JumpStart() {
	m.pos = 0
	m.offset = 0
}

// JumpEnd moves the cursor to the last station.
func (m *Model) JumpEnd() {
	m.pos = max(len(m.stations)-1, 0)
	m.ensureVisible()
}

// SetSize resizes the list and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.ensureVisible()
}

func (m *Model) visibleRows() int {
	_, h := m.InnerSize()
	return max(h-1, 1) // header row
}

// ensureVisible scrolls so the cursor keeps ScrollMargin rows of context.
func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	margin := min(ui.ScrollMargin, (rows-1)/2)

	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+rows-margin {
		m.offset = m.pos - rows + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.stations)-rows, 0))
}

// View renders the bordered list.
func (m Model) View() string {
	width, height := m.InnerSize()
	if width == 0 || height == 0 {
		return ""
	}
	s := styles.T().S()

	lines := make([]string, 0, height)
	lines = append(lines, s.Title.Render(render.TruncateAndPad("Stations", width)))

	rows := m.visibleRows()
	end := min(m.offset+rows, len(m.stations))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, width))
	}
	if len(m.stations) == 0 {
		lines = append(lines, s.Subtle.Render(render.TruncateAndPad("No station online", width)))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return styles.PanelStyle(m.IsFocused()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(i, width int) string {
	s := styles.T().S()
	st := m.stations[i]

	marker := blankMarker
	style := s.Base
	if st.ID == m.tuned {
		marker = tunedMarker
		style = s.Tuned
	}
	text := render.TruncateAndPad(marker+st.Name, width)

	if i == m.pos && m.IsFocused() {
		return s.Cursor.Inherit(style).Render(text)
	}
	return style.Render(text)
}
