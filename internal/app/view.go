package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/banabyte/airwaves/internal/keymap"
	"github.com/banabyte/airwaves/internal/ui"
	"github.com/banabyte/airwaves/internal/ui/playerbar"
	"github.com/banabyte/airwaves/internal/ui/render"
	"github.com/banabyte/airwaves/internal/ui/styles"
)

const statusHeight = 1

// sideBySide reports whether the list and the panel share the screen.
func (m Model) sideBySide() bool {
	return m.ListVisible && m.Width >= ui.MinSideBySideWidth
}

// layout sizes the panels for the current window.
func (m *Model) layout() {
	bodyHeight := max(m.Height-playerbar.Height-statusHeight, 0)

	switch {
	case m.sideBySide():
		m.List.SetSize(ui.StationListWidth, bodyHeight)
		m.Panel.SetSize(m.Width-ui.StationListWidth, bodyHeight)
	case m.ListVisible:
		m.List.SetSize(m.Width, bodyHeight)
		m.Panel.SetSize(0, 0)
	default:
		m.List.SetSize(0, 0)
		m.Panel.SetSize(m.Width, bodyHeight)
	}
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.Loading && m.List.Len() == 0 {
		return m.renderLoading()
	}

	var body string
	switch {
	case m.ShowHelp:
		body = m.renderHelp()
	case m.sideBySide():
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), m.Panel.View(m.Track))
	case m.ListVisible:
		body = m.List.View()
	default:
		body = m.Panel.View(m.Track)
	}

	return body + "\n" + m.renderPlayerBar() + "\n" + m.renderStatus()
}

func (m Model) renderPlayerBar() string {
	s := playerbar.NewState(m.player)
	if m.Track.Station != nil {
		s.Station = m.Track.Station.Name
	}
	if t := m.Track.Track; t != nil {
		s.Track = t.Label()
		s.Duration = t.Duration
		if !t.StartedAt.IsZero() {
			s.Elapsed = m.Track.Now.Sub(t.StartedAt)
		}
	}
	return playerbar.Render(s, m.Width)
}

func (m Model) renderStatus() string {
	st := styles.T().S()
	if m.ErrorMsg != "" {
		return st.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}
	left := ""
	if m.Loading {
		left = m.Spinner.View() + " refreshing stations"
	}
	return render.Row(left, st.Subtle.Render("? help"), m.Width)
}

func (m Model) renderLoading() string {
	msg := m.Spinner.View() + " " + styles.T().S().Muted.Render("Tuning in… loading stations")
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) renderHelp() string {
	st := styles.T().S()
	bodyHeight := max(m.Height-playerbar.Height-statusHeight, 0)

	var lines []string
	for _, ctx := range []string{"global", "stations", "playback"} {
		lines = append(lines, st.Title.Render(strings.ToUpper(ctx[:1])+ctx[1:]))
		for _, b := range keymap.ByContext(ctx) {
			lines = append(lines, "  "+st.Tuned.Render(render.Pad(displayKeys(b.Keys), 14))+st.Base.Render(b.Description))
		}
		lines = append(lines, "")
	}
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	return lipgloss.NewStyle().Height(bodyHeight).Render(strings.Join(lines, "\n"))
}

func displayKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, ", ")
}
