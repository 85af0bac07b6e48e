// Package playerbar renders the one-line transport bar at the bottom of the
// screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/banabyte/airwaves/internal/player"
	"github.com/banabyte/airwaves/internal/ui"
	"github.com/banabyte/airwaves/internal/ui/render"
	"github.com/banabyte/airwaves/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
	liveLabel   = "● LIVE"
	separator   = "   "
)

// Height is the bar height including its border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Transport player.State
	Station   string
	Track     string
	Elapsed   time.Duration
	Duration  time.Duration
	Volume    float64
	Muted     bool
}

// NewState reads the transport side of the bar from p. The caller fills in
// the station and track.
func NewState(p player.Interface) State {
	return State{
		Transport: p.State(),
		Volume:    p.Volume(),
		Muted:     p.Muted(),
	}
}

// Render returns the bordered bar for the given width.
func Render(s State, width int) string {
	inner := max(width-ui.BorderWidth-4, 0) // border + padding
	st := styles.T().S()

	right := RenderVolume(s.Volume, s.Muted)
	timeStr := ""
	if s.Duration > 0 {
		timeStr = fmt.Sprintf("%s / %s", formatDuration(s.Elapsed), formatDuration(s.Duration))
	}

	left := status(s.Transport)
	if s.Transport == player.Playing {
		left += " " + st.Live.Render(liveLabel)
	}

	label := s.Track
	if label == "" {
		label = s.Station
	}

	fixed := lipgloss.Width(left) + lipgloss.Width(right) + len(separator)*2
	if timeStr != "" {
		fixed += lipgloss.Width(timeStr) + len(separator)
	}
	avail := max(inner-fixed, 0)

	labelWidth := min(lipgloss.Width(label), avail/2)
	barWidth := avail - labelWidth - len(separator)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(separator)
	b.WriteString(st.Title.Render(render.Truncate(label, labelWidth)))
	if timeStr != "" && barWidth >= ui.MinProgressBarWidth {
		b.WriteString(separator)
		b.WriteString(RenderProgress(s.Elapsed, s.Duration, barWidth))
		b.WriteString(separator)
		b.WriteString(st.Muted.Render(timeStr))
	}

	content := render.Row(b.String(), right, inner)
	return barStyle().Padding(0, 2).Width(max(width-ui.BorderWidth, 0)).Render(render.TruncateStyled(content, inner))
}

func status(s player.State) string {
	switch s {
	case player.Playing:
		return playSymbol
	case player.Paused:
		return pauseSymbol
	case player.Stopped:
		return stopSymbol
	}
	return stopSymbol
}

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func formatDuration(d time.Duration) string {
	d = max(d, 0)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
