package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/banabyte/airwaves/internal/ui/styles"
)

// RenderProgress renders a width-cell bar showing how much of the track has
// aired. Elapsed beyond the duration renders a full bar.
func RenderProgress(elapsed, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(elapsed)/float64(duration), 0), 1)
	}
	filled := int(float64(width) * ratio)

	t := styles.T()
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("─", width-filled))
}
