package playerbar

import (
	"fmt"

	"github.com/banabyte/airwaves/internal/ui/styles"
)

// RenderVolume renders the volume indicator, e.g. "vol  25%".
func RenderVolume(volume float64, muted bool) string {
	label := "vol"
	if muted {
		label = "mute"
	}
	pct := int(volume*100 + 0.5)
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", label, pct))
}
