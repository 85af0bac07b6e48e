package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestApplyGradient_PreservesText(t *testing.T) {
	tests := []string{"", "a", "Jazz FM", "Radio 東京", "🎷 Sax"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			out := ApplyGradient(text, "#a78bfa", "#f1a208")
			assert.Equal(t, text, ansi.Strip(out))
		})
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, "#000000", "#ffffff")
	assert.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())
}

func TestFadeColor(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	assert.Equal(t, lipgloss.Color("#000000"), FadeColor(from, to, 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), FadeColor(from, to, 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), FadeColor(from, to, 3))
}

func TestToColor_ANSIFallsBackToGray(t *testing.T) {
	r, g, b, _ := toColor("240").RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}
