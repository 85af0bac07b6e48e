package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// StationTitle renders a station name in the theme's bold accent gradient.
func StationTitle(name string) string {
	t := T()
	return ApplyBoldGradient(name, t.Primary, t.Secondary)
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

// FadeColor blends from toward to by amount in [0,1]. It is used to dim
// artwork captions while a cross-fade runs.
func FadeColor(from, to lipgloss.Color, amount float64) lipgloss.Color {
	amount = min(max(amount, 0), 1)
	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))
	return lipgloss.Color(c1.BlendLab(c2, amount).Clamped().Hex())
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Bold(bold)
	if len(clusters) == 1 {
		return style.Foreground(from).Render(text)
	}

	colors := blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(style.Foreground(lipgloss.Color(colors[i].Hex())).Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blend interpolates in HCL space for perceptually even steps.
func blend(size int, from, to lipgloss.Color) []colorful.Color {
	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColor parses "#rrggbb"; ANSI palette indexes map to neutral gray.
func toColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
