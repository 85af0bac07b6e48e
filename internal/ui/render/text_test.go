package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "So What - Miles Davis", "So What - Miles Davis"},
		{"control chars", "So\x00 What\x1b", "So What"},
		{"keeps tab", "a\tb", "a\tb"},
		{"nbsp", "Jazz\u00a0FM", "Jazz FM"},
		{"invalid utf8", "Caf\xe9", "Caf"},
		{"c1 control", "a\u0085b", "ab"},
		{"unicode", "Radio 東京", "Radio 東京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"wide runes", "東京東京東京", 7, "東京..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Blue in Green")

	out := TruncateStyled(styled, 6)
	assert.LessOrEqual(t, lipgloss.Width(out), 6)
	assert.Equal(t, "Blue …", ansi.Strip(out))

	assert.Equal(t, styled, TruncateStyled(styled, 40))
	assert.Empty(t, TruncateStyled(styled, 0))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left  right", Row("left", "right", 11))
	assert.Equal(t, "left right", Row("left", "right", 3))
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "ab   ", TruncateAndPad("ab", 5))
	assert.Equal(t, "ab...", TruncateAndPad("abcdefgh", 5))
}
