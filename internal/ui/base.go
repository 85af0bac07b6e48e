package ui

// Base provides size and focus handling for panel models. Embed it to get
// the standard accessors.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions, borders included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// InnerSize returns the space left inside a bordered panel.
func (b Base) InnerSize() (width, height int) {
	return max(b.width-BorderWidth, 0), max(b.height-BorderHeight, 0)
}
