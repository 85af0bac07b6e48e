// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// StationListWidth is the width of the station list column.
	StationListWidth = 32

	// MinSideBySideWidth is the narrowest terminal that shows the station
	// list next to the now-playing panel. Below it the list replaces the panel.
	MinSideBySideWidth = 80

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
