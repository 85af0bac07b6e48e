// Package app contains the root bubbletea model of the radio client.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

// ViewMessage is implemented by messages that replay a call the engine made
// on its view.
type ViewMessage interface {
	tea.Msg
	viewMessage()
}

// TickMsg is sent every second to refresh relative times and progress.
type TickMsg time.Time

// StationsLoadedMsg carries the result of listing the online stations.
type StationsLoadedMsg struct {
	Stations []nowplaying.Station
	Err      error
}

// ViewEventsMsg is a batch of view calls drained from the bridge, in call
// order.
type ViewEventsMsg []ViewMessage

// ViewClosedMsg is sent once the bridge stopped.
type ViewClosedMsg struct{}

// StationShownMsg replays View.ShowStation.
type StationShownMsg struct {
	Station nowplaying.Station
}

func (StationShownMsg) viewMessage() {}

// TrackShownMsg replays View.ShowTrack.
type TrackShownMsg struct {
	Track nowplaying.TrackInfo
}

func (TrackShownMsg) viewMessage() {}

// NoTrackMsg replays View.ShowNoTrack.
type NoTrackMsg struct{}

func (NoTrackMsg) viewMessage() {}

// ArtworkFadedMsg replays View.FadeOutArtwork.
type ArtworkFadedMsg struct{}

func (ArtworkFadedMsg) viewMessage() {}

// ArtworkShownMsg replays View.ShowArtwork.
type ArtworkShownMsg struct {
	URL string
	Alt string
}

func (ArtworkShownMsg) viewMessage() {}

// PreviewShownMsg replays View.ShowPreview.
type PreviewShownMsg struct {
	Track nowplaying.TrackInfo
}

func (PreviewShownMsg) viewMessage() {}

// PreviewHiddenMsg replays View.HidePreview.
type PreviewHiddenMsg struct{}

func (PreviewHiddenMsg) viewMessage() {}
