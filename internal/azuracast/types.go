package azuracast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

// stationID accepts both numeric and string ids.
type stationID string

func (s *stationID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = stationID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("station id: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("station id %s: %w", n, err)
	}
	*s = stationID(n.String())
	return nil
}

type stationResponse struct {
	ID        stationID `json:"id"`
	Name      string    `json:"name"`
	Shortcode string    `json:"shortcode"`
	ListenURL string    `json:"listen_url"`
}

type songResponse struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Art    string `json:"art"`
}

type trackResponse struct {
	Song     *songResponse `json:"song"`
	PlayedAt *int64        `json:"played_at"`
	Duration *float64      `json:"duration"`
}

type nowPlayingResponse struct {
	Station     *stationResponse `json:"station"`
	NowPlaying  *trackResponse   `json:"now_playing"`
	PlayingNext *trackResponse   `json:"playing_next"`
	IsOnline    *bool            `json:"is_online"`
}

func (r *nowPlayingResponse) online() bool {
	return r.IsOnline == nil || *r.IsOnline
}

func (r *nowPlayingResponse) snapshot(id nowplaying.StationID, logoURL func(string) string) (*nowplaying.Snapshot, error) {
	if r.Station == nil {
		return nil, errMissingStation
	}

	snap := &nowplaying.Snapshot{
		Station: nowplaying.Station{
			ID:        id,
			Shortcode: r.Station.Shortcode,
			Name:      r.Station.Name,
			StreamURL: r.Station.ListenURL,
			LogoURL:   logoURL(r.Station.Shortcode),
		},
	}

	if r.NowPlaying != nil {
		current, err := r.NowPlaying.current()
		if err != nil {
			return nil, err
		}
		snap.Current = current
	}

	// An upcoming track without a song carries nothing to announce.
	if r.PlayingNext != nil && r.PlayingNext.Song != nil {
		snap.Next = r.PlayingNext.track()
	}
	return snap, nil
}

func (t *trackResponse) current() (*nowplaying.TrackInfo, error) {
	if t.Song == nil {
		return nil, errMissingSong
	}
	if t.PlayedAt == nil || t.Duration == nil {
		return nil, errMissingTiming
	}
	return t.track(), nil
}

func (t *trackResponse) track() *nowplaying.TrackInfo {
	info := &nowplaying.TrackInfo{
		Title:      t.Song.Title,
		Artist:     t.Song.Artist,
		ArtworkURL: t.Song.Art,
	}
	if t.PlayedAt != nil {
		info.StartedAt = time.Unix(*t.PlayedAt, 0)
	}
	if t.Duration != nil {
		info.Duration = time.Duration(*t.Duration * float64(time.Second))
	}
	return info
}
