package azuracast

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

// Stations lists every station the server publishes. Entries without an id
// cannot be tuned and are left out.
func (c *Client) Stations(ctx context.Context) ([]nowplaying.Station, error) {
	const op = "list stations"

	var resp []stationResponse
	if err := c.getJSON(ctx, "/api/stations", "", op, &resp); err != nil {
		return nil, err
	}

	stations := make([]nowplaying.Station, 0, len(resp))
	for _, s := range resp {
		if s.ID == "" {
			continue
		}
		stations = append(stations, nowplaying.Station{
			ID:        nowplaying.StationID(s.ID),
			Shortcode: s.Shortcode,
			Name:      s.Name,
			StreamURL: s.ListenURL,
			LogoURL:   c.logoURL(s.Shortcode),
		})
	}
	return stations, nil
}

// OnlineStations lists the stations whose now-playing data reports them
// online. Stations whose probe fails are kept.
func (c *Client) OnlineStations(ctx context.Context) ([]nowplaying.Station, error) {
	stations, err := c.Stations(ctx)
	if err != nil {
		return nil, err
	}

	online := make([]bool, len(stations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.probeConcurrency)
	for i, st := range stations {
		g.Go(func() error {
			online[i] = c.probeOnline(gctx, st.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]nowplaying.Station, 0, len(stations))
	for i, st := range stations {
		if online[i] {
			result = append(result, st)
		}
	}
	return result, nil
}

func (c *Client) probeOnline(ctx context.Context, id nowplaying.StationID) bool {
	var resp nowPlayingResponse
	if err := c.getJSON(ctx, "/api/nowplaying/"+url.PathEscape(string(id)), id, "probe station", &resp); err != nil {
		return true
	}
	return resp.online()
}
