package azuracast

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

const jazzNowPlaying = `{
	"station": {"id": 1, "name": "Jazz FM", "shortcode": "jazz", "listen_url": "http://radio.example/listen/jazz/radio.mp3"},
	"now_playing": {
		"played_at": 1700000000,
		"duration": 200,
		"song": {"title": "So What", "artist": "Miles Davis", "art": "http://radio.example/art/1.png"}
	},
	"playing_next": {
		"played_at": 1700000200,
		"duration": 180,
		"song": {"title": "Blue in Green", "artist": "Miles Davis", "art": ""}
	},
	"is_online": true
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *clock.Mock) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_030, 0))
	return New(Options{
		BaseURL:     srv.URL + "/",
		LogoBaseURL: "http://radio.example/static/logos",
		HTTPClient:  srv.Client(),
		Clock:       clk,
	}), clk
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestFetchNowPlaying(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/nowplaying/1", serveJSON(jazzNowPlaying))
	c, clk := newTestClient(t, mux)

	snap, err := c.FetchNowPlaying(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, nowplaying.Station{
		ID:        "1",
		Shortcode: "jazz",
		Name:      "Jazz FM",
		StreamURL: "http://radio.example/listen/jazz/radio.mp3",
		LogoURL:   "http://radio.example/static/logos/jazz.png",
	}, snap.Station)

	require.NotNil(t, snap.Current)
	assert.Equal(t, "So What", snap.Current.Title)
	assert.Equal(t, "Miles Davis", snap.Current.Artist)
	assert.Equal(t, "http://radio.example/art/1.png", snap.Current.ArtworkURL)
	assert.Equal(t, 200*time.Second, snap.Current.Duration)
	assert.Equal(t, time.Unix(1_700_000_000, 0), snap.Current.StartedAt)
	assert.Equal(t, 170*time.Second, snap.Current.Remaining(clk.Now()))

	require.NotNil(t, snap.Next)
	assert.Equal(t, "Blue in Green", snap.Next.Title)
	assert.Equal(t, clk.Now(), snap.FetchedAt)
}

func TestFetchNowPlaying_Silence(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/nowplaying/2", serveJSON(`{
		"station": {"name": "Talk", "shortcode": "talk", "listen_url": "http://radio.example/listen/talk/radio.mp3"},
		"now_playing": null,
		"playing_next": null
	}`))
	c, _ := newTestClient(t, mux)

	snap, err := c.FetchNowPlaying(context.Background(), "2")
	require.NoError(t, err)

	assert.True(t, snap.Silent())
	assert.Nil(t, snap.Next)
	assert.Equal(t, "Talk", snap.Station.Name)
}

func TestFetchNowPlaying_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: nowplaying.ErrTransport,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			want: nowplaying.ErrTransport,
		},
		{name: "malformed json", handler: serveJSON(`{"station": `), want: nowplaying.ErrParse},
		{name: "missing station", handler: serveJSON(`{"now_playing": null}`), want: nowplaying.ErrParse},
		{
			name:    "song missing",
			handler: serveJSON(`{"station": {"name": "x"}, "now_playing": {"played_at": 1, "duration": 2}}`),
			want:    nowplaying.ErrParse,
		},
		{
			name:    "timing missing",
			handler: serveJSON(`{"station": {"name": "x"}, "now_playing": {"song": {"title": "t"}}}`),
			want:    nowplaying.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)

			snap, err := c.FetchNowPlaying(context.Background(), "1")

			assert.Nil(t, snap)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var fe *nowplaying.FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, nowplaying.StationID("1"), fe.Station)
		})
	}
}

func TestFetchNowPlaying_Unreachable(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := c.FetchNowPlaying(context.Background(), "1")

	assert.ErrorIs(t, err, nowplaying.ErrTransport)
}

func TestFetchNowPlaying_SingleRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.FetchNowPlaying(context.Background(), "1")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStreamURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/station/1", serveJSON(`{"id": 1, "listen_url": "http://radio.example/listen/jazz/radio.mp3"}`))
	mux.HandleFunc("/api/station/2", serveJSON(`{"id": 2}`))
	c, _ := newTestClient(t, mux)

	u, err := c.StreamURL(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "http://radio.example/listen/jazz/radio.mp3", u)

	_, err = c.StreamURL(context.Background(), "2")
	assert.ErrorIs(t, err, nowplaying.ErrParse)
}

func TestOnlineStations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stations", serveJSON(`[
		{"id": 1, "name": "Jazz FM", "shortcode": "jazz", "listen_url": "http://radio.example/listen/jazz/radio.mp3"},
		{"id": "2", "name": "Rock", "shortcode": "rock"},
		{"id": 3, "name": "Broken", "shortcode": "broken"},
		{"name": "Unlisted", "shortcode": "unlisted"},
		{"id": "", "name": "Blank", "shortcode": "blank"}
	]`))
	mux.HandleFunc("/api/nowplaying/1", serveJSON(`{"station": {"name": "Jazz FM"}, "is_online": true}`))
	mux.HandleFunc("/api/nowplaying/2", serveJSON(`{"station": {"name": "Rock"}, "is_online": false}`))
	mux.HandleFunc("/api/nowplaying/3", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c, _ := newTestClient(t, mux)

	all, err := c.Stations(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, nowplaying.StationID("2"), all[1].ID)
	assert.Equal(t, "http://radio.example/static/logos/jazz.png", all[0].LogoURL)

	online, err := c.OnlineStations(context.Background())
	require.NoError(t, err)

	var ids []nowplaying.StationID
	for _, st := range online {
		ids = append(ids, st.ID)
	}
	assert.Equal(t, []nowplaying.StationID{"1", "3"}, ids)
}

func TestStationID_Unmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    stationID
		wantErr bool
	}{
		{`12`, "12", false},
		{`"abc"`, "abc", false},
		{`1.5`, "", true},
		{`true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id stationID
			err := id.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
