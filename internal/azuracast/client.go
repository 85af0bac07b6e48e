// Package azuracast provides a client for the AzuraCast public API.
package azuracast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/banabyte/airwaves/internal/nowplaying"
)

const (
	defaultUserAgent = "airwaves/1.0 (https://github.com/banabyte/airwaves)"
	defaultTimeout   = 10 * time.Second
	maxBodySize      = 1 << 20
)

var (
	errMissingStation   = errors.New("missing station")
	errMissingListenURL = errors.New("missing listen_url")
	errMissingSong      = errors.New("now_playing without song")
	errMissingTiming    = errors.New("now_playing without played_at or duration")
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	LogoBaseURL string
	UserAgent   string
	Timeout     time.Duration
	// ProbeConcurrency bounds concurrent now-playing probes when listing
	// online stations.
	ProbeConcurrency int
	HTTPClient       *http.Client
	Clock            clock.Clock
}

// Client is an AzuraCast API client.
type Client struct {
	baseURL          string
	logoBaseURL      string
	userAgent        string
	probeConcurrency int
	httpClient       *http.Client
	clock            clock.Clock
}

// New creates a new AzuraCast client.
func New(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.ProbeConcurrency <= 0 {
		opts.ProbeConcurrency = 4
	}
	return &Client{
		baseURL:          strings.TrimRight(opts.BaseURL, "/"),
		logoBaseURL:      strings.TrimRight(opts.LogoBaseURL, "/"),
		userAgent:        opts.UserAgent,
		probeConcurrency: opts.ProbeConcurrency,
		httpClient:       opts.HTTPClient,
		clock:            opts.Clock,
	}
}

// FetchNowPlaying fetches the now-playing snapshot of station id. It issues
// exactly one request and never retries.
func (c *Client) FetchNowPlaying(ctx context.Context, id nowplaying.StationID) (*nowplaying.Snapshot, error) {
	const op = "fetch now playing"

	var resp nowPlayingResponse
	if err := c.getJSON(ctx, "/api/nowplaying/"+url.PathEscape(string(id)), id, op, &resp); err != nil {
		return nil, err
	}

	snap, err := resp.snapshot(id, c.logoURL)
	if err != nil {
		return nil, nowplaying.ParseError(id, op, err)
	}
	snap.FetchedAt = c.clock.Now()
	return snap, nil
}

// StreamURL returns the listen URL of station id.
func (c *Client) StreamURL(ctx context.Context, id nowplaying.StationID) (string, error) {
	const op = "resolve stream"

	var resp stationResponse
	if err := c.getJSON(ctx, "/api/station/"+url.PathEscape(string(id)), id, op, &resp); err != nil {
		return "", err
	}
	if resp.ListenURL == "" {
		return "", nowplaying.ParseError(id, op, errMissingListenURL)
	}
	return resp.ListenURL, nil
}

func (c *Client) logoURL(shortcode string) string {
	if c.logoBaseURL == "" || shortcode == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", c.logoBaseURL, url.PathEscape(shortcode))
}

// getJSON performs a GET on path and decodes the body into v. Network and
// status failures are transport errors; undecodable bodies are parse errors.
func (c *Client) getJSON(ctx context.Context, path string, id nowplaying.StationID, op string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nowplaying.TransportError(id, op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nowplaying.TransportError(id, op, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nowplaying.TransportError(id, op, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nowplaying.TransportError(id, op, fmt.Errorf("read body: %w", err))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return nowplaying.ParseError(id, op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
