package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Station tuned on first start, before any station was remembered
	DefaultStation string `koanf:"default_station"`

	Server        ServerConfig        `koanf:"server"`
	Sync          SyncConfig          `koanf:"sync"`
	Player        PlayerConfig        `koanf:"player"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Log           LogConfig           `koanf:"log"`
}

// ServerConfig holds the AzuraCast server settings.
type ServerConfig struct {
	BaseURL          string `koanf:"base_url"`          // e.g., "https://radio.example.com"
	LogoBaseURL      string `koanf:"logo_base_url"`     // station logos served as <shortcode>.png
	UserAgent        string `koanf:"user_agent"`        // HTTP User-Agent override
	RequestTimeoutMS int    `koanf:"request_timeout_ms"` // per-request timeout (default: 10000)
	ProbeConcurrency int    `koanf:"probe_concurrency"` // concurrent online probes (default: 4)
}

// SyncConfig holds now-playing synchronization timing.
type SyncConfig struct {
	LeadTimeMS      int    `koanf:"lead_time_ms"`     // upcoming-track banner lead (default: 20000)
	CrossFadeMS     *int   `koanf:"crossfade_ms"`     // artwork fade (default: 500)
	MinRefetchMS    *int   `koanf:"min_refetch_ms"`   // song-end refetch floor, 0 disables (default: 1000)
	FallbackArtwork string `koanf:"fallback_artwork"` // shown when a track has no art
}

// PlayerConfig holds audio output settings.
type PlayerConfig struct {
	Volume *float64 `koanf:"volume"` // initial volume 0.0-1.0 when none was saved (default: 0.25)
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // notify on track change (default: true)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // log path (default: $XDG_STATE_HOME/airwaves/airwaves.log)
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize server URLs (remove trailing slash)
	cfg.Server.BaseURL = strings.TrimSuffix(cfg.Server.BaseURL, "/")
	cfg.Server.LogoBaseURL = strings.TrimSuffix(cfg.Server.LogoBaseURL, "/")

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/airwaves/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "airwaves", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasServer returns true if an AzuraCast server is configured.
func (c *Config) HasServer() bool {
	return c.Server.BaseURL != ""
}

// RequestTimeout returns the per-request timeout with defaults applied.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.RequestTimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Server.RequestTimeoutMS) * time.Millisecond
}

// ProbeConcurrency returns the online probe concurrency with defaults applied.
func (c *Config) ProbeConcurrency() int {
	if c.Server.ProbeConcurrency <= 0 {
		return 4
	}
	return c.Server.ProbeConcurrency
}

// SyncTiming is SyncConfig resolved to durations.
type SyncTiming struct {
	LeadTime        time.Duration
	CrossFade       time.Duration
	MinRefetch      time.Duration
	FallbackArtwork string
}

// GetSyncTiming returns the synchronization timing with defaults applied.
func (c *Config) GetSyncTiming() SyncTiming {
	timing := SyncTiming{
		LeadTime:        20 * time.Second,
		CrossFade:       500 * time.Millisecond,
		MinRefetch:      time.Second,
		FallbackArtwork: c.Sync.FallbackArtwork,
	}

	if c.Sync.LeadTimeMS > 0 {
		timing.LeadTime = time.Duration(c.Sync.LeadTimeMS) * time.Millisecond
	}
	if c.Sync.CrossFadeMS != nil && *c.Sync.CrossFadeMS >= 0 {
		timing.CrossFade = time.Duration(*c.Sync.CrossFadeMS) * time.Millisecond
	}
	if c.Sync.MinRefetchMS != nil && *c.Sync.MinRefetchMS >= 0 {
		timing.MinRefetch = time.Duration(*c.Sync.MinRefetchMS) * time.Millisecond
	}

	return timing
}

// InitialVolume returns the configured starting volume (default: 0.25).
func (c *Config) InitialVolume() float64 {
	if c.Player.Volume == nil || *c.Player.Volume < 0 || *c.Player.Volume > 1 {
		return 0.25
	}
	return *c.Player.Volume
}

// NotificationsEnabled returns whether track-change notifications are on (default: true).
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// LogLevel returns the configured log level name (default: "info").
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Log.Level)
}
