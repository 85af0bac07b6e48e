package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/banabyte/airwaves/internal/app"
	"github.com/banabyte/airwaves/internal/azuracast"
	"github.com/banabyte/airwaves/internal/config"
	"github.com/banabyte/airwaves/internal/errmsg"
	"github.com/banabyte/airwaves/internal/eventloop"
	"github.com/banabyte/airwaves/internal/logging"
	"github.com/banabyte/airwaves/internal/mpris"
	"github.com/banabyte/airwaves/internal/notify"
	"github.com/banabyte/airwaves/internal/nowplaying"
	"github.com/banabyte/airwaves/internal/player"
	"github.com/banabyte/airwaves/internal/state"
	"github.com/banabyte/airwaves/internal/stderr"
)

const notificationIcon = "audio-x-generic"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasServer() {
		return errors.New("no server configured: set [server] base_url in ~/.config/airwaves/config.toml")
	}

	logger, logFile, err := logging.Open(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Audio libraries write to fd 2 directly; keep that off the TUI.
	if err := stderr.Start(logger.With().Str("component", "stderr").Logger()); err != nil {
		logger.Warn().Err(err).Msg("stderr capture unavailable")
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	clk := clock.New()
	client := azuracast.New(azuracast.Options{
		BaseURL:          cfg.Server.BaseURL,
		LogoBaseURL:      cfg.Server.LogoBaseURL,
		UserAgent:        cfg.Server.UserAgent,
		Timeout:          cfg.RequestTimeout(),
		ProbeConcurrency: cfg.ProbeConcurrency(),
		Clock:            clk,
	})

	p := player.New(nil, logger.With().Str("component", "player").Logger())
	defer p.Stop()
	restoreVolume(p, stateMgr, cfg, logger)

	sessions, closeSessions := mediaSessions(p, cfg, logger)
	defer closeSessions()

	loop := eventloop.New(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("event loop stopped")
		}
	}()

	bridge := app.NewViewBridge()
	defer bridge.Close()

	engine := nowplaying.New(loop, nowplaying.Options{
		Fetcher:       client,
		Streams:       client,
		View:          bridge,
		MediaSessions: sessions,
		Transport:     p,
		Store:         stateMgr,
		Clock:         clk,
		Logger:        logger.With().Str("component", "nowplaying").Logger(),
		Config:        engineConfig(cfg),
	})
	defer engine.Close()

	m, err := app.New(app.Deps{
		Stations:       client,
		Tuner:          engine,
		Player:         p,
		State:          stateMgr,
		Bridge:         bridge,
		DefaultStation: nowplaying.StationID(cfg.DefaultStation),
		Clock:          clk,
		Logger:         logger.With().Str("component", "app").Logger(),
	})
	if err != nil {
		return err
	}

	logger.Info().Str("server", cfg.Server.BaseURL).Msg("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func engineConfig(cfg *config.Config) nowplaying.Config {
	timing := cfg.GetSyncTiming()
	c := nowplaying.DefaultConfig()
	c.LeadTime = timing.LeadTime
	c.CrossFade = timing.CrossFade
	c.MinRefetchInterval = timing.MinRefetch
	c.FallbackArtwork = timing.FallbackArtwork
	c.FetchTimeout = cfg.RequestTimeout()
	return c
}

// restoreVolume applies the saved volume, or the configured one on first run.
func restoreVolume(p *player.Player, s state.Interface, cfg *config.Config, logger zerolog.Logger) {
	vol, err := s.GetVolume()
	if err != nil {
		logger.Warn().Err(err).Msg("read saved volume")
	}
	if vol == nil {
		p.SetVolume(cfg.InitialVolume())
		return
	}
	p.SetVolume(vol.Volume)
	p.SetMuted(vol.Muted)
}

// mediaSessions starts the platform mirrors of the current track. Failures
// only disable the affected mirror.
func mediaSessions(p player.Interface, cfg *config.Config, logger zerolog.Logger) ([]nowplaying.MediaSession, func()) {
	var (
		sessions []nowplaying.MediaSession
		closers  []io.Closer
	)

	if adapter, err := mpris.New(p); err != nil {
		logger.Warn().Err(err).Msg("mpris unavailable")
	} else {
		sessions = append(sessions, adapter)
		closers = append(closers, adapter)
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New("Airwaves")
		if err != nil {
			logger.Warn().Err(err).Msg("notifications unavailable")
		} else {
			tn := notify.NewTrackNotifier(n, notificationIcon, logger.With().Str("component", "notify").Logger())
			sessions = append(sessions, tn)
			closers = append(closers, closerFunc(tn.Close))
		}
	}

	return sessions, func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn().Err(err).Msg("close media session")
			}
		}
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
