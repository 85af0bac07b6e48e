// Command npdump prints what the configured server reports for its stations.
// It is a debugging aid for the now-playing feed.
//
// Usage:
//
//	npdump            list online stations
//	npdump <station>  print the station's now-playing snapshot
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/banabyte/airwaves/internal/azuracast"
	"github.com/banabyte/airwaves/internal/config"
	"github.com/banabyte/airwaves/internal/logging"
	"github.com/banabyte/airwaves/internal/nowplaying"
)

func main() {
	log := logging.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if !cfg.HasServer() {
		log.Fatal().Msg("no server configured")
	}

	client := azuracast.New(azuracast.Options{
		BaseURL:          cfg.Server.BaseURL,
		LogoBaseURL:      cfg.Server.LogoBaseURL,
		UserAgent:        cfg.Server.UserAgent,
		Timeout:          cfg.RequestTimeout(),
		ProbeConcurrency: cfg.ProbeConcurrency(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if len(os.Args) < 2 {
		stations, err := client.OnlineStations(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("list stations")
		}
		for _, st := range stations {
			fmt.Printf("%-6s %-20s %s\n", st.ID, st.Shortcode, st.Name)
		}
		return
	}

	id := nowplaying.StationID(os.Args[1])
	snap, err := client.FetchNowPlaying(ctx, id)
	if err != nil {
		log.Fatal().Err(err).Str("station", string(id)).Msg("fetch now playing")
	}
	printSnapshot(snap, time.Now())
}

func printSnapshot(snap *nowplaying.Snapshot, now time.Time) {
	fmt.Printf("Station: %s (%s)\n", snap.Station.Name, snap.Station.ID)
	fmt.Printf("Stream:  %s\n", snap.Station.StreamURL)

	if snap.Silent() {
		fmt.Println("Playing: nothing")
	} else {
		cur := snap.Current
		fmt.Printf("Playing: %s\n", cur.Label())
		fmt.Printf("Started: %s\n", humanize.RelTime(cur.StartedAt, now, "ago", "from now"))
		fmt.Printf("Ends:    %s (%s left)\n",
			humanize.RelTime(cur.EndsAt(), now, "ago", "from now"),
			cur.Remaining(now).Round(time.Second))
		if cur.ArtworkURL != "" {
			fmt.Printf("Artwork: %s\n", cur.ArtworkURL)
		}
	}

	if snap.Next != nil {
		fmt.Printf("Next:    %s\n", snap.Next.Label())
	}
}
