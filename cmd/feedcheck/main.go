// feedcheck fetches the market feed once and prints it as a table.
// Useful for verifying credentials and venue connectivity without starting
// the full gateway.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/acastellanos/tradegate/config"
	"github.com/acastellanos/tradegate/internal/adapters/kalshi"
	"github.com/acastellanos/tradegate/internal/adapters/notify"
	"github.com/acastellanos/tradegate/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	pemData, err := cfg.PrivateKeyPEM()
	if err != nil {
		slog.Error("failed to read private key", "err", err)
		os.Exit(1)
	}

	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{
		KeyID:         cfg.Venue.KeyID,
		PrivateKeyPEM: pemData,
		Email:         cfg.Venue.Email,
		Password:      cfg.Venue.Password,
	})
	if err != nil {
		slog.Error("failed to select auth strategy", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := kalshi.NewClient(cfg.VenueBaseURL(), strategy)
	feed := client.FetchMarkets(ctx)

	console := notify.NewConsole()
	if err := console.PrintFeed(feed); err != nil {
		slog.Error("failed to render feed", "err", err)
		os.Exit(1)
	}

	if feed.Source == domain.FeedError {
		os.Exit(1)
	}
}
