package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acastellanos/tradegate/config"
	"github.com/acastellanos/tradegate/internal/adapters/kalshi"
	"github.com/acastellanos/tradegate/internal/adapters/openai"
	"github.com/acastellanos/tradegate/internal/adapters/storage"
	"github.com/acastellanos/tradegate/internal/advisor"
	"github.com/acastellanos/tradegate/internal/ports"
	"github.com/acastellanos/tradegate/internal/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	setupLogger(cfg.Log)

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

	slog.Info("tradegate starting",
		"config", *configPath,
		"venue", cfg.VenueBaseURL(),
		"auth", strategy.Kind,
		"ai_configured", cfg.OpenAI.APIKey != "",
		"persistence", cfg.Storage.DSN != "",
	)

	venue := kalshi.NewClient(cfg.VenueBaseURL(), strategy)

	var gen ports.TextGenerator
	if cfg.OpenAI.APIKey != "" {
		gen = openai.NewClient(openai.Config{
			APIKey:      cfg.OpenAI.APIKey,
			BaseURL:     cfg.OpenAI.BaseURL,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
		})
	}

	var recorder ports.EventRecorder
	if cfg.Storage.DSN != "" {
		rec, err := storage.NewSQLiteRecorder(cfg.Storage.DSN)
		if err != nil {
			slog.Error("failed to open event log", "err", err, "dsn", cfg.Storage.DSN)
			os.Exit(1)
		}
		defer rec.Close()
		recorder = rec
	}

	orch := advisor.New(venue, gen, recorder)
	srv := server.New(venue, venue, orch)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("listening", "addr", cfg.Server.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("shutdown did not finish cleanly", "err", err)
	}

	slog.Info("tradegate stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
