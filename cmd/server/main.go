package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/slidedeck/internal/api"
	"github.com/dgallion1/slidedeck/internal/config"
	"github.com/dgallion1/slidedeck/internal/metrics"
	"github.com/dgallion1/slidedeck/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pres, err := config.LoadPresentation(cfg.PresentationConfig)
	if err != nil {
		log.Error("invalid presentation config", "path", cfg.PresentationConfig, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stats := metrics.NewCompileStats(time.Hour)
	sessions := session.NewManager(cfg, stats, log)
	sessions.Start(ctx)

	srv := api.NewServer(sessions, stats, pres, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		sessions.Stop()
	}()

	log.Info("starting slidedeck", "port", cfg.Port, "theme", pres.Theme.Name)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
