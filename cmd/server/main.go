package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/napolitain/solver-pnw/internal/config"
	"github.com/napolitain/solver-pnw/internal/logging"
	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/napolitain/solver-pnw/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to YAML config file")
	listen     = flag.String("listen", "", "Listen address (overrides config)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if cfg.LogFormat == "auto" {
		cfg.LogFormat = "json"
	}
	log := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return err
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	client := pnw.NewClient(cfg.APIKey, cfg.APIURL).WithLogger(log)
	if !client.Enabled() {
		log.Warn("no API key configured, nation endpoints disabled")
	}

	srv := &server{
		db:      db,
		nations: client,
		strict:  cfg.Strict,
		log:     log,
		now:     time.Now,
	}

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.Listen, "db", cfg.DBPath)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
