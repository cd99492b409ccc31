package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cortex/internal/classifier"
	"cortex/internal/config"
	"cortex/internal/logger"
	"cortex/internal/notes"
	"cortex/internal/pipeline"
	"cortex/internal/server"
	"cortex/internal/transcriber"
	"cortex/internal/watcher"
	"cortex/internal/ws"
	"cortex/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := os.Getenv("CORTEX_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Cortex starting")
	log.Info(ctx, "Data dir: %s", cfg.Paths.Data)

	store := notes.NewStore(cfg.Paths.Data, log)
	if err := store.Bootstrap(ctx); err != nil {
		log.Error(ctx, "Bootstrap failed: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	tr := transcriber.New(cfg.Whisper, exec, log)
	if err := tr.Init(ctx); err != nil {
		// The pipeline and listing APIs still work; transcription requests
		// report service unavailable until whisper is installed.
		log.Warn(ctx, "Whisper unavailable: %v", err)
	}
	defer tr.Close()

	if cfg.Classifier.APIKey == "" {
		log.Warn(ctx, "No classifier API key configured; using fallback organization")
	}

	cls := classifier.New(cfg.Classifier, log)
	pl := pipeline.New(store, cls, log)

	hub := ws.NewHub(log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go hub.Run(ctx)

	errChan := make(chan error, 2)

	if cfg.Paths.Import != "" {
		w, err := newImportWatcher(cfg, log, tr, pl, hub)
		if err != nil {
			log.Error(ctx, "Failed to create import watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}()
	}

	srv := server.New(cfg, log, store, pl, tr, hub)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	go func() {
		log.Info(ctx, "Listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Fatal: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "HTTP shutdown: %v", err)
	}

	cancel()
	log.Info(ctx, "Cortex stopped")
}

// newImportWatcher wires drop-folder ingestion: each audio file left in the
// import directory is transcribed and sent through the pipeline, then removed.
func newImportWatcher(cfg *config.Config, log logger.Logger, tr transcriber.Transcriber, pl pipeline.Pipeline, hub *ws.Hub) (watcher.Watcher, error) {
	if err := os.MkdirAll(cfg.Paths.Import, 0o755); err != nil {
		return nil, fmt.Errorf("create import dir: %w", err)
	}

	handler := func(ctx context.Context, audioPath string) error {
		result, err := tr.Transcribe(ctx, audioPath)
		if err != nil {
			return fmt.Errorf("transcribe: %w", err)
		}

		timestamp := time.Now().Format(time.RFC3339)
		if info, err := os.Stat(audioPath); err == nil {
			timestamp = info.ModTime().Format(time.RFC3339)
		}

		outcome, err := pl.Process(ctx, result.Text, notes.DefaultFolder, timestamp)
		if err != nil {
			return fmt.Errorf("process: %w", err)
		}

		hub.EntryCreated(&notes.Entry{
			ID:        outcome.ID,
			Preview:   outcome.Preview,
			Folder:    outcome.Folder,
			Timestamp: timestamp,
			Title:     outcome.Title,
		})

		if err := os.Remove(audioPath); err != nil {
			log.Warn(ctx, "Failed to remove ingested audio %s: %v", audioPath, err)
		}
		return nil
	}

	return watcher.New(cfg.Paths.Import, handler, log, cfg.Ingest.MaxConcurrent)
}
