package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/batch"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/config"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/logger"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/server"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/watcher"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/internal/ytdlp"
	"github.com/nguyentantai21042004/yt-subtitles-mcp/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (optional, defaults apply if missing)")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (stderr only; stdout carries the MCP protocol)
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Starting %s v%s", cfg.Server.Name, cfg.Server.Version)

	// Initialize dependencies
	exec := executor.New()
	svc := ytdlp.New(cfg, exec, log)

	// Resolve yt-dlp availability once; every operation reads this flag.
	available := svc.Probe(ctx)
	if available && !cfg.YTDLP.SkipUpdate {
		// Fire-and-forget; outcome never affects startup.
		svc.StartBackgroundUpdate(ctx)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	// Optional batch mode: watch an inbox for URL request files
	if cfg.Batch.Enabled {
		if err := ensureDirectories(cfg); err != nil {
			log.Error(ctx, "Failed to create directories: %v", err)
			os.Exit(1)
		}

		handler := batch.New(cfg, svc, log)
		w, err := watcher.New(cfg.Batch.Inbox, handler.Process, log, cfg.Batch.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				log.Error(ctx, "Watcher error: %v", err)
			}
		}()

		log.Info(ctx, "Batch mode enabled. Monitoring: %s", cfg.Batch.Inbox)
	}

	log.Info(ctx, "Serving MCP over stdio")

	srv := server.New(cfg, svc, log, available)
	if err := srv.ServeStdio(); err != nil {
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Server stopped")
}

// ensureDirectories creates the batch directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Batch.Inbox,
		cfg.Batch.Transcripts,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
