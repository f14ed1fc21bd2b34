package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/genai"

	"github.com/ayush078/content-sumarizer/internal/config"
	"github.com/ayush078/content-sumarizer/internal/dispatch"
	"github.com/ayush078/content-sumarizer/internal/logger"
	"github.com/ayush078/content-sumarizer/internal/media"
	"github.com/ayush078/content-sumarizer/internal/server"
	"github.com/ayush078/content-sumarizer/internal/summarizer"
	"github.com/ayush078/content-sumarizer/internal/webpage"
	"github.com/ayush078/content-sumarizer/internal/youtube"
)

func main() {
	ctx := context.Background()

	// Load configuration, falling back to defaults when no file is present
	cfg, err := config.Load("config.yaml")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Multimodal Content Summarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Transcript language: %s", cfg.Extract.Language)

	if cfg.Gemini.APIKey == "" {
		log.Warn(ctx, "No GOOGLE_API_KEY or GEMINI_API_KEY set; remote calls will fail")
	}

	// One long-lived Gemini client for the process lifetime
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error(ctx, "Failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	agent := summarizer.New(client, cfg.Gemini.Model, log)
	uploader := media.New(client, cfg.PollInterval(), cfg.Upload.MaxPolls, log)
	transcripts := youtube.New(cfg.Extract.Language, log)
	webpages := webpage.New(cfg.FetchTimeout(), log)

	dispatcher := dispatch.New(transcripts, webpages, uploader, agent, cfg.Extract.MaxContentChars, log)
	srv := server.New(dispatcher, cfg.Upload.TempDir, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run(ctx, cfg.Server.Addr)
	}()

	log.Info(ctx, "Listening on %s", cfg.Server.Addr)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		// Wait for in-flight requests to drain before exiting.
		if err := <-errChan; err != nil {
			log.Error(ctx, "Shutdown error: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Server error: %v", err)
		}
	}

	log.Info(ctx, "Summarizer stopped")
}
