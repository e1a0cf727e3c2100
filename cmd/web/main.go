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

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/summarizer"
	"github.com/nguyentantai21042004/yt-digest/internal/transcript"
	"github.com/nguyentantai21042004/yt-digest/internal/web"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "YouTube Summarizer (web)")
	log.Info(ctx, "LLM: %s", cfg.LLM.Provider)

	// Clients are built once and shared by every request.
	model, err := summarizer.NewModel(ctx, cfg)
	if err != nil {
		log.Error(ctx, "Failed to initialize model: %v", err)
		os.Exit(1)
	}
	sum, err := summarizer.New(model, summarizer.Policy(cfg.Web.Policy), log)
	if err != nil {
		log.Error(ctx, "Failed to initialize summarizer: %v", err)
		os.Exit(1)
	}
	fetcher := transcript.New(
		transcript.NewYouTubeSource(http.DefaultClient),
		transcript.ParserFor(cfg.Transcript.URLParser),
		cfg.Transcript.Language,
		log,
	)
	orch := pipeline.New(fetcher, sum, log)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Web.Addr,
		Handler:           web.NewRouter(web.NewHandler(orch, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Web.Addr)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "Server stopped")
}
