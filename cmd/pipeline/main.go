package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
	"github.com/nguyentantai21042004/yt-digest/internal/diagram"
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
	"github.com/nguyentantai21042004/yt-digest/internal/summarizer"
	"github.com/nguyentantai21042004/yt-digest/internal/transcript"
	"github.com/nguyentantai21042004/yt-digest/pkg/executor"
)

func main() {
	os.Exit(execute(context.Background(), newApp))
}

// execute builds the app and runs one session. It returns the process exit
// status.
func execute(ctx context.Context, build func(context.Context) (*app, error)) int {
	a, err := build(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}
	return a.run(ctx)
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	model, err := summarizer.NewModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize model: %w", err)
	}
	sum, err := summarizer.New(model, summarizer.Policy(cfg.Pipeline.Policy), log)
	if err != nil {
		return nil, fmt.Errorf("initialize summarizer: %w", err)
	}
	fetcher := transcript.New(
		transcript.NewYouTubeSource(http.DefaultClient),
		transcript.ParserFor(cfg.Transcript.URLParser),
		cfg.Transcript.Language,
		log,
	)

	return &app{
		cfg:     cfg,
		log:     log,
		console: presenter.NewConsole(os.Stdout),
		orch:    pipeline.New(fetcher, sum, log),
		prompt:  promptURL,
	}, nil
}

func promptURL() (string, error) {
	var videoURL string
	input := huh.NewInput().
		Title("Enter YouTube video URL").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("URL cannot be empty")
			}
			return nil
		}).
		Value(&videoURL)

	form := huh.NewForm(huh.NewGroup(input)).
		WithAccessible(os.Getenv("ACCESSIBLE") != "")
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(videoURL), nil
}

func newRenderer(cfg *config.Config) diagram.Renderer {
	if cfg.Diagram.Renderer == config.RendererGraphviz {
		return diagram.NewGraphvizRenderer(executor.New(), cfg.Diagram.DotPath)
	}
	return diagram.NewKrokiRenderer(cfg.Diagram.KrokiURL, cfg.Diagram.Timeout)
}
