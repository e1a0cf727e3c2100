package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
	"github.com/nguyentantai21042004/yt-digest/internal/diagram"
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
	"github.com/nguyentantai21042004/yt-digest/internal/report"
)

// app is one pipeline run with its dependencies already built.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	console *presenter.Console
	orch    pipeline.Orchestrator
	prompt  func() (string, error)
}

// run asks for a URL, drives the session and prints the result. It returns 0
// when the session is Done and 1 otherwise. Diagram and report exports never
// change the status.
func (a *app) run(ctx context.Context) int {
	videoURL, err := a.prompt()
	if err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			a.log.Error(ctx, "Failed to read URL: %v", err)
		}
		return 1
	}

	sess, err := a.orch.Run(ctx, videoURL, a.console)
	if err != nil {
		return 1
	}

	a.console.Summary(sess.Summary)
	if a.cfg.Pipeline.ShowTranscript {
		a.console.Transcript(sess.Transcript)
	}

	if a.cfg.Diagram.IsEnabled() {
		exporter := diagram.NewExporter(newRenderer(a.cfg), afero.NewOsFs(), a.cfg.Diagram.Output, a.log)
		exporter.ExportBestEffort(ctx, pipeline.StageGraph, a.console)
	}
	if a.cfg.Report.DocxPath != "" {
		report.NewWriter(a.cfg.Report.DocxPath, a.log).WriteBestEffort(ctx, sess)
	}

	return 0
}
