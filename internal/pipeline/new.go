package pipeline

import (
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/summarizer"
	"github.com/nguyentantai21042004/yt-digest/internal/transcript"
)

type implOrchestrator struct {
	fetcher    transcript.Fetcher
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates an Orchestrator over an already-initialized fetcher and summarizer.
func New(fetcher transcript.Fetcher, sum summarizer.Summarizer, log logger.Logger) Orchestrator {
	return &implOrchestrator{
		fetcher:    fetcher,
		summarizer: sum,
		logger:     log,
	}
}
