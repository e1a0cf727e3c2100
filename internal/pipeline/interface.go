package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
)

// Orchestrator runs fetch then summarize for one URL, stopping at the first failure.
type Orchestrator interface {
	Run(ctx context.Context, videoURL string, p presenter.Presenter) (*Session, error)
}
