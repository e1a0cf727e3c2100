package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
)

// Run drives one session through Idle -> FetchingTranscript -> Summarizing -> Done.
// Any failure moves the session to Failed, is reported through p and skips the
// remaining stages. The session is returned in every case.
func (o *implOrchestrator) Run(ctx context.Context, videoURL string, p presenter.Presenter) (*Session, error) {
	startTime := time.Now()
	s := NewSession(videoURL)
	ctx = logger.WithSession(ctx, s.ID)

	if strings.TrimSpace(videoURL) == "" {
		s.Err = ErrEmptyURL
		p.Warning(UserMessage(ErrEmptyURL))
		return s, ErrEmptyURL
	}

	o.logger.Info(ctx, "Starting session for %s", videoURL)

	// Stage 1: transcript
	if err := s.advance(StateFetchingTranscript); err != nil {
		return s, err
	}
	p.Info("Fetching transcript...")

	text, err := o.fetcher.Fetch(ctx, videoURL)
	if err != nil {
		return o.fail(ctx, s, p, err)
	}
	if strings.TrimSpace(text) == "" {
		return o.fail(ctx, s, p, ErrEmptyTranscript)
	}
	s.Transcript = text
	p.Success("Transcript fetched successfully!")

	// Stage 2: summary
	if err := s.advance(StateSummarizing); err != nil {
		return s, err
	}
	p.Info("Generating summary...")

	summary, err := o.summarizer.Summarize(ctx, text)
	if err != nil {
		return o.fail(ctx, s, p, err)
	}
	s.Summary = summary
	if err := s.advance(StateDone); err != nil {
		return s, err
	}
	p.Success("Summary generated!")

	o.logger.Info(ctx, "Session completed in %s", time.Since(startTime).Round(time.Millisecond))
	return s, nil
}

func (o *implOrchestrator) fail(ctx context.Context, s *Session, p presenter.Presenter, err error) (*Session, error) {
	o.logger.Error(ctx, "Session failed in %s: %v", s.State, err)
	if advErr := s.advance(StateFailed); advErr != nil {
		return s, advErr
	}
	s.Err = err
	p.Error(UserMessage(err))
	return s, err
}
