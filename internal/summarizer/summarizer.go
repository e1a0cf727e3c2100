package summarizer

import (
	"context"
	"fmt"
)

// Summarize fills the prompt template with the transcript verbatim and returns
// the model's answer unmodified. Long transcripts are sent as-is.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt, err := s.template.Format(map[string]any{"transcript": transcript})
	if err != nil {
		return "", fmt.Errorf("%w: format prompt: %w", ErrSummarizeFailed, err)
	}

	s.logger.Info(ctx, "Generating summary (policy: %s, prompt: %d bytes)", s.policy, len(prompt))

	summary, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarizeFailed, err)
	}

	s.logger.Debug(ctx, "Summary received: %d bytes", len(summary))
	return summary, nil
}
