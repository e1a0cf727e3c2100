package summarizer

import "context"

// Summarizer turns a transcript into a model-generated summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Model sends one prompt to a generative model and returns its text.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
