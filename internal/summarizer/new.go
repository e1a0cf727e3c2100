package summarizer

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/prompts"

	"github.com/nguyentantai21042004/yt-digest/internal/config"
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
)

type implSummarizer struct {
	model    Model
	policy   Policy
	template prompts.PromptTemplate
	logger   logger.Logger
}

// New creates a Summarizer that fills the policy's template and sends it to model.
func New(model Model, policy Policy, log logger.Logger) (Summarizer, error) {
	tmpl, err := templateFor(policy)
	if err != nil {
		return nil, err
	}
	return &implSummarizer{
		model:    model,
		policy:   policy,
		template: tmpl,
		logger:   log,
	}, nil
}

// NewModel builds the model backend selected by llm.provider.
func NewModel(ctx context.Context, cfg *config.Config) (Model, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOllama:
		return NewOllamaModel(cfg.Ollama.ServerURL, cfg.Ollama.Model)
	case config.ProviderGemini:
		return NewGeminiModel(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
