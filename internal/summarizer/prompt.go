package summarizer

import (
	"fmt"

	"github.com/tmc/langchaingo/prompts"
)

// Policy selects one of the fixed prompt templates.
type Policy string

const (
	// PolicyHighlights asks for a summary whose key points carry emojis.
	PolicyHighlights Policy = "highlights"
	// PolicyBrief asks for a plain summary under 200 words.
	PolicyBrief Policy = "brief"
)

const highlightsTemplate = `You are an expert video summarizer. Please provide a concise and engaging summary of the following transcript. Highlight the key points and main ideas with emojis.

Transcript:
"{{.transcript}}"

Summary:`

const briefTemplate = `You are an expert video summarizer. Summarize the following video transcript in a clear, concise and engaging way. Highlight key points, main ideas, and important takeaways. Keep it under 200 words: {{.transcript}}`

func templateFor(policy Policy) (prompts.PromptTemplate, error) {
	switch policy {
	case PolicyHighlights:
		return prompts.NewPromptTemplate(highlightsTemplate, []string{"transcript"}), nil
	case PolicyBrief:
		return prompts.NewPromptTemplate(briefTemplate, []string{"transcript"}), nil
	default:
		return prompts.PromptTemplate{}, fmt.Errorf("unknown summary policy %q", policy)
	}
}
