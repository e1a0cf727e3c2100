package pipeline

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/yt-digest/internal/summarizer"
	"github.com/nguyentantai21042004/yt-digest/internal/transcript"
)

var (
	ErrEmptyURL          = errors.New("empty video url")
	ErrEmptyTranscript   = errors.New("empty transcript")
	ErrInvalidTransition = errors.New("invalid state transition")
)

// UserMessage converts a pipeline error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyURL):
		return "Please enter a YouTube video URL."
	case errors.Is(err, transcript.ErrInvalidVideoURL):
		return "Could not find a YouTube video ID in that URL."
	case errors.Is(err, transcript.ErrNoTranscript):
		return "Sorry, no transcript was found for this video. It might be disabled or not available in the requested language."
	case errors.Is(err, transcript.ErrTranscriptsDisabled):
		return "Transcripts are disabled for this video."
	case errors.Is(err, ErrEmptyTranscript):
		return "Transcript not available for this video."
	case errors.Is(err, summarizer.ErrSummarizeFailed):
		return fmt.Sprintf("An error occurred during summarization: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred while fetching the transcript: %v", err)
	}
}
