package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Fetch extracts the video ID, pulls its captions and joins them into one
// string. Every fragment is followed by a single space.
func (f *implFetcher) Fetch(ctx context.Context, videoURL string) (string, error) {
	videoID, err := f.parseID(videoURL)
	if err != nil {
		return "", err
	}

	f.logger.Info(ctx, "Fetching transcript for video %s (language: %s)", videoID, f.language)

	entries, err := f.source.Captions(ctx, videoID, f.language)
	if err != nil {
		if errors.Is(err, ErrNoTranscript) || errors.Is(err, ErrTranscriptsDisabled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	text := Join(entries)
	f.logger.Debug(ctx, "Transcript for %s: %d entries, %d bytes", videoID, len(entries), len(text))
	return text, nil
}

// Join concatenates entry texts in order, each followed by a single space.
func Join(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Text)
		sb.WriteByte(' ')
	}
	return sb.String()
}
