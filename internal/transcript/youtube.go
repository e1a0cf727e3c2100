package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"
)

type youtubeSource struct {
	client *youtube.Client
}

// NewYouTubeSource returns a CaptionSource backed by YouTube's innertube API.
// A nil httpClient uses the library default.
func NewYouTubeSource(httpClient *http.Client) CaptionSource {
	return &youtubeSource{client: &youtube.Client{HTTPClient: httpClient}}
}

func (s *youtubeSource) Captions(ctx context.Context, videoID, language string) ([]Entry, error) {
	video, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", videoID, err)
	}

	if err := checkLanguage(video.CaptionTracks, language); err != nil {
		return nil, err
	}

	segments, err := s.client.GetTranscriptCtx(ctx, video, language)
	return classify(videoID, segments, err)
}

// checkLanguage fails with ErrNoTranscript when the video lists caption
// tracks but none in language. An empty list is left to the transcript call.
func checkLanguage(tracks []youtube.CaptionTrack, language string) error {
	if len(tracks) > 0 && !hasTrack(tracks, language) {
		return fmt.Errorf("%w (language %q)", ErrNoTranscript, language)
	}
	return nil
}

// classify turns a transcript response into entries or one of the fetch
// errors.
func classify(videoID string, segments youtube.VideoTranscript, err error) ([]Entry, error) {
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, ErrTranscriptsDisabled
		}
		return nil, fmt.Errorf("get transcript %s: %w", videoID, err)
	}

	entries := toEntries(segments)
	if len(entries) == 0 {
		return nil, ErrNoTranscript
	}
	return entries, nil
}

// hasTrack reports whether a caption track matches language exactly or as a
// regional variant ("en" matches "en-GB").
func hasTrack(tracks []youtube.CaptionTrack, language string) bool {
	for _, t := range tracks {
		if strings.EqualFold(t.LanguageCode, language) ||
			strings.HasPrefix(strings.ToLower(t.LanguageCode), strings.ToLower(language)+"-") {
			return true
		}
	}
	return false
}

func toEntries(segments youtube.VideoTranscript) []Entry {
	entries := make([]Entry, 0, len(segments))
	for _, seg := range segments {
		entries = append(entries, Entry{
			Text:     seg.Text,
			Start:    float64(seg.StartMs) / 1000,
			Duration: float64(seg.Duration) / 1000,
		})
	}
	return entries
}
