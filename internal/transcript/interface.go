package transcript

import "context"

// Fetcher turns a video URL into one transcript text blob.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

// Entry is one caption fragment. Only Text is consumed by the fetcher.
type Entry struct {
	Text     string
	Start    float64
	Duration float64
}

// CaptionSource returns the caption entries of a video in caption order.
type CaptionSource interface {
	Captions(ctx context.Context, videoID, language string) ([]Entry, error)
}

// IDParser extracts a video identifier from user input.
type IDParser func(videoURL string) (string, error)
