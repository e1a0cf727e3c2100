package transcript

import "errors"

var (
	ErrNoTranscript        = errors.New("no transcript found for this video")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrFetchFailed         = errors.New("transcript fetch failed")
	ErrInvalidVideoURL     = errors.New("no video id in url")
)
