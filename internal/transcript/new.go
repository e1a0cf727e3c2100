package transcript

import (
	"github.com/nguyentantai21042004/yt-digest/internal/logger"
)

type implFetcher struct {
	source   CaptionSource
	parseID  IDParser
	language string
	logger   logger.Logger
}

// New creates a Fetcher reading captions in language from source.
// A nil parseID defaults to ParseVideoID.
func New(source CaptionSource, parseID IDParser, language string, log logger.Logger) Fetcher {
	if parseID == nil {
		parseID = ParseVideoID
	}
	if language == "" {
		language = "en"
	}
	return &implFetcher{
		source:   source,
		parseID:  parseID,
		language: language,
		logger:   log,
	}
}
