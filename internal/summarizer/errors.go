package summarizer

import "errors"

var ErrSummarizeFailed = errors.New("summarization failed")
