package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
)

// Writer exports a finished session to a .docx file.
type Writer struct {
	path   string
	logger logger.Logger
	now    func() time.Time
}

// NewWriter creates a Writer saving reports to path.
func NewWriter(path string, log logger.Logger) *Writer {
	return &Writer{path: path, logger: log, now: time.Now}
}

// Write renders the session's summary and transcript. Only Done sessions
// are exported.
func (w *Writer) Write(ctx context.Context, s *pipeline.Session) error {
	if s.State != pipeline.StateDone {
		return fmt.Errorf("session %s is %s, not Done", s.ID, s.State)
	}

	doc := Document{
		Title:      "YouTube Video Summary",
		Subtitle:   fmt.Sprintf("%s · %s", s.URL, w.now().Format("2006-01-02 15:04")),
		Summary:    s.Summary,
		Transcript: s.Transcript,
	}
	if err := render(doc, w.path); err != nil {
		return fmt.Errorf("write docx %s: %w", w.path, err)
	}

	w.logger.Info(ctx, "Report saved: %s", w.path)
	return nil
}

// WriteBestEffort logs a failed export instead of returning it.
func (w *Writer) WriteBestEffort(ctx context.Context, s *pipeline.Session) {
	if err := w.Write(ctx, s); err != nil {
		w.logger.Warn(ctx, "Report export skipped: %v", err)
	}
}
