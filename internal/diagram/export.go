package diagram

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
)

// Exporter renders a graph and saves the image to a file.
type Exporter struct {
	renderer Renderer
	fs       afero.Fs
	output   string
	logger   logger.Logger
}

// NewExporter creates an Exporter writing renderer output to output on fs.
func NewExporter(renderer Renderer, fs afero.Fs, output string, log logger.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		fs:       fs,
		output:   output,
		logger:   log,
	}
}

// Export renders g and writes it to the output path. Every error wraps
// ErrDiagramRender.
func (e *Exporter) Export(ctx context.Context, g pipeline.Graph) error {
	data, err := e.renderer.Render(ctx, g)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDiagramRender, err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return fmt.Errorf("%w: renderer returned %s, not an image", ErrDiagramRender, mtype.String())
	}

	if err := afero.WriteFile(e.fs, e.output, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrDiagramRender, e.output, err)
	}

	e.logger.Info(ctx, "Execution graph saved: %s (%s, %s)", e.output, mtype.String(), humanize.Bytes(uint64(len(data))))
	return nil
}

// ExportBestEffort runs Export and reports the outcome through p. Failures
// never leave this function.
func (e *Exporter) ExportBestEffort(ctx context.Context, g pipeline.Graph, p presenter.Presenter) {
	if err := e.Export(ctx, g); err != nil {
		e.logger.Warn(ctx, "Diagram export skipped: %v", err)
		p.Warning(fmt.Sprintf("Error generating execution graph: %v", err))
		return
	}
	p.Success(fmt.Sprintf("Execution graph saved as '%s'", e.output))
}
