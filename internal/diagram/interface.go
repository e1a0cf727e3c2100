package diagram

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
)

// ErrDiagramRender marks every failure of the diagram side path.
var ErrDiagramRender = errors.New("diagram render failed")

// Renderer turns a stage graph into image bytes.
type Renderer interface {
	Render(ctx context.Context, g pipeline.Graph) ([]byte, error)
}
