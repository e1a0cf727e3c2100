package diagram

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/pkg/executor"
)

type graphvizRenderer struct {
	exec    executor.Executor
	dotPath string
}

// NewGraphvizRenderer renders locally by piping DOT source into `dot -Tsvg`.
func NewGraphvizRenderer(exec executor.Executor, dotPath string) Renderer {
	if dotPath == "" {
		dotPath = "dot"
	}
	return &graphvizRenderer{exec: exec, dotPath: dotPath}
}

func (r *graphvizRenderer) Render(ctx context.Context, g pipeline.Graph) ([]byte, error) {
	out, err := r.exec.ExecuteWithInput(ctx, strings.NewReader(g.DOT()), r.dotPath, "-Tsvg")
	if err != nil {
		return nil, fmt.Errorf("graphviz: %w", err)
	}
	return out, nil
}
