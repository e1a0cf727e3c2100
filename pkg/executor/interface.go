package executor

import (
	"context"
	"io"
)

// Executor runs external commands and returns their stdout.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)
}
