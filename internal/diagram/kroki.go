package diagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
)

// maxImageBytes caps the size of a rendering service response.
const maxImageBytes = 8 << 20

type krokiRenderer struct {
	baseURL string
	client  *http.Client
}

// NewKrokiRenderer posts Mermaid source to a Kroki server. timeout bounds
// the whole request.
func NewKrokiRenderer(baseURL string, timeout time.Duration) Renderer {
	return &krokiRenderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type krokiRequest struct {
	DiagramSource string `json:"diagram_source"`
}

func (k *krokiRenderer) Render(ctx context.Context, g pipeline.Graph) ([]byte, error) {
	body, err := json.Marshal(krokiRequest{DiagramSource: g.Mermaid()})
	if err != nil {
		return nil, fmt.Errorf("encode kroki request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.baseURL+"/mermaid/svg", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build kroki request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kroki request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read kroki response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kroki returned %s: %s", resp.Status, strings.TrimSpace(string(data[:min(len(data), 512)])))
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("kroki response exceeds %d bytes", maxImageBytes)
	}
	return data, nil
}
