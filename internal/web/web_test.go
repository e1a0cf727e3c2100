package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/transcript"
)

type stubFetcher struct {
	text string
	err  error
}

func (f stubFetcher) Fetch(context.Context, string) (string, error) {
	return f.text, f.err
}

type stubSummarizer struct {
	summary string
	calls   *int
}

func (s stubSummarizer) Summarize(context.Context, string) (string, error) {
	*s.calls++
	return s.summary, nil
}

func newTestRouter(f stubFetcher, calls *int) *gin.Engine {
	return newTestRouterWithSummary(f, "Short summary", calls)
}

func newTestRouterWithSummary(f stubFetcher, summary string, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("error", "text")
	o := pipeline.New(f, stubSummarizer{summary: summary, calls: calls}, log)
	return NewRouter(NewHandler(o, log), log)
}

func postURL(r *gin.Engine, videoURL string) *httptest.ResponseRecorder {
	form := url.Values{"url": {videoURL}}
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{}, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "YouTube Video Summarizer")
	assert.Contains(t, body, "Generate Summary")
	assert.NotContains(t, body, "View Full Transcript")
}

func TestSummarizeSuccess(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{text: "Hello world "}, &calls)

	w := postURL(r, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Transcript fetched successfully!")
	assert.Contains(t, body, "Summary generated!")
	assert.Contains(t, body, "Short summary")
	assert.Contains(t, body, "View Full Transcript")
	assert.Contains(t, body, "Hello world")
	assert.Equal(t, 1, calls)
}

func TestSummarizeEmptyURL(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{text: "unused"}, &calls)

	w := postURL(r, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a YouTube video URL.")
	assert.Equal(t, 0, calls)
}

func TestSummarizeTranscriptsDisabled(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{err: transcript.ErrTranscriptsDisabled}, &calls)

	w := postURL(r, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Transcripts are disabled for this video.")
	assert.NotContains(t, body, "View Full Transcript")
	assert.Equal(t, 0, calls)
}

func TestSummarizeEscapesOutput(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{text: "<script>alert(1)</script>"}, &calls)

	w := postURL(r, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestSummarizeRendersMarkdown(t *testing.T) {
	calls := 0
	summary := "## 🎯 Key Points\n- **Main idea**: Go is fun\n- Second point"
	r := newTestRouterWithSummary(stubFetcher{text: "Hello world "}, summary, &calls)

	w := postURL(r, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>🎯 Key Points</h2>")
	assert.Contains(t, body, "<strong>Main idea</strong>")
	assert.Contains(t, body, "<li>Second point</li>")
	assert.NotContains(t, body, "## 🎯")
	assert.NotContains(t, body, "**Main idea**")
}

func TestSummarizeDropsRawHTMLInSummary(t *testing.T) {
	calls := 0
	summary := "Before\n\n<script>alert(1)</script>\n\nAfter <img src=x onerror=alert(2)>"
	r := newTestRouterWithSummary(stubFetcher{text: "Hello world "}, summary, &calls)

	w := postURL(r, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	body := w.Body.String()
	assert.Contains(t, body, "Before")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, "onerror=alert(2)")
}

func TestRenderMarkdown(t *testing.T) {
	out := string(renderMarkdown("1. first\n2. **second**"))
	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "<strong>second</strong>")
}

func TestHealthz(t *testing.T) {
	calls := 0
	r := newTestRouter(stubFetcher{}, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
