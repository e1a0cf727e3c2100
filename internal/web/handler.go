package web

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/yt-digest/internal/logger"
	"github.com/nguyentantai21042004/yt-digest/internal/pipeline"
	"github.com/nguyentantai21042004/yt-digest/internal/presenter"
)

type pageData struct {
	URL        string
	Notices    []presenter.Notice
	Summary    template.HTML
	Transcript string
}

// Handler serves the summarizer form.
type Handler struct {
	orchestrator pipeline.Orchestrator
	logger       logger.Logger
}

// NewHandler creates a Handler that runs every submission through o.
func NewHandler(o pipeline.Orchestrator, log logger.Logger) *Handler {
	return &Handler{orchestrator: o, logger: log}
}

// Index renders the empty form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

// Summarize runs one session for the submitted URL and renders the result.
// Every press starts from Idle with a fresh session.
func (h *Handler) Summarize(c *gin.Context) {
	videoURL := c.PostForm("url")
	rec := presenter.NewRecorder()

	// A stage, once started, runs to completion even if the browser goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	sess, err := h.orchestrator.Run(ctx, videoURL, rec)

	data := pageData{URL: videoURL, Notices: rec.Notices}
	if err == nil {
		data.Summary = renderMarkdown(sess.Summary)
		data.Transcript = sess.Transcript
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
