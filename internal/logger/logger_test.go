package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level, "text")
			if l == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", "text")

	l.Debug(ctx, "hidden %d", 1)
	l.Info(ctx, "shown %s", "info")
	l.Error(ctx, "shown %s", "error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "shown info") || !strings.Contains(out, "shown error") {
		t.Errorf("expected info and error lines, got %q", out)
	}
}

func TestSessionField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", "json")

	ctx := WithSession(context.Background(), "abc-123")
	l.Info(ctx, "fetching")

	out := buf.String()
	if !strings.Contains(out, "session") || !strings.Contains(out, "abc-123") {
		t.Errorf("expected session field in %q", out)
	}
	if got := SessionFrom(ctx); got != "abc-123" {
		t.Errorf("SessionFrom() = %q, want %q", got, "abc-123")
	}
	if got := SessionFrom(context.Background()); got != "" {
		t.Errorf("SessionFrom(empty) = %q, want empty", got)
	}
}
