package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(handler)
	logger.Info("laporan created", "id", 42)

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		out := buf.String()
		if !strings.Contains(out, "laporan created") || !strings.Contains(out, "id=42") {
			t.Errorf("%s handler output missing record: %q", name, out)
		}
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("handler should be enabled when any child accepts the level")
	}

	logger := slog.New(handler)
	logger.Debug("verbose detail")

	if debugBuf.Len() == 0 {
		t.Error("debug handler should have received the record")
	}
	if errorBuf.Len() != 0 {
		t.Errorf("error handler should have filtered the record, got %q", errorBuf.String())
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewMultiHandler(slog.NewTextHandler(&buf, nil))

	logger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("trace_id", "abc123")}))
	logger.Info("sweep finished")

	if !strings.Contains(buf.String(), "trace_id=abc123") {
		t.Errorf("output missing inherited attr: %q", buf.String())
	}
}
