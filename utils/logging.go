package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// NewLogger builds the process logger. "json" emits one-line JSON records
// with stackdriver-compatible field names, anything else a colored
// human-readable format for local development.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: stackdriverAttrReplacer,
		}))
	}
	return slog.New(newDevHandler(os.Stdout))
}

// stackdriverAttrReplacer renames "msg" and "level" to the field names GCP
// log ingestion parses, and maps slog levels onto stackdriver severities.
func stackdriverAttrReplacer(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		level := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}
	return a
}

// devHandler prints "time LEVEL message attrs..." with a colored level. The
// attrs are rendered by an inner text handler so formatting stays correct.
type devHandler struct {
	inner slog.Handler

	mu sync.Mutex
	w  io.Writer
}

func newDevHandler(w io.Writer) *devHandler {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey, slog.LevelKey, slog.MessageKey:
				// rendered by the prefix
				return slog.Attr{}
			}
			return a
		},
	})
	return &devHandler{inner: inner, w: w}
}

func (h *devHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *devHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(r.Time.Format(time.RFC3339))
	buf.WriteByte(' ')
	buf.WriteString(colorLevel(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.WriteByte(' ')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.inner.Handle(ctx, r)
}

func (h *devHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &devHandler{inner: h.inner.WithAttrs(attrs), w: h.w}
}

func (h *devHandler) WithGroup(name string) slog.Handler {
	return &devHandler{inner: h.inner.WithGroup(name), w: h.w}
}

const (
	ansiRed     = 31
	ansiYellow  = 33
	ansiBlue    = 34
	ansiMagenta = 35
)

func colorLevel(level slog.Level) string {
	color := ansiRed
	switch {
	case level < slog.LevelInfo:
		color = ansiMagenta
	case level < slog.LevelWarn:
		color = ansiBlue
	case level < slog.LevelError:
		color = ansiYellow
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, level.String())
}
