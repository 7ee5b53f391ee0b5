// Package logging builds the service's slog logger and carries it through
// request contexts.
//
// The HTTP middleware stores a child logger holding request_id and
// correlation_id; Authenticate adds user_id and role with With. Services log
// failures through their own logger, naming the operation and entity IDs and
// passing the whole error chain:
//
//	logger.ErrorContext(ctx, "failed to publish draft",
//	    slog.String("operation", "PublishDraft"),
//	    slog.String("task_id", taskID),
//	    slog.Any("error", err),
//	)
//
// Every handler is wrapped in masq redaction, so credentials, tokens, and
// presigned URL signatures never reach the output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New builds a logger writing to w. level accepts slog's level names in any
// case ("debug", "INFO", "warn", "error", "info+2"); anything else means
// info. format "text" selects key=value output and anything else JSON. Debug
// loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger also carries attrs.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
