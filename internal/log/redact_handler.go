package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// MaskValue replaces masked attribute values.
const MaskValue = "***REDACTED***"

// urlKeys are attribute keys whose values are locations. Their query
// component may carry prompt replies and is cut before logging.
var urlKeys = map[string]bool{
	"url":      true,
	"target":   true,
	"location": true,
	"next":     true,
}

// maskedKeys are attribute keys whose values are masked entirely.
var maskedKeys = map[string]bool{
	"input":    true,
	"reply":    true,
	"secret":   true,
	"password": true,
	"query":    true,
}

// RedactHandler wraps an slog.Handler and sanitizes attributes that may
// contain user input. It works with any underlying handler and keeps the
// standard slog API.
type RedactHandler struct {
	handler slog.Handler
}

// NewRedactHandler creates a RedactHandler wrapping handler. A nil
// handler falls back to slog.Default().Handler().
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a handler with sanitized attributes added.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitized := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitized[i] = h.sanitizeAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(sanitized)}
}

// WithGroup returns a handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes one attribute, recursing into groups.
func (h *RedactHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitized := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitized[i] = h.sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitized...)}
	}

	key := strings.ToLower(a.Key)
	if maskedKeys[key] {
		return slog.String(a.Key, MaskValue)
	}
	if urlKeys[key] && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, cutQuery(a.Value.String()))
	}
	return a
}

// cutQuery removes the query component of a URL string.
func cutQuery(s string) string {
	base, _, found := strings.Cut(s, "?")
	if !found {
		return s
	}
	return base + "?" + MaskValue
}

// NewLogger creates the application logger: a text handler on w wrapped
// by a RedactHandler. Verbose selects Debug level, otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewRedactHandler(textHandler))
}
