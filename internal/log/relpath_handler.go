package log

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// RelPathHandler wraps an slog.Handler and rewrites string attribute values
// that are absolute paths under the documentation root into root-relative
// form before passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites keep logging full paths; presentation stays in one place
type RelPathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// root is the documentation root paths are made relative to.
	root string
}

// NewRelPathHandler creates a RelPathHandler wrapping the given handler.
// If handler is nil, the returned handler uses slog.Default().Handler().
// An empty root disables rewriting.
func NewRelPathHandler(handler slog.Handler, root string) *RelPathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RelPathHandler{handler: handler, root: root}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RelPathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *RelPathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rewritten before being added.
func (h *RelPathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewrittenAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewrittenAttrs[i] = h.rewriteAttr(a)
	}
	return &RelPathHandler{handler: h.handler.WithAttrs(rewrittenAttrs), root: h.root}
}

// WithGroup returns a new handler with the given group name.
func (h *RelPathHandler) WithGroup(name string) slog.Handler {
	return &RelPathHandler{handler: h.handler.WithGroup(name), root: h.root}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *RelPathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewrittenAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewrittenAttrs[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewrittenAttrs...)}
	}

	if h.root != "" && a.Value.Kind() == slog.KindString {
		if short, ok := h.shorten(a.Value.String()); ok {
			return slog.String(a.Key, short)
		}
	}

	return a
}

// shorten returns the root-relative form of a path under the root.
// It reports false for values that are not paths under the root.
func (h *RelPathHandler) shorten(value string) (string, bool) {
	if !strings.HasPrefix(value, h.root) {
		return "", false
	}
	rel, err := filepath.Rel(h.root, value)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return rel, true
}

// NewLogger creates a *slog.Logger writing text output to w, with path
// attributes shortened relative to root. Verbose selects debug level;
// otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, root string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewRelPathHandler(textHandler, root))
}
