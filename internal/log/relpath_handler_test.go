package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestRelPathHandler verifies path shortening through the full slog stack.
func TestRelPathHandler(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer, root string) *slog.Logger {
		inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(NewRelPathHandler(inner, root))
	}

	t.Run("path under root is shortened", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger(&buf, "/srv/docs")

		logger.Info("rendered", "source", "/srv/docs/setup/install.md")

		out := buf.String()
		if !strings.Contains(out, "source=setup/install.md") {
			t.Errorf("expected shortened path, got %q", out)
		}
		if strings.Contains(out, "/srv/docs/setup") {
			t.Errorf("absolute path leaked into output: %q", out)
		}
	})

	t.Run("path outside root is untouched", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger(&buf, "/srv/docs")

		logger.Info("backup", "dir", "/var/cache/docgen")

		if !strings.Contains(buf.String(), "/var/cache/docgen") {
			t.Errorf("unrelated path was rewritten: %q", buf.String())
		}
	})

	t.Run("non-string attributes pass through", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger(&buf, "/srv/docs")

		logger.Info("summary", "created", 3)

		if !strings.Contains(buf.String(), "created=3") {
			t.Errorf("numeric attribute altered: %q", buf.String())
		}
	})

	t.Run("empty root disables rewriting", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger(&buf, "")

		logger.Info("rendered", "source", "/srv/docs/a.md")

		if !strings.Contains(buf.String(), "/srv/docs/a.md") {
			t.Errorf("path rewritten despite empty root: %q", buf.String())
		}
	})

	t.Run("attributes added via With are shortened", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger(&buf, "/srv/docs").With("file", "/srv/docs/guide.md")

		logger.Info("processing")

		if !strings.Contains(buf.String(), "file=guide.md") {
			t.Errorf("expected shortened With attribute, got %q", buf.String())
		}
	})
}

// TestNewLogger verifies the level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, "", false)

		logger.Info("hidden")
		logger.Warn("visible")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info message logged at default level: %q", out)
		}
		if !strings.Contains(out, "visible") {
			t.Errorf("warn message missing: %q", out)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, "", true)

		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Errorf("debug message missing in verbose mode: %q", buf.String())
		}
	})
}
