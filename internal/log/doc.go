// Package log provides logging helpers built on top of the standard slog
// package.
//
// Documentation builds log file paths constantly. Absolute paths make the
// output noisy and leak the machine's directory layout into logs that end up
// attached to bug reports, so the RelPathHandler rewrites path-valued
// attributes to documentation-root-relative form before they reach the
// underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, "/srv/xos-docs", verbose)
//	logger.Info("rendered page",
//	    "source", "/srv/xos-docs/setup/install.md", // logged as "setup/install.md"
//	)
//	slog.SetDefault(logger)
package log
