// Copyright ClusterHQ Inc.  See LICENSE file for details.

// Package logging configures structured logging for the diagnostics tool.
//
// It wraps the standard library slog package with the conventions used
// across this repository: JSON records on stderr, a constant module and
// version attribute on every record, and source locations when debugging.
// stdout is never written to, so the archive path a run prints remains
// machine-readable.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("flocker-diagnostics", version.Version)
//	slog.Info("starting", "pid", os.Getpid())
//
// The LOG_LEVEL environment variable selects the verbosity (debug, info,
// warn, error; case-insensitive, default info). Callers that parse their
// own level flag use SetDefaultStructuredLoggerWithLevel instead.
package logging
