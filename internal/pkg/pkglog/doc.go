// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON (or text) handler with stable keys.
//   - Attaching the run ID (when present) to each log record.
package pkglog
