// Package logging provides structured logging for aircon-core.
//
// It wraps the standard library's log/slog with configuration-driven
// level, format and destination selection. Diagnostics default to stderr
// because the CLI reserves stdout for command output.
package logging
