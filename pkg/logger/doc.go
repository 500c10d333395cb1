// Package logger builds slog loggers for the CLI with functional options for
// level, format and destination.
package logger
