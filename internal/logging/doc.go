// Package logging assembles structured slog loggers and formatting helpers used
// across assparse.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing (including rotated log files), and exposes context-aware helpers so
// request handlers and batch runs tag log lines with correlation IDs. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
