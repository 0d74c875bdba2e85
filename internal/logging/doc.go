// Package logging assembles structured slog loggers and formatting helpers used
// across subrename.
//
// It owns the console and JSON handlers, centralizes level and output plumbing
// (stdout plus an optional rotating log file), and exposes a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
