// Package logging assembles the structured slog loggers used across the
// compiler and CLI.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes component loggers so every subsystem tags its lines the same way.
// Prefer these constructors over hand-rolled slog setup.
package logging
