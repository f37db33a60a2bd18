// Package logging builds the structured slog.Logger used across the tool.
// Logs are JSON by default and go to the writer chosen by the caller (stderr
// for the CLI), keeping stdout free for per-file status lines.
package logging
