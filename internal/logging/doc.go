// Package logging assembles the structured slog loggers used by the sitecfg
// CLI.
//
// It owns the console and JSON handlers, parses level and format names, and
// exposes attribute helpers so commands tag their output with the same keys.
// A no-op logger is provided for tests and library callers that do not want
// output.
package logging
