// Package logging builds the slog loggers used by the fstruct commands and
// terminal UI.
//
// Console output uses slog's text handler, JSON output renames the standard
// keys to ts/level/msg. The terminal UI owns the screen, so it logs to a file
// or nowhere. The domain and services packages never log; callers record the
// outcome of each operation.
package logging
