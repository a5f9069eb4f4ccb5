// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON (or logfmt-style text) records and can take its settings from the log.* paths of a tree.Node.
package logging
