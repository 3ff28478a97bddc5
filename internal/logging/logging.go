// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the console logger shared by the CLI and the
// library entry point.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing timestamped lines to w at INFO, or at
// DEBUG when debug is set. A nil w writes to standard error.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
