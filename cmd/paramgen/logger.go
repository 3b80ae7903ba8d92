// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated logger; it does not touch slog's default.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}

	return slog.New(slog.NewTextHandler(outW, opts))
}
