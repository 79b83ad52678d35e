// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// securecrt-dump.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains unit-scoped
// loggers via WithUnit and FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// UnitFieldName is the field carrying the session file name on unit-scoped
// loggers.
const UnitFieldName = "unit"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the operator-facing *Logger for the given role label.
//
// Output goes to os.Stderr so that the session table printed on os.Stdout
// stays clean. With jsonOutput the entries are JSON lines, otherwise they
// are rendered by zerolog's ConsoleWriter. level is parsed with
// zerolog.ParseLevel; an unknown or empty level falls back to info.
func NewLogger(role, level string, jsonOutput bool) *Logger {
	return New(os.Stderr, role, level, jsonOutput)
}

// New is [NewLogger] with an explicit destination.
//
// The logger is configured with:
//   - the level parsed from level (info when empty or invalid);
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
func New(w io.Writer, role, level string, jsonOutput bool) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	logger := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ComponentFieldName is the field naming the package a child logger
// belongs to.
const ComponentFieldName = "component"

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and is tagged with component. The parent is not modified.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str(ComponentFieldName, component).Logger()}
}

// WithUnit derives a logger tagged with the session file name and attaches
// it to ctx, so code further down can retrieve it with FromContext.
func (l *Logger) WithUnit(ctx context.Context, unitName string) (context.Context, *Logger) {
	child := l.With().Str(UnitFieldName, unitName).Logger()
	return child.WithContext(ctx), &Logger{child}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
