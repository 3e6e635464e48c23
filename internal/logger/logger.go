// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-auth-gate.
//
// The server logs JSON to stdout; userctl logs human-readable lines to
// stderr so its stdout carries only command output (a token, an email).
// Request handlers never hold a logger of their own: withTraceID stores a
// child carrying trace_id in the request context, and FromRequest or
// FromContext fetch it back.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger: JSON on stdout at debug level, with
// role, time and a "func" field naming the calling function.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = funcName
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger returns the userctl logger: info and above, written as
// console lines to stderr.
func NewConsoleLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

func funcName(pc uintptr, _ string, _ int) string {
	return runtime.FuncForPC(pc).Name()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can take extra fields (trace_id)
// without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by withTraceID.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext is FromRequest for code below the handlers (services, store).
// Without an attached logger it returns a disabled one, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
