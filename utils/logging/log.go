// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*log)(nil)

// continueOnFatal keeps zap from exiting the process after a Fatal entry; the
// caller decides how to shut down.
type continueOnFatal struct{}

func (continueOnFatal) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}

type log struct {
	internalLogger *zap.Logger
}

// NewLogger returns a logger writing [format]-encoded entries at or above
// [level] to [w].
func NewLogger(prefix string, level Level, format Format, w io.Writer) Logger {
	core := zapcore.NewCore(
		format.Encoder(),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(level)),
	)
	logger := zap.New(
		core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.WithFatalHook(continueOnFatal{}),
	)
	if prefix != "" {
		logger = logger.Named(prefix)
	}
	return &log{internalLogger: logger}
}

// Should only be called from [Level] functions.
func (l *log) log(level Level, msg string, fields ...zap.Field) {
	if ce := l.internalLogger.Check(zapcore.Level(level), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.log(Fatal, msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.log(Error, msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.log(Warn, msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.log(Info, msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.log(Debug, msg, fields...)
}

func (l *log) Verbo(msg string, fields ...zap.Field) {
	l.log(Verbo, msg, fields...)
}

func (l *log) With(fields ...zap.Field) Logger {
	return &log{internalLogger: l.internalLogger.With(fields...)}
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
}
