// Package logging wraps zap for the glue components (publishing, schema
// loading). The merge and projection cores stay pure and never log
// through here; their tracing lives in the debug package.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level is one of debug, info, warning, error. Unrecognized values
	// fall back to info.
	Level string
}

type Logger struct {
	z *zap.Logger
}

// New builds a production JSON logger at the configured level.
func New(cfg Config) *Logger {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	z, err := zc.Build()
	if err != nil {
		return Nop()
	}
	return &Logger{z: z}
}

// Nop returns a logger that discards everything. Useful as the default
// when callers pass nil.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// FromZap wraps an existing zap logger, e.g. a test observer.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zapcore.DebugLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{z: l.z.Named(name)}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.z.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
