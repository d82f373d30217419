package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"resume-extractor/internal/domain"
)

// AppLogger implements the domain.Logger interface on top of zap.
type AppLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewLogger creates a JSON logger writing to stdout.
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithOutput(levelStr, os.Stdout)
}

// NewLoggerWithOutput creates a JSON logger writing to w.
func NewLoggerWithOutput(levelStr string, w io.Writer) *AppLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		parseLogLevel(levelStr),
	)
	return New(core)
}

// New wraps an existing zap core.
func New(core zapcore.Core) *AppLogger {
	base := zap.New(core)
	return &AppLogger{base: base, sugar: base.Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() domain.Logger {
	return New(zapcore.NewNopCore())
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.sugar.Infow(msg, fields...)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if err != nil {
		fields = append([]interface{}{zap.Error(err)}, fields...)
	}
	l.sugar.Errorw(msg, fields...)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.sugar.Debugw(msg, fields...)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.sugar.Warnw(msg, fields...)
}

// Sync flushes buffered entries.
func (l *AppLogger) Sync() error {
	return l.base.Sync()
}

// parseLogLevel converts string log level to a zap level
func parseLogLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
