// Package logger provides structured logging for the application on top
// of zap, tagged with service metadata and a per-process execution ID.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logger configuration
type Config struct {
	Service     string // Service name
	Version     string // Application version
	Environment string // Environment (development, homol, production)
	LogLevel    string // Minimum level: debug, info, warn, error
	ExecutionID string // Unique ID shared by all entries of this process
}

// Logger is the main logger instance
type Logger struct {
	zl          *zap.Logger
	ExecutionID string
}

// NewLogger creates a new Logger instance
func NewLogger(config Config) *Logger {
	zapConfig := zap.NewProductionConfig()
	if config.Environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	}

	switch config.LogLevel {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}

	zl, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}

	zl = zl.With(
		zap.String("service", config.Service),
		zap.String("version", config.Version),
		zap.String("environment", config.Environment),
		zap.String("exec_id", config.ExecutionID),
	)

	return &Logger{zl: zl, ExecutionID: config.ExecutionID}
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...zap.Field) {
	l.zl.Debug(message, fields...)
}

// Info logs an informational message
func (l *Logger) Info(message string, fields ...zap.Field) {
	l.zl.Info(message, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...zap.Field) {
	l.zl.Warn(message, fields...)
}

// Error logs an error message with its underlying error
func (l *Logger) Error(message string, err error, fields ...zap.Field) {
	l.zl.Error(message, append(fields, zap.Error(err))...)
}

// Close flushes any buffered log entries
func (l *Logger) Close() error {
	return l.zl.Sync()
}
