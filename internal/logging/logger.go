package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SafeLogger wraps a zap.Logger and tolerates being nil or uninitialized,
// so packages can log before InitLogger has run (or in tests that skip it).
type SafeLogger struct {
	logger *zap.Logger
}

var (
	// Logger is the global logger instance
	Logger = &SafeLogger{logger: zap.NewNop()}
)

// InitLogger initializes the global logger
func InitLogger() error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-address"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: logger}
	return nil
}

// Info logs at info level
func (s *SafeLogger) Info(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Info(msg, fields...)
}

// Warn logs at warn level
func (s *SafeLogger) Warn(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Warn(msg, fields...)
}

// Debug logs at debug level
func (s *SafeLogger) Debug(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Debug(msg, fields...)
}

// Error logs at error level
func (s *SafeLogger) Error(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Error(msg, fields...)
}

// Fatal logs at fatal level and exits
func (s *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		os.Exit(1)
	}
	s.logger.Fatal(msg, fields...)
}

// With returns a logger with the given fields attached
func (s *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	if s == nil {
		return nil
	}
	if s.logger == nil {
		return s
	}
	return &SafeLogger{logger: s.logger.With(fields...)}
}

// Unwrap returns the underlying zap.Logger, never nil
func (s *SafeLogger) Unwrap() *zap.Logger {
	if s == nil || s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}
