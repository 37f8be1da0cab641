package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Invalid levels fall back to the default
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestSafeLogger_Levels(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	// Should not panic
	logger.Info("test message")
	logger.Info("test with fields", zap.String("key", "value"))
	logger.Warn("test warning", zap.Int("count", 42))
	logger.Debug("test debug", zap.Bool("flag", true))
	logger.Error("test error", zap.String("error", "something went wrong"))
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	// All methods should be safe to call with nil inner logger
	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
}

func TestSafeLogger_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger

	// Should not panic even with nil SafeLogger
	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
}

func TestSafeLogger_With(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	newLogger := logger.With(zap.String("key", "value"), zap.Int("count", 42))

	require.NotNil(t, newLogger)
	assert.NotNil(t, newLogger.logger)

	newLogger.Info("test message")
}

func TestSafeLogger_With_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	newLogger := logger.With(zap.String("key", "value"))

	assert.Equal(t, logger, newLogger)
}

func TestSafeLogger_With_NilSafeLogger(t *testing.T) {
	var logger *SafeLogger

	newLogger := logger.With(zap.String("key", "value"))

	assert.Nil(t, newLogger)
}

func TestSafeLogger_Unwrap(t *testing.T) {
	zapLogger := zap.NewNop()
	logger := &SafeLogger{logger: zapLogger}

	assert.Equal(t, zapLogger, logger.Unwrap())
}

func TestSafeLogger_Unwrap_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	assert.NotNil(t, logger.Unwrap())
}

func TestSafeLogger_ChainedWith(t *testing.T) {
	logger := &SafeLogger{logger: zap.NewNop()}

	chained := logger.
		With(zap.String("key1", "value1")).
		With(zap.String("key2", "value2"))

	require.NotNil(t, chained)
	chained.Info("test with chained context")
}

func TestGlobalLogger(t *testing.T) {
	// Global logger should be usable before InitLogger runs
	assert.NotNil(t, Logger)
	Logger.Info("test message")
}
