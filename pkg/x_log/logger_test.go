// file:radix/pkg/x_log/logger_test.go
package x_log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// TestInit tests if the Init function initializes the logger with default config.
func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log.Logger)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestInitWithConfig tests if InitWithConfig correctly sets up the logger.
func TestInitWithConfig(t *testing.T) {
	cfg := &Config{
		Level: "debug",
	}

	InitWithConfig(cfg, "testModule")
	assert.NotNil(t, log.Logger)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNew tests if the New function creates a scoped logger.
func TestNew(t *testing.T) {
	logger := New("testModule")

	var buf bytes.Buffer
	logger = logger.Output(&buf)
	logger.Info().Msg("Testing logger")

	assert.Contains(t, buf.String(), `"module":"testModule"`)
}

// TestConsoleLogging tests if console logging works as expected.
func TestConsoleLogging(t *testing.T) {
	var buf bytes.Buffer
	consoleWriter := ConsoleWriterWithStyles(&Styles{
		Out: &buf,
	})
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	logger.Info().Msg("Test message")

	assert.Contains(t, buf.String(), "Test message")
}

// TestFileLogging tests if the file logging works correctly.
func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radix_test.log")

	cfg := &Config{
		ToFile:  true,
		LogFile: path,
		Level:   "info",
	}
	InitWithConfig(cfg, "testModule")

	Info().Msg("Test file logging")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("failed to read log file:", err)
	}
	assert.Contains(t, string(content), "Test file logging")
}

// TestContextLogger tests logging with context integration.
func TestContextLogger(t *testing.T) {
	logger := New("testModule")
	ctx := WithLogger(context.Background(), &logger)

	assert.Equal(t, &logger, From(ctx))
	// Fallback to the global logger when the context holds none.
	assert.Equal(t, &log.Logger, From(context.Background()))
	assert.Equal(t, &log.Logger, From(nil))
}
