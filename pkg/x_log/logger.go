// file:radix/pkg/x_log/logger.go
package x_log

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//---------------------
// TYPES
//---------------------

// Level aliases zerolog's level so styles can key on it directly.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

//---------------------
// Init
//---------------------

// Init configures the global logger with defaults.
func Init() {
	cfg := defaultConfig
	InitWithConfig(&cfg, "radix")
}

// InitWithConfig configures the global logger from cfg. The module
// name is attached to every event.
func InitWithConfig(cfg *Config, module string) {
	if cfg == nil {
		c := defaultConfig
		cfg = &c
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.ToConsole {
		writers = append(writers, consoleSink(cfg))
	}
	if cfg.ToFile && cfg.LogFile != "" {
		writers = append(writers, fileSink(cfg))
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).
		With().
		Timestamp().
		Str("module", module).
		Logger()
}

// consoleSink builds the console writer, styled only on a TTY.
func consoleSink(cfg *Config) io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		return ConsoleWriterWithStyles(styles)
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
}

// fileSink builds the rotated file writer.
func fileSink(cfg *Config) io.Writer {
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755)
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

//---------------------
// Scoped loggers
//---------------------

// New returns a logger scoped to a module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From retrieves the context logger, falling back to the global one.
func From(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok && l != nil {
			return l
		}
	}
	return &log.Logger
}

//---------------------
// Global shortcuts
//---------------------

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
