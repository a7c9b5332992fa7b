package internal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.Nop()
)

// InitLogging configures the process logger. Console output goes to stderr
// so stdout stays free for responses; a rotating file is added when
// cfg.File is set.
func InitLogging(cfg config.LoggingConfig) error {
	return InitLoggingTo(os.Stderr, cfg)
}

// InitLoggingTo is InitLogging with an explicit console writer.
func InitLoggingTo(console io.Writer, cfg config.LoggingConfig) error {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	writers := []io.Writer{console}
	if cfg.Pretty {
		writers[0] = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}

	l := zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger().Level(level)
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
	return nil
}

// Logger returns the process logger. It discards everything until
// InitLogging is called.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
