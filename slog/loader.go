// Package slog provides logging decorators for mdlesson services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdlesson"
)

// Ensure LoggingLoader implements mdlesson.Loader.
var _ mdlesson.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   mdlesson.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next mdlesson.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (data []byte, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}

// Discover delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Discover(ctx context.Context, dir string) (paths []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("discover",
			"dir", dir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Discover(ctx, dir)
}
