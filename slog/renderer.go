package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdlesson"
)

// Compile-time interface verification.
var (
	_ mdlesson.Renderer     = (*LoggingRenderer)(nil)
	_ mdlesson.HTMLRenderer = (*LoggingHTMLRenderer)(nil)
)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   mdlesson.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next mdlesson.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the block count.
func (r *LoggingRenderer) Render(source []byte) (blocks []mdlesson.Block) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"bytes", len(source),
			"blocks", len(blocks),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Render(source)
}

// LoggingHTMLRenderer wraps an HTMLRenderer with logging.
type LoggingHTMLRenderer struct {
	next   mdlesson.HTMLRenderer
	logger *slog.Logger
}

// NewLoggingHTMLRenderer creates a new LoggingHTMLRenderer.
func NewLoggingHTMLRenderer(next mdlesson.HTMLRenderer, logger *slog.Logger) *LoggingHTMLRenderer {
	return &LoggingHTMLRenderer{next: next, logger: logger}
}

// RenderHTML delegates to the wrapped renderer and logs the operation.
func (r *LoggingHTMLRenderer) RenderHTML(source []byte) (html []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render html",
			"bytes", len(source),
			"html_bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderHTML(source)
}
