package mock

import (
	"context"

	"github.com/fwojciec/mdlesson"
)

// Compile-time interface verification.
var (
	_ mdlesson.Loader       = (*Loader)(nil)
	_ mdlesson.Renderer     = (*Renderer)(nil)
	_ mdlesson.HTMLRenderer = (*HTMLRenderer)(nil)
)

// Loader is a mock implementation of mdlesson.Loader.
type Loader struct {
	LoadFn     func(ctx context.Context, path string) ([]byte, error)
	DiscoverFn func(ctx context.Context, dir string) ([]string, error)
}

func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	return l.LoadFn(ctx, path)
}

func (l *Loader) Discover(ctx context.Context, dir string) ([]string, error) {
	return l.DiscoverFn(ctx, dir)
}

// Renderer is a mock implementation of mdlesson.Renderer.
type Renderer struct {
	RenderFn func(source []byte) []mdlesson.Block
}

func (r *Renderer) Render(source []byte) []mdlesson.Block {
	return r.RenderFn(source)
}

// HTMLRenderer is a mock implementation of mdlesson.HTMLRenderer.
type HTMLRenderer struct {
	RenderHTMLFn func(source []byte) ([]byte, error)
}

func (r *HTMLRenderer) RenderHTML(source []byte) ([]byte, error) {
	return r.RenderHTMLFn(source)
}
