// Package catalog provides lesson indexing and export orchestration.
// It coordinates discovery, loading, conversion, rendering and storage
// of lessons.
package catalog

import (
	"context"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/frontmatter"
	"github.com/fwojciec/mdlesson/xxhash"
)

// Builder turns a lesson file into an assembled Lesson.
type Builder struct {
	Loader    mdlesson.Loader
	Renderer  mdlesson.Renderer
	Extractor mdlesson.Extractor
	Converter mdlesson.Converter
}

// Build holds a built lesson together with the inputs it was built from.
type Build struct {
	Lesson   *mdlesson.Lesson
	Markdown []byte // frontmatter included for markdown sources
	Size     int    // raw source bytes
}

// Build loads the file at p and assembles it into a lesson. HTML files
// are reduced to their main content and converted to markdown first.
// The content hash is computed over the raw file bytes.
func (b *Builder) Build(ctx context.Context, p string) (*Build, error) {
	source, err := b.Loader.Load(ctx, p)
	if err != nil {
		return nil, err
	}

	var meta mdlesson.Meta
	markdown := source
	if mdlesson.IsHTMLPath(p) {
		if b.Extractor == nil || b.Converter == nil {
			return nil, mdlesson.Errorf(mdlesson.EINVALID, "html lessons not supported: %s", p)
		}
		extracted, err := b.Extractor.Extract(string(source))
		if err != nil {
			return nil, err
		}
		md, err := b.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, err
		}
		meta.Title = extracted.Title
		markdown = []byte(md)
	} else {
		meta, _ = frontmatter.Split(source)
	}

	lesson := mdlesson.NewLesson(p, meta, b.Renderer.Render(markdown))
	lesson.ContentHash = xxhash.Sum(source)

	return &Build{
		Lesson:   lesson,
		Markdown: markdown,
		Size:     len(source),
	}, nil
}
