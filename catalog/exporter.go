package catalog

import (
	"context"
	"fmt"

	"github.com/fwojciec/mdlesson"
)

// Exporter writes a lesson directory as a static HTML site.
type Exporter struct {
	Builder *Builder
	HTML    mdlesson.HTMLRenderer
	Pages   mdlesson.PageStore
}

// ExportDir renders every lesson under dir and saves one page per lesson
// plus an index page titled title. Pages are committed only if every
// lesson renders; on any error pending pages are discarded. Two lessons
// sharing a slug would write the same page, so they fail the export with
// ECONFLICT.
func (e *Exporter) ExportDir(ctx context.Context, dir, title string) (n int, err error) {
	defer func() {
		if err != nil {
			_ = e.Pages.Abort()
		}
	}()

	paths, err := e.Builder.Loader.Discover(ctx, dir)
	if err != nil {
		return 0, fmt.Errorf("discover lessons: %w", err)
	}

	claims := slugClaims{}
	pages := make([]*mdlesson.Page, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		b, err := e.Builder.Build(ctx, p)
		if err != nil {
			return 0, fmt.Errorf("build %s: %w", p, err)
		}
		if err := claims.claim(b.Lesson.Slug, p); err != nil {
			return 0, err
		}
		html, err := e.HTML.RenderHTML(b.Markdown)
		if err != nil {
			return 0, fmt.Errorf("render %s: %w", p, err)
		}

		page := &mdlesson.Page{
			Slug:  b.Lesson.Slug,
			Title: b.Lesson.Title,
			HTML:  string(html),
		}
		if err := e.Pages.Save(ctx, page); err != nil {
			return 0, fmt.Errorf("save %s: %w", p, err)
		}
		pages = append(pages, page)
	}

	if err := e.Pages.SaveIndex(ctx, title, pages); err != nil {
		return 0, fmt.Errorf("save index: %w", err)
	}
	if err := e.Pages.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return len(pages), nil
}
