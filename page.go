package mdlesson

import "context"

// Page is a lesson rendered to HTML for export.
type Page struct {
	Slug  string
	Title string
	HTML  string // body fragment
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	// SaveIndex writes a page linking the given pages in order.
	SaveIndex(ctx context.Context, title string, pages []*Page) error
	Commit() error
	Abort() error
}
