package fs

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdlesson"
)

// Ensure SiteStore implements mdlesson.PageStore at compile time.
var _ mdlesson.PageStore = (*SiteStore)(nil)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<nav><a href="index.html">All lessons</a></nav>
<article>
{{.Body}}</article>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<ol>
{{- range .Pages}}
<li><a href="{{.Slug}}.html">{{.Title}}</a></li>
{{- end}}
</ol>
</body>
</html>
`))

// SiteStore implements mdlesson.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the page as <slug>.html in the temporary directory.
func (s *SiteStore) Save(ctx context.Context, page *mdlesson.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(s.name); err != nil {
		return err
	}

	name, err := pageFileName(page.Slug)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), name), content, 0644)
}

// SaveIndex writes index.html linking pages in the given order.
func (s *SiteStore) SaveIndex(ctx context.Context, title string, pages []*mdlesson.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(s.name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatIndex(title, pages)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), "index.html"), content, 0644)
}

// validateName rejects output names that would resolve outside baseDir
// or to baseDir itself. Commit removes baseDir/name, so this guards every
// operation.
func validateName(name string) error {
	if name == "" {
		return mdlesson.Errorf(mdlesson.EINVALID, "output name required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return mdlesson.Errorf(mdlesson.EINVALID, "invalid output name %q: must be a single directory name", name)
	}
	return nil
}

// pageFileName rejects slugs that would leave the output directory.
func pageFileName(slug string) (string, error) {
	if slug == "" {
		return "", mdlesson.Errorf(mdlesson.EINVALID, "page slug required")
	}
	if strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." || slug == "index" {
		return "", mdlesson.Errorf(mdlesson.EINVALID, "invalid page slug %q: path traversal", slug)
	}
	return slug + ".html", nil
}

// FormatPage wraps a page's HTML body in a standalone document.
func FormatPage(page *mdlesson.Page) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: page.Title,
		Body:  template.HTML(page.HTML),
	})
	return buf.Bytes(), err
}

// FormatIndex renders an index document linking the pages.
func FormatIndex(title string, pages []*mdlesson.Page) ([]byte, error) {
	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct {
		Title string
		Pages []*mdlesson.Page
	}{
		Title: title,
		Pages: pages,
	})
	return buf.Bytes(), err
}

// Commit replaces the output directory with the saved pages.
func (s *SiteStore) Commit() error {
	if err := validateName(s.name); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards saved pages.
func (s *SiteStore) Abort() error {
	if err := validateName(s.name); err != nil {
		return err
	}
	return os.RemoveAll(s.tempDir())
}
