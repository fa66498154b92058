package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/catalog"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	title := c.Title
	if title == "" {
		title = c.Name
	}

	out := filepath.Join(c.Path, c.Name)
	if overlaps(out, c.Dir) {
		fmt.Fprintf(deps.Stderr, "error: output directory %s overlaps lesson directory %s\n", out, c.Dir)
		return mdlesson.Errorf(mdlesson.EINVALID, "output directory %q overlaps lesson directory %q", out, c.Dir)
	}

	e := &catalog.Exporter{
		Builder: deps.builder(c.Dir),
		HTML:    deps.HTMLRenderer,
		Pages:   deps.NewPageStore(c.Path, c.Name),
	}

	n, err := e.ExportDir(deps.Ctx, ".", title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d lessons to %s\n", n, out)
	return nil
}

// overlaps reports whether either directory is, or lies inside, the other.
func overlaps(a, b string) bool {
	a, errA := filepath.Abs(a)
	b, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return true
	}
	return within(a, b) || within(b, a)
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
