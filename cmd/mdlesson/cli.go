package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/catalog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Renderer     mdlesson.Renderer
	HTMLRenderer mdlesson.HTMLRenderer
	Extractor    mdlesson.Extractor
	Converter    mdlesson.Converter
	Lessons      mdlesson.LessonService

	// NewLoader returns a loader rooted at the given directory.
	NewLoader func(root string) mdlesson.Loader

	// NewPageStore returns a page store writing to baseDir/name.
	NewPageStore func(baseDir, name string) mdlesson.PageStore
}

// builder returns a lesson builder reading files under root.
func (d *Dependencies) builder(root string) *catalog.Builder {
	return &catalog.Builder{
		Loader:    d.NewLoader(root),
		Renderer:  d.Renderer,
		Extractor: d.Extractor,
		Converter: d.Converter,
	}
}

// buildFile builds the single lesson file at path.
func (d *Dependencies) buildFile(path string) (*catalog.Build, error) {
	return d.builder(filepath.Dir(path)).Build(d.Ctx, filepath.Base(path))
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Render   RenderCmd   `cmd:"" help:"Render a lesson file"`
	Sections SectionsCmd `cmd:"" help:"Show the section outline of a lesson file"`
	Index    IndexCmd    `cmd:"" help:"Index a lesson directory into the catalog"`
	List     ListCmd     `cmd:"" help:"List catalogued lessons"`
	Show     ShowCmd     `cmd:"" help:"Show a catalogued lesson"`
	Code     CodeCmd     `cmd:"" help:"List code samples in the catalog"`
	Export   ExportCmd   `cmd:"" help:"Export a lesson directory as HTML"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a lesson from the catalog"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Path   string `arg:"" help:"Lesson file" type:"path"`
	HTML   bool   `name:"html" help:"Render as HTML" xor:"format"`
	Blocks bool   `help:"List rendered blocks" xor:"format"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Path string `arg:"" help:"Lesson file" type:"path"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir         string `arg:"" help:"Lesson directory" type:"path"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent build limit"`
	Force       bool   `short:"f" help:"Re-index unchanged lessons"`
	Prune       bool   `help:"Remove catalogued lessons whose file is gone"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Tag  string `short:"t" help:"Only lessons with this tag"`
	Sort string `default:"position" enum:"position,title" help:"Sort order (position, title)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug string `arg:"" help:"Lesson slug"`
	Full bool   `help:"Show full lesson content"`
}

// CodeCmd is the "code" subcommand.
type CodeCmd struct {
	Slug  string `arg:"" optional:"" help:"Lesson slug"`
	Lang  string `short:"l" help:"Only samples in this language"`
	Limit int    `short:"n" help:"Maximum number of samples"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir   string `arg:"" help:"Lesson directory" type:"path"`
	Name  string `arg:"" help:"Output directory name"`
	Path  string `short:"p" default:"." help:"Parent directory for output" type:"path"`
	Title string `help:"Index page title (defaults to NAME)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Lesson slug"`
	Force bool   `help:"Confirm deletion"`
}
