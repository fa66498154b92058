package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdlesson"
	main "github.com/fwojciec/mdlesson/cmd/mdlesson"
	"github.com/fwojciec/mdlesson/fs"
	"github.com/fwojciec/mdlesson/goldmark"
	"github.com/fwojciec/mdlesson/goquery"
	"github.com/fwojciec/mdlesson/htmltomarkdown"
	"github.com/stretchr/testify/require"
)

// newDeps returns dependencies wired to the real content services and
// the given lesson service.
func newDeps(lessons mdlesson.LessonService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:          context.Background(),
		Stdout:       stdout,
		Stderr:       stderr,
		Renderer:     goldmark.NewRenderer(),
		HTMLRenderer: goldmark.NewHTMLRenderer(goldmark.Options{}),
		Extractor:    goquery.NewExtractor(),
		Converter:    htmltomarkdown.NewConverter(),
		Lessons:      lessons,
		NewLoader: func(root string) mdlesson.Loader {
			return fs.NewLoader(root)
		},
		NewPageStore: func(baseDir, name string) mdlesson.PageStore {
			return fs.NewSiteStore(baseDir, name)
		},
	}, stdout, stderr
}

func writeLesson(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const optionalsLesson = `---
title: Optionals
summary: Values that may be absent.
tags: [basics, types]
---
# Optionals

An optional either holds a value or is ` + "`nil`" + `.

## Optional Chaining

` + "```swift\nlet count = shop?.items.count\n```" + `
`
