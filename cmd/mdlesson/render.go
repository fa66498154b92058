package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/mdlesson"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	b, err := deps.buildFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	switch {
	case c.HTML:
		html, err := deps.HTMLRenderer.RenderHTML(b.Markdown)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
			return err
		}
		_, _ = deps.Stdout.Write(html)
	case c.Blocks:
		writeBlocks(deps.Stdout, b.Lesson.Blocks)
	default:
		fmt.Fprintln(deps.Stdout, mdlesson.FormatLesson(b.Lesson))
	}

	return nil
}

// writeBlocks lists blocks one per line with their kind and attributes.
// Multi-line text is shown on its first line only.
func writeBlocks(w io.Writer, blocks []mdlesson.Block) {
	for i, b := range blocks {
		text, _, more := strings.Cut(b.Text, "\n")
		if more {
			text += " ..."
		}
		switch b.Kind {
		case mdlesson.BlockHeading:
			fmt.Fprintf(w, "%3d  heading(%d)  %s\n", i, b.Level, text)
		case mdlesson.BlockCode:
			fmt.Fprintf(w, "%3d  code[%s]  %s\n", i, b.Language, text)
		default:
			fmt.Fprintf(w, "%3d  %s  %s\n", i, b.Kind, text)
		}
	}
}
