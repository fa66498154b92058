package main

import (
	"fmt"

	"github.com/fwojciec/mdlesson"
)

// Run executes the code command.
func (c *CodeCmd) Run(deps *Dependencies) error {
	kind := mdlesson.BlockCode
	filter := mdlesson.BlockFilter{Kind: &kind, Limit: c.Limit}
	if c.Lang != "" {
		filter.Language = &c.Lang
	}

	if c.Slug != "" {
		lesson, err := deps.Lessons.FindLessonBySlug(deps.Ctx, c.Slug)
		if mdlesson.ErrorCode(err) == mdlesson.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: lesson %q not found. Use 'mdlesson list' to see available lessons.\n", c.Slug)
			return err
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
			return err
		}
		filter.LessonID = &lesson.ID
	}

	blocks, err := deps.Lessons.FindBlocks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	if len(blocks) == 0 {
		fmt.Fprintln(deps.Stdout, "No code samples found.")
		return nil
	}

	for i, b := range blocks {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s #%d\n", b.LessonSlug, b.Position)
		fmt.Fprintln(deps.Stdout, mdlesson.FormatBlock(b.Block))
	}

	return nil
}
