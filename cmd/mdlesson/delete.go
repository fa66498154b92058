package main

import (
	"fmt"

	"github.com/fwojciec/mdlesson"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mdlesson.Errorf(mdlesson.EINVALID, "use --force to confirm deletion")
	}

	lesson, err := deps.Lessons.FindLessonBySlug(deps.Ctx, c.Slug)
	if mdlesson.ErrorCode(err) == mdlesson.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: lesson %q not found. Use 'mdlesson list' to see available lessons.\n", c.Slug)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	if err := deps.Lessons.DeleteLesson(deps.Ctx, lesson.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted lesson %q\n", lesson.Slug)
	return nil
}
