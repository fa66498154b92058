package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mdlesson"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	lesson, err := deps.Lessons.FindLessonBySlug(deps.Ctx, c.Slug)
	if mdlesson.ErrorCode(err) == mdlesson.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: lesson %q not found. Use 'mdlesson list' to see available lessons.\n", c.Slug)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, mdlesson.FormatLesson(lesson))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", lesson.Title, lesson.Path)
	if lesson.Summary != "" {
		fmt.Fprintf(deps.Stdout, "  %s\n", lesson.Summary)
	}
	if len(lesson.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "  tags: %s\n", strings.Join(lesson.Tags, ", "))
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, mdlesson.FormatOutline(lesson.Sections))

	return nil
}
