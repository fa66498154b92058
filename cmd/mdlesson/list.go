package main

import (
	"fmt"

	"github.com/fwojciec/mdlesson"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := mdlesson.LessonFilter{SortBy: mdlesson.SortOrder(c.Sort)}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	lessons, err := deps.Lessons.FindLessons(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	if len(lessons) == 0 {
		fmt.Fprintln(deps.Stdout, "No lessons found. Use 'mdlesson index' to add some.")
		return nil
	}

	for _, l := range lessons {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", l.Slug, l.Title, l.Path)
	}

	return nil
}
