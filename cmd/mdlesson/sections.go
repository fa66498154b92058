package main

import (
	"fmt"

	"github.com/fwojciec/mdlesson"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	b, err := deps.buildFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	outline := mdlesson.FormatOutline(b.Lesson.Sections)
	if outline == "" {
		fmt.Fprintf(deps.Stdout, "%s has no headings.\n", c.Path)
		return nil
	}

	fmt.Fprintln(deps.Stdout, b.Lesson.Title)
	fmt.Fprintln(deps.Stdout, outline)
	return nil
}
