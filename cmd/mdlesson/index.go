package main

import (
	"fmt"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/catalog"
)

const maxPathDisplay = 60

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	ix := &catalog.Indexer{
		Builder:     deps.builder(c.Dir),
		Lessons:     deps.Lessons,
		Concurrency: c.Concurrency,
		Force:       c.Force,
		Prune:       c.Prune,
	}

	progress := func(event catalog.ProgressEvent) {
		switch event.Type {
		case catalog.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d lessons\n", event.Total)
		case catalog.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", catalog.TruncatePath(event.Path, maxPathDisplay), event.Error)
		case catalog.ProgressRemoved:
			fmt.Fprintf(deps.Stdout, "  removed %s\n", catalog.TruncatePath(event.Path, maxPathDisplay))
		case catalog.ProgressIndexed, catalog.ProgressSkipped, catalog.ProgressFinished:
			// Summary printed after indexing completes
		}
	}

	result, err := ix.IndexDir(deps.Ctx, ".", progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdlesson.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Indexed %d lessons (%s), %d unchanged, %d failed\n",
		result.Indexed, catalog.FormatBytes(result.Bytes), result.Skipped, result.Failed)
	if c.Prune {
		fmt.Fprintf(deps.Stdout, "  Removed %d lessons\n", result.Removed)
	}

	return nil
}
