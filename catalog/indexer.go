package catalog

import (
	"context"
	"fmt"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of lessons built at once when
// Indexer.Concurrency is unset.
const DefaultConcurrency = 4

// falsePositiveRate of the known-hash filter.
const falsePositiveRate = 0.01

// Indexer orchestrates indexing of a lesson directory into the catalog.
type Indexer struct {
	Builder     *Builder
	Lessons     mdlesson.LessonService
	Concurrency int

	// Force re-indexes lessons whose content is unchanged.
	Force bool

	// Prune deletes catalogued lessons whose file was not discovered.
	// Without it lessons removed from disk stay in the catalog.
	Prune bool
}

// Result holds the outcome of an indexing operation.
type Result struct {
	Indexed int
	Skipped int
	Failed  int
	Removed int
	Bytes   int
}

// ProgressEvent reports progress during an indexing operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressIndexed
	ProgressSkipped
	ProgressFailed
	ProgressRemoved
	ProgressFinished
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// buildResult holds the outcome of building a single lesson file.
type buildResult struct {
	position int
	path     string
	build    *Build
	err      error
}

// IndexDir discovers the lessons under dir, builds them concurrently and
// stores them in discovery order. A lesson that fails to build or store is
// counted as failed and does not stop the others. A file whose slug was
// already claimed by an earlier file in the same run fails with ECONFLICT
// and leaves the earlier lesson in place.
func (ix *Indexer) IndexDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
	paths, err := ix.Builder.Loader.Discover(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("discover lessons: %w", err)
	}

	known, err := ix.knownHashes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load known lessons: %w", err)
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan buildResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range paths {
			g.Go(func() error {
				b, err := ix.Builder.Build(gctx, p)
				resultCh <- buildResult{position: i, path: p, build: b, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]buildResult, total)
	for r := range resultCh {
		results[r.position] = r
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	claims := slugClaims{}
	result := &Result{}
	for i, r := range results {
		event := ProgressEvent{Total: total, Path: r.path}

		if r.err == nil {
			r.err = claims.claim(r.build.Lesson.Slug, r.path)
		}
		skipped, err := ix.store(ctx, known, r)
		switch {
		case err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = err
		case skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Indexed++
			result.Bytes += r.build.Size
			event.Type = ProgressIndexed
		}

		event.Completed = i + 1
		notify(progress, event)
	}

	if ix.Prune {
		removed, err := ix.prune(ctx, paths, progress)
		if err != nil {
			return nil, fmt.Errorf("prune lessons: %w", err)
		}
		result.Removed = removed
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

// prune deletes catalogued lessons whose slug matches none of the
// discovered paths. A discovered file that failed to build keeps its
// previously indexed lesson.
func (ix *Indexer) prune(ctx context.Context, paths []string, progress ProgressFunc) (int, error) {
	present := make(map[string]bool, len(paths))
	for _, p := range paths {
		present[mdlesson.PathToSlug(p)] = true
	}

	lessons, err := ix.Lessons.FindLessons(ctx, mdlesson.LessonFilter{})
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, l := range lessons {
		if present[l.Slug] {
			continue
		}
		if err := ix.Lessons.DeleteLesson(ctx, l.ID); err != nil {
			return removed, err
		}
		removed++
		notify(progress, ProgressEvent{Type: ProgressRemoved, Total: len(paths), Path: l.Path})
	}
	return removed, nil
}

// knownHashes loads the content hashes of every catalogued lesson.
func (ix *Indexer) knownHashes(ctx context.Context) (*bloom.Filter, error) {
	lessons, err := ix.Lessons.FindLessons(ctx, mdlesson.LessonFilter{})
	if err != nil {
		return nil, err
	}
	hashes := make([]string, 0, len(lessons))
	for _, l := range lessons {
		hashes = append(hashes, l.ContentHash)
	}
	return bloom.NewFilterFrom(hashes, falsePositiveRate), nil
}

// store saves a built lesson. It reports whether the lesson was skipped
// because the catalog already holds identical content under its slug.
func (ix *Indexer) store(ctx context.Context, known *bloom.Filter, r buildResult) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	lesson := r.build.Lesson
	lesson.Position = r.position

	if !ix.Force && known.Test(lesson.ContentHash) {
		unchanged, err := ix.unchanged(ctx, lesson)
		if err != nil {
			return false, err
		}
		if unchanged {
			return true, nil
		}
	}

	existing, err := ix.Lessons.FindLessonBySlug(ctx, lesson.Slug)
	switch {
	case mdlesson.ErrorCode(err) == mdlesson.ENOTFOUND:
	case err != nil:
		return false, err
	default:
		if err := ix.Lessons.DeleteLesson(ctx, existing.ID); err != nil {
			return false, err
		}
	}

	if err := ix.Lessons.CreateLesson(ctx, lesson); err != nil {
		return false, err
	}
	known.Add(lesson.ContentHash)
	return false, nil
}

// unchanged confirms a filter hit against the catalog. A matching lesson
// that moved within the directory has its position updated.
func (ix *Indexer) unchanged(ctx context.Context, lesson *mdlesson.Lesson) (bool, error) {
	slug, hash := lesson.Slug, lesson.ContentHash
	matches, err := ix.Lessons.FindLessons(ctx, mdlesson.LessonFilter{
		Slug:        &slug,
		ContentHash: &hash,
		Limit:       1,
	})
	if err != nil {
		return false, err
	}
	if len(matches) == 0 {
		return false, nil
	}
	if existing := matches[0]; existing.Position != lesson.Position {
		pos := lesson.Position
		if _, err := ix.Lessons.UpdateLesson(ctx, existing.ID, mdlesson.LessonUpdate{Position: &pos}); err != nil {
			return false, err
		}
	}
	return true, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
