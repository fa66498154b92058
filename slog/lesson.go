package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdlesson"
)

// Ensure LoggingLessonService implements mdlesson.LessonService.
var _ mdlesson.LessonService = (*LoggingLessonService)(nil)

// LoggingLessonService wraps a LessonService with logging.
type LoggingLessonService struct {
	next   mdlesson.LessonService
	logger *slog.Logger
}

// NewLoggingLessonService creates a new LoggingLessonService.
func NewLoggingLessonService(next mdlesson.LessonService, logger *slog.Logger) *LoggingLessonService {
	return &LoggingLessonService{next: next, logger: logger}
}

func (s *LoggingLessonService) CreateLesson(ctx context.Context, lesson *mdlesson.Lesson) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create lesson",
			"slug", lesson.Slug,
			"blocks", len(lesson.Blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateLesson(ctx, lesson)
}

func (s *LoggingLessonService) FindLessonByID(ctx context.Context, id string) (lesson *mdlesson.Lesson, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find lesson", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindLessonByID(ctx, id)
}

func (s *LoggingLessonService) FindLessonBySlug(ctx context.Context, slug string) (lesson *mdlesson.Lesson, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find lesson", "slug", slug, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindLessonBySlug(ctx, slug)
}

func (s *LoggingLessonService) FindLessons(ctx context.Context, filter mdlesson.LessonFilter) (lessons []*mdlesson.Lesson, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find lessons",
			"count", len(lessons),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLessons(ctx, filter)
}

func (s *LoggingLessonService) FindBlocks(ctx context.Context, filter mdlesson.BlockFilter) (blocks []*mdlesson.LessonBlock, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find blocks",
			"count", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBlocks(ctx, filter)
}

func (s *LoggingLessonService) UpdateLesson(ctx context.Context, id string, upd mdlesson.LessonUpdate) (lesson *mdlesson.Lesson, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update lesson", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.UpdateLesson(ctx, id, upd)
}

func (s *LoggingLessonService) DeleteLesson(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete lesson", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.DeleteLesson(ctx, id)
}
