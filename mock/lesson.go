package mock

import (
	"context"

	"github.com/fwojciec/mdlesson"
)

var _ mdlesson.LessonService = (*LessonService)(nil)

// LessonService is a mock implementation of mdlesson.LessonService.
type LessonService struct {
	CreateLessonFn     func(ctx context.Context, lesson *mdlesson.Lesson) error
	FindLessonByIDFn   func(ctx context.Context, id string) (*mdlesson.Lesson, error)
	FindLessonBySlugFn func(ctx context.Context, slug string) (*mdlesson.Lesson, error)
	FindLessonsFn      func(ctx context.Context, filter mdlesson.LessonFilter) ([]*mdlesson.Lesson, error)
	FindBlocksFn       func(ctx context.Context, filter mdlesson.BlockFilter) ([]*mdlesson.LessonBlock, error)
	UpdateLessonFn     func(ctx context.Context, id string, upd mdlesson.LessonUpdate) (*mdlesson.Lesson, error)
	DeleteLessonFn     func(ctx context.Context, id string) error
}

func (s *LessonService) CreateLesson(ctx context.Context, lesson *mdlesson.Lesson) error {
	return s.CreateLessonFn(ctx, lesson)
}

func (s *LessonService) FindLessonByID(ctx context.Context, id string) (*mdlesson.Lesson, error) {
	return s.FindLessonByIDFn(ctx, id)
}

func (s *LessonService) FindLessonBySlug(ctx context.Context, slug string) (*mdlesson.Lesson, error) {
	return s.FindLessonBySlugFn(ctx, slug)
}

func (s *LessonService) FindLessons(ctx context.Context, filter mdlesson.LessonFilter) ([]*mdlesson.Lesson, error) {
	return s.FindLessonsFn(ctx, filter)
}

func (s *LessonService) FindBlocks(ctx context.Context, filter mdlesson.BlockFilter) ([]*mdlesson.LessonBlock, error) {
	return s.FindBlocksFn(ctx, filter)
}

func (s *LessonService) UpdateLesson(ctx context.Context, id string, upd mdlesson.LessonUpdate) (*mdlesson.Lesson, error) {
	return s.UpdateLessonFn(ctx, id, upd)
}

func (s *LessonService) DeleteLesson(ctx context.Context, id string) error {
	return s.DeleteLessonFn(ctx, id)
}
