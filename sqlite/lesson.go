package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/xxhash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mdlesson.LessonService = (*LessonService)(nil)

const lessonColumns = "id, path, slug, title, summary, tags, content_hash, position, indexed_at"

// LessonService implements mdlesson.LessonService using SQLite.
type LessonService struct {
	db *DB
}

// NewLessonService creates a new LessonService.
func NewLessonService(db *DB) *LessonService {
	return &LessonService{db: db}
}

// CreateLesson creates a new lesson and stores its blocks.
func (s *LessonService) CreateLesson(ctx context.Context, lesson *mdlesson.Lesson) error {
	if err := lesson.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM lessons WHERE slug = ?", lesson.Slug).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return mdlesson.Errorf(mdlesson.ECONFLICT, "lesson %q already exists", lesson.Slug)
	}

	tags, err := encodeTags(lesson.Tags)
	if err != nil {
		return err
	}

	lesson.ID = uuid.New().String()
	lesson.IndexedAt = time.Now().UTC().Truncate(time.Second)
	if lesson.ContentHash == "" {
		lesson.ContentHash = hashBlocks(lesson.Blocks)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lessons (`+lessonColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, lesson.ID, lesson.Path, lesson.Slug, lesson.Title, lesson.Summary, tags,
		lesson.ContentHash, lesson.Position, formatTimestamp(lesson.IndexedAt))
	if err != nil {
		return err
	}

	for i, b := range lesson.Blocks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blocks (lesson_id, position, kind, level, language, text)
			VALUES (?, ?, ?, ?, ?, ?)
		`, lesson.ID, i, string(b.Kind), b.Level, b.Language, b.Text)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	lesson.Sections = mdlesson.GroupSections(lesson.Blocks)
	return nil
}

// hashBlocks derives a content hash for lessons created without one.
func hashBlocks(blocks []mdlesson.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&sb, "%s\x00%d\x00%s\x00%s\x00", b.Kind, b.Level, b.Language, b.Text)
	}
	return xxhash.SumString(sb.String())
}

// FindLessonByID retrieves a lesson with its blocks and sections.
func (s *LessonService) FindLessonByID(ctx context.Context, id string) (*mdlesson.Lesson, error) {
	return s.findOne(ctx, "id", id)
}

// FindLessonBySlug retrieves a lesson with its blocks and sections.
func (s *LessonService) FindLessonBySlug(ctx context.Context, slug string) (*mdlesson.Lesson, error) {
	return s.findOne(ctx, "slug", slug)
}

func (s *LessonService) findOne(ctx context.Context, column, value string) (*mdlesson.Lesson, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+lessonColumns+" FROM lessons WHERE "+column+" = ?", value)

	lesson, err := scanLesson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdlesson.Errorf(mdlesson.ENOTFOUND, "lesson not found")
	}
	if err != nil {
		return nil, err
	}

	lesson.Blocks, err = s.lessonBlocks(ctx, lesson.ID)
	if err != nil {
		return nil, err
	}
	lesson.Sections = mdlesson.GroupSections(lesson.Blocks)

	return lesson, nil
}

func (s *LessonService) lessonBlocks(ctx context.Context, lessonID string) ([]mdlesson.Block, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, level, language, text
		FROM blocks
		WHERE lesson_id = ?
		ORDER BY position ASC
	`, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []mdlesson.Block
	for rows.Next() {
		var b mdlesson.Block
		var kind string
		if err := rows.Scan(&kind, &b.Level, &b.Language, &b.Text); err != nil {
			return nil, err
		}
		b.Kind = mdlesson.BlockKind(kind)
		blocks = append(blocks, b)
	}

	return blocks, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLesson(row scanner) (*mdlesson.Lesson, error) {
	var lesson mdlesson.Lesson
	var tags, indexedAt string

	if err := row.Scan(&lesson.ID, &lesson.Path, &lesson.Slug, &lesson.Title, &lesson.Summary,
		&tags, &lesson.ContentHash, &lesson.Position, &indexedAt); err != nil {
		return nil, err
	}

	var err error
	if lesson.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if lesson.IndexedAt, err = parseTimestamp(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}

	return &lesson, nil
}

// FindLessons retrieves lessons matching the filter, without blocks.
func (s *LessonService) FindLessons(ctx context.Context, filter mdlesson.LessonFilter) ([]*mdlesson.Lesson, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + lessonColumns + " FROM lessons WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(lessons.tags) WHERE json_each.value = ?)")
		args = append(args, *filter.Tag)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	switch filter.SortBy {
	case mdlesson.SortByTitle:
		query.WriteString(" ORDER BY title COLLATE NOCASE ASC, slug ASC")
	default:
		query.WriteString(" ORDER BY position ASC, slug ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*mdlesson.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	return lessons, rows.Err()
}

// FindBlocks retrieves blocks across lessons in catalog order.
func (s *LessonService) FindBlocks(ctx context.Context, filter mdlesson.BlockFilter) ([]*mdlesson.LessonBlock, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT b.lesson_id, l.slug, b.position, b.kind, b.level, b.language, b.text
		FROM blocks b
		JOIN lessons l ON l.id = b.lesson_id
		WHERE 1=1`)

	if filter.LessonID != nil {
		query.WriteString(" AND b.lesson_id = ?")
		args = append(args, *filter.LessonID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND b.kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Language != nil {
		query.WriteString(" AND b.language = ? COLLATE NOCASE")
		args = append(args, *filter.Language)
	}

	query.WriteString(" ORDER BY l.position ASC, l.slug ASC, b.position ASC")
	appendPagination(&query, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []*mdlesson.LessonBlock
	for rows.Next() {
		var lb mdlesson.LessonBlock
		var kind string
		if err := rows.Scan(&lb.LessonID, &lb.LessonSlug, &lb.Position, &kind,
			&lb.Level, &lb.Language, &lb.Text); err != nil {
			return nil, err
		}
		lb.Kind = mdlesson.BlockKind(kind)
		blocks = append(blocks, &lb)
	}

	return blocks, rows.Err()
}

// UpdateLesson updates an existing lesson.
func (s *LessonService) UpdateLesson(ctx context.Context, id string, upd mdlesson.LessonUpdate) (*mdlesson.Lesson, error) {
	// First check if lesson exists
	lesson, err := s.FindLessonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		lesson.Title = *upd.Title
	}
	if upd.Position != nil {
		lesson.Position = *upd.Position
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE lessons
		SET title = ?, position = ?
		WHERE id = ?
	`, lesson.Title, lesson.Position, id)
	if err != nil {
		return nil, err
	}

	return lesson, nil
}

// DeleteLesson permanently removes a lesson and its blocks.
func (s *LessonService) DeleteLesson(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lessons WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mdlesson.Errorf(mdlesson.ENOTFOUND, "lesson not found")
	}

	return nil
}
