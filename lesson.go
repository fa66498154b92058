package mdlesson

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Lesson represents one markdown document covering a single topic.
type Lesson struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Tags        []string  `json:"tags"`
	Blocks      []Block   `json:"blocks"`
	Sections    []Section `json:"sections"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Meta holds lesson metadata taken from frontmatter.
type Meta struct {
	Title   string
	Summary string
	Tags    []string
}

// Validate returns an error if the lesson contains invalid fields.
func (l *Lesson) Validate() error {
	if l.Path == "" {
		return Errorf(EINVALID, "lesson path required")
	}
	if l.Slug == "" {
		return Errorf(EINVALID, "lesson slug required")
	}
	return nil
}

// NewLesson assembles a lesson from its path, metadata and rendered blocks.
// The title comes from metadata, then the first H1, then the first heading
// of any level, then the slug.
func NewLesson(path string, meta Meta, blocks []Block) *Lesson {
	slug := PathToSlug(path)
	return &Lesson{
		Path:     filepath.ToSlash(path),
		Slug:     slug,
		Title:    lessonTitle(meta, blocks, slug),
		Summary:  meta.Summary,
		Tags:     append([]string(nil), meta.Tags...),
		Blocks:   blocks,
		Sections: GroupSections(blocks),
	}
}

func lessonTitle(meta Meta, blocks []Block, slug string) string {
	if t := strings.TrimSpace(meta.Title); t != "" {
		return t
	}
	var first string
	for _, b := range blocks {
		if b.Kind != BlockHeading {
			continue
		}
		if b.Level == 1 {
			return b.Text
		}
		if first == "" {
			first = b.Text
		}
	}
	if first != "" {
		return first
	}
	return slug
}

// IsHTMLPath reports whether path names an HTML lesson.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// PathToSlug converts a lesson file path to a URL-safe identifier.
// Example: basics/Optionals.md → basics-optionals
func PathToSlug(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimSuffix(path, filepath.Ext(path))

	var sb strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(path) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "lesson"
	}
	return slug
}

// LessonService represents a service for managing catalogued lessons.
type LessonService interface {
	// CreateLesson creates a new lesson with its blocks.
	// Returns ECONFLICT if a lesson with the same slug exists.
	CreateLesson(ctx context.Context, lesson *Lesson) error

	// FindLessonByID retrieves a lesson by ID.
	// Returns ENOTFOUND if lesson does not exist.
	FindLessonByID(ctx context.Context, id string) (*Lesson, error)

	// FindLessonBySlug retrieves a lesson by slug.
	// Returns ENOTFOUND if lesson does not exist.
	FindLessonBySlug(ctx context.Context, slug string) (*Lesson, error)

	// FindLessons retrieves lessons matching the filter. Blocks are not
	// loaded; use FindLessonByID for the full lesson.
	FindLessons(ctx context.Context, filter LessonFilter) ([]*Lesson, error)

	// FindBlocks retrieves blocks across lessons matching the filter.
	FindBlocks(ctx context.Context, filter BlockFilter) ([]*LessonBlock, error)

	// UpdateLesson updates an existing lesson.
	// Returns ENOTFOUND if lesson does not exist.
	UpdateLesson(ctx context.Context, id string, upd LessonUpdate) (*Lesson, error)

	// DeleteLesson permanently removes a lesson and its blocks.
	// Returns ENOTFOUND if lesson does not exist.
	DeleteLesson(ctx context.Context, id string) error
}

// SortOrder represents the sort order for lesson queries.
type SortOrder string

// SortOrder constants for LessonFilter.
const (
	SortByPosition SortOrder = "position"
	SortByTitle    SortOrder = "title"
)

// LessonFilter represents a filter for FindLessons.
type LessonFilter struct {
	ID          *string `json:"id"`
	Slug        *string `json:"slug"`
	Tag         *string `json:"tag"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// LessonUpdate represents fields that can be updated on a lesson.
type LessonUpdate struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}
