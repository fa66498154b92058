package mdlesson

import "context"

// BlockKind identifies the type of a rendered block.
type BlockKind string

// Block kinds produced by a Renderer.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockCode      BlockKind = "code"
)

// Block is a unit of rendered lesson content.
type Block struct {
	Kind     BlockKind `json:"kind"`
	Text     string    `json:"text"`
	Level    int       `json:"level,omitempty"`    // headings only
	Language string    `json:"language,omitempty"` // code only
}

// Loader reads lesson files from storage.
type Loader interface {
	// Load returns the raw bytes of the file at path, unmodified.
	// Returns ENOTFOUND if the path does not exist and EINVALID if it
	// names a directory or escapes the loader's root.
	Load(ctx context.Context, path string) ([]byte, error)

	// Discover returns the lesson files under dir, relative to the
	// loader's root, in lexical order.
	// Returns ENOTFOUND if dir does not exist.
	Discover(ctx context.Context, dir string) ([]string, error)
}

// Renderer converts markdown into an ordered sequence of blocks.
// Render is total: malformed input is passed through as paragraph text.
type Renderer interface {
	Render(source []byte) []Block
}

// HTMLRenderer converts markdown into HTML.
type HTMLRenderer interface {
	RenderHTML(source []byte) ([]byte, error)
}

// BlockFilter represents a filter for LessonService.FindBlocks.
type BlockFilter struct {
	LessonID *string    `json:"lessonId"`
	Kind     *BlockKind `json:"kind"`
	Language *string    `json:"language"`

	Limit int `json:"limit"`
}

// LessonBlock is a block together with the lesson it belongs to.
type LessonBlock struct {
	LessonID   string `json:"lessonId"`
	LessonSlug string `json:"lessonSlug"`
	Position   int    `json:"position"`
	Block
}
