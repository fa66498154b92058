package goldmark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heading(level int, text string) mdlesson.Block {
	return mdlesson.Block{Kind: mdlesson.BlockHeading, Level: level, Text: text}
}

func paragraph(text string) mdlesson.Block {
	return mdlesson.Block{Kind: mdlesson.BlockParagraph, Text: text}
}

func code(lang, text string) mdlesson.Block {
	return mdlesson.Block{Kind: mdlesson.BlockCode, Language: lang, Text: text}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := goldmark.NewRenderer()

	t.Run("renders heading followed by paragraph", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("# Title\n\nSome text."))

		assert.Equal(t, []mdlesson.Block{heading(1, "Title"), paragraph("Some text.")}, blocks)
	})

	t.Run("renders fenced code with language", func(t *testing.T) {
		t.Parallel()

		source := "## Optional binding\n\n```swift\nif let name = maybeName {\n    print(name)\n}\n```\n"

		blocks := r.Render([]byte(source))

		assert.Equal(t, []mdlesson.Block{
			heading(2, "Optional binding"),
			code("swift", "if let name = maybeName {\n    print(name)\n}"),
		}, blocks)
	})

	t.Run("uses first word of info string as language", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("```swift title=\"enum.swift\"\nenum Direction { case north }\n```"))

		require.Len(t, blocks, 1)
		assert.Equal(t, "swift", blocks[0].Language)
	})

	t.Run("renders indented code without language", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("Example:\n\n    let x = 1\n    let y = 2\n"))

		assert.Equal(t, []mdlesson.Block{paragraph("Example:"), code("", "let x = 1\nlet y = 2")}, blocks)
	})

	t.Run("flattens inline markup", func(t *testing.T) {
		t.Parallel()

		source := "Use **`guard let`** to _exit early_, see [the guide](https://example.com)."

		blocks := r.Render([]byte(source))

		assert.Equal(t, []mdlesson.Block{paragraph("Use guard let to exit early, see the guide.")}, blocks)
	})

	t.Run("joins soft-wrapped lines with spaces", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("A struct is a value type.\nClasses are reference types."))

		assert.Equal(t, []mdlesson.Block{paragraph("A struct is a value type. Classes are reference types.")}, blocks)
	})

	t.Run("renders setext headings", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("Scope\n=====\n\nLocal\n-----\n"))

		assert.Equal(t, []mdlesson.Block{heading(1, "Scope"), heading(2, "Local")}, blocks)
	})

	t.Run("flattens list items and block quotes into paragraphs", func(t *testing.T) {
		t.Parallel()

		source := "- Int\n- Double\n  - Float\n\n> Strings are value types.\n"

		blocks := r.Render([]byte(source))

		assert.Equal(t, []mdlesson.Block{
			paragraph("Int"),
			paragraph("Double"),
			paragraph("Float"),
			paragraph("Strings are value types."),
		}, blocks)
	})

	t.Run("flattens table rows", func(t *testing.T) {
		t.Parallel()

		source := "| Type | Example |\n|---|---|\n| Int | `42` |\n"

		blocks := r.Render([]byte(source))

		assert.Equal(t, []mdlesson.Block{paragraph("Type | Example"), paragraph("Int | 42")}, blocks)
	})

	t.Run("drops thematic breaks and html comments", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("One\n\n---\n\n<!-- draft -->\n\nTwo\n"))

		assert.Equal(t, []mdlesson.Block{paragraph("One"), paragraph("Two")}, blocks)
	})

	t.Run("skips frontmatter", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("---\ntitle: Enums\n---\n\n# Enums\n"))

		assert.Equal(t, []mdlesson.Block{heading(1, "Enums")}, blocks)
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("# Loops\r\n\r\n```swift\r\nfor i in 0..<3 {}\r\n```\r\n"))

		assert.Equal(t, []mdlesson.Block{heading(1, "Loops"), code("swift", "for i in 0..<3 {}")}, blocks)
	})

	t.Run("preserves source order", func(t *testing.T) {
		t.Parallel()

		source := "# A\n\npara\n\n```\nx\n```\n\n## B\n\nmore\n"

		blocks := r.Render([]byte(source))

		kinds := make([]mdlesson.BlockKind, 0, len(blocks))
		for _, b := range blocks {
			kinds = append(kinds, b.Kind)
		}
		assert.Equal(t, []mdlesson.BlockKind{
			mdlesson.BlockHeading, mdlesson.BlockParagraph, mdlesson.BlockCode,
			mdlesson.BlockHeading, mdlesson.BlockParagraph,
		}, kinds)
	})
}

func TestRenderer_RenderIsTotal(t *testing.T) {
	t.Parallel()

	r := goldmark.NewRenderer()
	inputs := []string{
		"",
		"   \n\n  ",
		"```swift\nlet unterminated = true",
		"# ",
		"######## too many hashes",
		"\x00\xff\xfe binary",
		"---\ntitle: [broken\n---\n# Still renders",
		strings.Repeat(">", 500) + " deep",
		strings.Repeat("- ", 200) + "nested",
		"<div>\n<p>raw html</p>\n</div>",
		"[unclosed link(",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_ = r.Render([]byte(input))
		}, "%q", input)
	}
}

func TestRenderer_RenderEdgeCases(t *testing.T) {
	t.Parallel()

	r := goldmark.NewRenderer()

	t.Run("empty input renders no blocks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, r.Render(nil))
	})

	t.Run("unterminated fence runs to end of input", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("```swift\nlet x = 1\n"))

		assert.Equal(t, []mdlesson.Block{code("swift", "let x = 1")}, blocks)
	})

	t.Run("malformed frontmatter renders verbatim", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("---\ntitle: [broken\n---\n# Body\n"))

		require.NotEmpty(t, blocks)
		assert.Equal(t, heading(1, "Body"), blocks[len(blocks)-1])
	})

	t.Run("raw html blocks are kept verbatim", func(t *testing.T) {
		t.Parallel()

		blocks := r.Render([]byte("<div class=\"note\">\nMutable state\n</div>\n"))

		assert.Equal(t, []mdlesson.Block{paragraph("<div class=\"note\">\nMutable state\n</div>")}, blocks)
	})
}
