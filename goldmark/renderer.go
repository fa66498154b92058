// Package goldmark renders lesson markdown using the goldmark engine.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/frontmatter"
)

// Ensure Renderer implements mdlesson.Renderer at compile time.
var _ mdlesson.Renderer = (*Renderer)(nil)

// Renderer converts markdown into typed blocks by walking the goldmark AST.
// It is stateless and safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions enabled.
func NewRenderer() *Renderer {
	return &Renderer{md: newEngine(Options{})}
}

// Render converts markdown into blocks. Leading frontmatter is skipped.
// Render never fails: if the parser panics on some input the whole source
// is returned as a single paragraph.
func (r *Renderer) Render(source []byte) (blocks []mdlesson.Block) {
	defer func() {
		if recover() != nil {
			blocks = verbatim(source)
		}
	}()

	_, body := frontmatter.Split(source)
	body = bytes.ReplaceAll(body, []byte("\r\n"), []byte("\n"))

	doc := r.md.Parser().Parse(text.NewReader(body))
	w := &walker{src: body}
	w.collect(doc)
	return w.blocks
}

func verbatim(source []byte) []mdlesson.Block {
	if len(bytes.TrimSpace(source)) == 0 {
		return nil
	}
	return []mdlesson.Block{{Kind: mdlesson.BlockParagraph, Text: string(source)}}
}

// walker accumulates blocks from a parsed document.
type walker struct {
	src    []byte
	blocks []mdlesson.Block
}

func (w *walker) collect(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		w.blocks = append(w.blocks, mdlesson.Block{
			Kind:  mdlesson.BlockHeading,
			Level: n.Level,
			Text:  inlineText(n, w.src),
		})
	case *ast.FencedCodeBlock:
		w.blocks = append(w.blocks, mdlesson.Block{
			Kind:     mdlesson.BlockCode,
			Language: string(n.Language(w.src)),
			Text:     strings.TrimSuffix(lines(n, w.src), "\n"),
		})
	case *ast.CodeBlock:
		w.blocks = append(w.blocks, mdlesson.Block{
			Kind: mdlesson.BlockCode,
			Text: strings.TrimSuffix(lines(n, w.src), "\n"),
		})
	case *ast.Paragraph, *ast.TextBlock:
		w.paragraph(inlineText(n, w.src))
	case *ast.HTMLBlock:
		if n.HTMLBlockType == ast.HTMLBlockType2 {
			return // comment
		}
		raw := lines(n, w.src)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(w.src))
		}
		w.paragraph(raw)
	case *ast.ThematicBreak:
	case *east.Table:
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			w.paragraph(tableRow(row, w.src))
		}
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			w.collect(c)
		}
	}
}

func (w *walker) paragraph(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	w.blocks = append(w.blocks, mdlesson.Block{Kind: mdlesson.BlockParagraph, Text: s})
}

// lines returns the raw source lines of a block node.
func lines(n ast.Node, src []byte) string {
	var sb strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}

func tableRow(row ast.Node, src []byte) string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, strings.TrimSpace(inlineText(c, src)))
	}
	return strings.Join(cells, " | ")
}

// inlineText flattens the inline children of n to plain text. Emphasis
// markers are dropped; link, image and code span text is kept.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	writeInline(&sb, n, src)
	return strings.TrimSpace(sb.String())
}

func writeInline(sb *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
			if c.HardLineBreak() {
				sb.WriteString("\n")
			} else if c.SoftLineBreak() {
				sb.WriteString(" ")
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.Label(src))
		case *ast.RawHTML:
			for i := 0; i < c.Segments.Len(); i++ {
				seg := c.Segments.At(i)
				sb.Write(seg.Value(src))
			}
		case *east.TaskCheckBox:
			if c.IsChecked {
				sb.WriteString("[x] ")
			} else {
				sb.WriteString("[ ] ")
			}
		default:
			writeInline(sb, c, src)
		}
	}
}
