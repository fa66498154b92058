package mdlesson

import (
	"strings"
	"unicode/utf8"
)

// wrapWidth is the column at which paragraphs are wrapped.
const wrapWidth = 80

// FormatLesson formats a lesson as plain text for terminal display.
// H1 and H2 headings are underlined, deeper headings keep their # prefix,
// paragraphs are word-wrapped and code samples are indented four spaces
// below a [language] marker. Blocks are separated by blank lines.
func FormatLesson(lesson *Lesson) string {
	if lesson == nil || len(lesson.Blocks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(lesson.Blocks))
	for _, b := range lesson.Blocks {
		parts = append(parts, FormatBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

// FormatBlock formats a single block as plain text.
func FormatBlock(b Block) string {
	switch b.Kind {
	case BlockHeading:
		return formatHeading(b)
	case BlockCode:
		return formatCode(b)
	default:
		return wrap(b.Text, wrapWidth)
	}
}

func formatHeading(b Block) string {
	switch b.Level {
	case 1:
		return b.Text + "\n" + strings.Repeat("=", utf8.RuneCountInString(b.Text))
	case 2:
		return b.Text + "\n" + strings.Repeat("-", utf8.RuneCountInString(b.Text))
	default:
		return strings.Repeat("#", b.Level) + " " + b.Text
	}
}

func formatCode(b Block) string {
	var sb strings.Builder
	if b.Language != "" {
		sb.WriteString("[" + b.Language + "]\n")
	}
	lines := strings.Split(b.Text, "\n")
	for i, line := range lines {
		if line != "" {
			sb.WriteString("    " + line)
		}
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// wrap reflows text into lines of at most width runes. Words longer than
// width are kept on their own line. Existing line breaks are treated as
// spaces.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, w := range words {
		n := utf8.RuneCountInString(w)
		if i > 0 {
			if lineLen+1+n > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(w)
		lineLen += n
	}
	return sb.String()
}

// FormatOutline formats a lesson's sections as an indented outline with
// anchors. The leading untitled section is omitted.
func FormatOutline(sections []Section) string {
	var lines []string
	for _, s := range sections {
		if s.Level == 0 {
			continue
		}
		indent := strings.Repeat("  ", s.Level-1)
		lines = append(lines, indent+"- "+s.Title+" (#"+s.Anchor+")")
	}
	return strings.Join(lines, "\n")
}
